/*
Copyright © 2026 the Conversor authors.
This file is part of Conversor.

Conversor is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Conversor is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Conversor.  If not, see <http://www.gnu.org/licenses/>.
*/

package conversorutil

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"100", 100},
		{" -40 ", -40},
		{"1.5e3", 1500},
		{".5", 0.5},
		{"2*pi", 2 * math.Pi},
		{"sqrt(2)/2", math.Sqrt2 / 2},
		{"pow(2, 10)", 1024},
		{"e", math.E},
		{"(1 + 2) * 3", 9},
		{"-(3 - 5)", 2},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			have, err := ParseValue(test.input)
			if err != nil {
				t.Fatal(err)
			}
			if !floats.EqualWithinAbsOrRel(have, test.want, 1.e-12, 1.e-12) {
				t.Errorf("have %g, want %g", have, test.want)
			}
		})
	}
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrNotANumber},
		{"   ", ErrNotANumber},
		{"abc", ErrNotANumber},
		{"NaN", ErrNotANumber},
		{"1 +", ErrNotANumber},
		{"'texto'", ErrNotANumber},
		{"1 > 0", ErrNotANumber},
		{"sqrt(1, 2)", ErrNotANumber},
		{"sqrt('x')", ErrNotANumber},
		{"pow(1 > 0, 2)", ErrNotANumber},
		{"pow(2, 'y')", ErrNotANumber},
		{"1e400", ErrTooLarge},
		{"-1e400", ErrTooLarge},
		{"Inf", ErrTooLarge},
		{"pow(10, 400)", ErrTooLarge},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := ParseValue(test.input)
			if !errors.Is(err, test.want) {
				t.Errorf("have %v, want %v", err, test.want)
			}
		})
	}
}

func TestToValue(t *testing.T) {
	for _, c := range []struct {
		in   interface{}
		want float64
	}{
		{int64(100), 100},
		{2.5, 2.5},
		{"pi/2", math.Pi / 2},
	} {
		have, err := toValue(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if !floats.EqualWithinAbsOrRel(have, c.want, 1.e-12, 1.e-12) {
			t.Errorf("%v: have %g, want %g", c.in, have, c.want)
		}
	}
	if _, err := toValue(nil); !errors.Is(err, ErrNotANumber) {
		t.Errorf("missing value: have %v", err)
	}
	if _, err := toValue(true); !errors.Is(err, ErrNotANumber) {
		t.Errorf("boolean value: have %v", err)
	}
}
