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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/spf13/cast"
)

var (
	// ErrNotANumber is returned for input that is neither a number nor an
	// arithmetic expression.
	ErrNotANumber = errors.New("debes ingresar un número válido")

	// ErrTooLarge is returned for values that overflow a float64.
	ErrTooLarge = errors.New("el número es demasiado grande")
)

// valueFunctions are the functions available in value expressions.
var valueFunctions = map[string]govaluate.ExpressionFunction{
	"sqrt": func(arg ...interface{}) (interface{}, error) {
		x, err := floatArgs("sqrt", 1, arg)
		if err != nil {
			return nil, err
		}
		return math.Sqrt(x[0]), nil
	},
	"pow": func(arg ...interface{}) (interface{}, error) {
		x, err := floatArgs("pow", 2, arg)
		if err != nil {
			return nil, err
		}
		return math.Pow(x[0], x[1]), nil
	},
}

// floatArgs checks that the arguments to function name are n numbers.
func floatArgs(name string, n int, arg []interface{}) ([]float64, error) {
	if len(arg) != n {
		return nil, fmt.Errorf("conversor: got %d arguments for function '%s', but needs %d", len(arg), name, n)
	}
	o := make([]float64, n)
	for i, a := range arg {
		v, ok := a.(float64)
		if !ok {
			return nil, fmt.Errorf("conversor: argument %d of function '%s' is %#v, not a number", i+1, name, a)
		}
		o[i] = v
	}
	return o, nil
}

// valueConstants are the variables available in value expressions.
var valueConstants = map[string]interface{}{
	"pi": math.Pi,
	"e":  math.E,
}

// ParseValue parses a user-supplied value. s may be a decimal or
// scientific-notation number, or an arithmetic expression such as
// "2*pi" or "sqrt(2)/2".
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNotANumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return checkValue(v)
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrTooLarge
	}
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(s, valueFunctions)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, err)
	}
	for _, name := range expr.Vars() {
		if _, ok := valueConstants[name]; !ok {
			return 0, fmt.Errorf("%w: unknown variable %q", ErrNotANumber, name)
		}
	}
	r, err := expr.Evaluate(valueConstants)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, err)
	}
	if _, ok := r.(float64); !ok {
		return 0, fmt.Errorf("%w: %v is not numeric", ErrNotANumber, r)
	}
	return checkValue(r.(float64))
}

// toValue converts a value read from a configuration or batch file, which
// may be a number or an expression string.
func toValue(i interface{}) (float64, error) {
	switch v := i.(type) {
	case string:
		return ParseValue(v)
	case nil, bool:
		return 0, fmt.Errorf("%w: %#v", ErrNotANumber, i)
	}
	v, err := cast.ToFloat64E(i)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, err)
	}
	return checkValue(v)
}

func checkValue(v float64) (float64, error) {
	if math.IsNaN(v) {
		return 0, ErrNotANumber
	}
	if math.IsInf(v, 0) {
		return 0, ErrTooLarge
	}
	return v, nil
}
