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
	"fmt"
	"strconv"

	"github.com/ctessum/unit"
	"github.com/unitconv/conversor"
)

// Result is a completed conversion.
type Result struct {
	Domain *conversor.Domain
	Value  float64
	From   string
	Result float64
	To     string

	// SI is the converted quantity expressed in SI units.
	SI *unit.Unit
}

// Convert converts value between the units named from and to, which may be
// given by alias. If domain is not empty, both units must belong to it.
// Otherwise the domain is found from the source unit.
func Convert(r *conversor.Resolver, domain string, value float64, from, to string) (*Result, error) {
	var d *conversor.Domain
	var src, dst string
	if domain != "" {
		var ok bool
		d, ok = conversor.ResolveDomain(domain)
		if !ok {
			return nil, fmt.Errorf("conversor: %w %q", conversor.ErrInvalidDomain, domain)
		}
		if src, ok = r.Unit(d, from); !ok {
			return nil, &conversor.InvalidUnitError{Domain: d.Name, Unit: from}
		}
		if dst, ok = r.Unit(d, to); !ok {
			return nil, &conversor.InvalidUnitError{Domain: d.Name, Unit: to}
		}
	} else {
		var ok bool
		d, src, ok = r.AnyUnit(from)
		if !ok {
			return nil, &conversor.InvalidUnitError{Unit: from}
		}
		// The destination is read in the domain of the source first.
		if dst, ok = r.Unit(d, to); !ok {
			if _, dst, ok = r.AnyUnit(to); !ok {
				return nil, &conversor.InvalidUnitError{Unit: to}
			}
		}
	}
	v, err := conversor.Convert(value, src, dst)
	if err != nil {
		return nil, err
	}
	q, err := d.Quantity(value, src)
	if err != nil {
		return nil, err
	}
	return &Result{Domain: d, Value: value, From: src, Result: v, To: dst, SI: q}, nil
}

// formatValue formats v with the given number of significant digits, or
// the fewest digits that represent v exactly if prec is negative.
func formatValue(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}

// formatSI formats an SI quantity along with its dimensions.
func formatSI(q *unit.Unit, prec int) string {
	if prec < 0 {
		return fmt.Sprintf("%v", q)
	}
	return fmt.Sprintf("%.*g", prec, q)
}

// Line returns a one-line description of the conversion.
func (r *Result) Line(prec int) string {
	return fmt.Sprintf("%s %s = %s %s (SI: %s)",
		formatValue(r.Value, prec), r.From, formatValue(r.Result, prec), r.To, formatSI(r.SI, prec))
}
