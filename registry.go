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

package conversor

import (
	"fmt"

	"github.com/ctessum/unit"
)

// domains holds every domain in menu order.
var domains = []*Domain{
	Temperature, Length, Mass, Volume, Energy, Area,
	Speed, Time, Power, Angle, Pressure, Data,
}

var (
	domainIndex = make(map[string]*Domain)
	unitIndex   = make(map[string]*Domain)
)

func init() {
	for _, d := range domains {
		if _, ok := domainIndex[d.Name]; ok {
			panic(fmt.Errorf("conversor: domain %s defined twice", d.Name))
		}
		domainIndex[d.Name] = d
		for _, u := range d.units {
			if o, ok := unitIndex[u.Name]; ok {
				panic(fmt.Errorf("conversor: unit %s is in domains %s and %s", u.Name, o.Name, d.Name))
			}
			unitIndex[u.Name] = d
		}
		d.indexAliases()
	}
}

// Domains returns all of the domains in menu order.
func Domains() []*Domain {
	o := make([]*Domain, len(domains))
	copy(o, domains)
	return o
}

// DomainByName returns the domain with the given canonical identifier.
func DomainByName(name string) (*Domain, error) {
	d, ok := domainIndex[name]
	if !ok {
		return nil, fmt.Errorf("conversor: %w %q", ErrInvalidDomain, name)
	}
	return d, nil
}

// DomainOf returns the domain that the unit with the given canonical
// identifier belongs to.
func DomainOf(unitName string) (*Domain, error) {
	d, ok := unitIndex[unitName]
	if !ok {
		return nil, &InvalidUnitError{Unit: unitName}
	}
	return d, nil
}

// Convert converts value between two units that may be given without
// naming their domain. It returns an error wrapping ErrDimensionMismatch if
// the units measure different quantities.
func Convert(value float64, from, to string) (float64, error) {
	src, err := DomainOf(from)
	if err != nil {
		return 0, err
	}
	dst, err := DomainOf(to)
	if err != nil {
		return 0, err
	}
	if src == dst {
		return src.Convert(value, from, to)
	}
	q, err := src.Quantity(value, from)
	if err != nil {
		return 0, err
	}
	return dst.FromQuantity(q, to)
}

// Compatible returns whether quantities a and b measure the same thing.
func Compatible(a, b *unit.Unit) bool {
	return unit.DimensionsMatch(a, b)
}
