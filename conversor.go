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

// Package conversor converts values between units of the same physical
// quantity: temperature, length, mass, volume, energy, area, speed, time,
// power, angle, pressure and digital-data size.
//
// Each quantity is a Domain. Every unit in a domain is related to the
// domain's base unit by a factor and, for temperature, an offset, so a
// conversion is a trip to the base unit and back out again:
//
//	base  = (value - offset[from]) * factor[from]
//	value = base/factor[to] + offset[to]
//
// Values can also be expressed as SI quantities (see Domain.Quantity),
// which carry the physical dimensions of the domain and are used to
// reject conversions between incompatible units.
package conversor

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"
)

// Version gives the version number.
const Version = "1.1.0"

// Unit is a unit of measure within a Domain. A value v expressed in the
// unit equals (v-Offset)*Factor in the base unit of the domain.
type Unit struct {
	// Name is the canonical identifier of the unit, e.g. "kilometros".
	Name string

	// Factor is the size of the unit in base units.
	Factor float64

	// Offset is the zero point of the unit on the scale of the base unit.
	// It is only non-zero for temperature units.
	Offset float64

	aliases []string
}

// lin returns a unit related linearly to its base unit.
func lin(name string, factor float64, aliases ...string) Unit {
	return Unit{Name: name, Factor: factor, aliases: aliases}
}

// affine returns a unit whose zero point differs from that of the base unit.
func affine(name string, factor, offset float64, aliases ...string) Unit {
	return Unit{Name: name, Factor: factor, Offset: offset, aliases: aliases}
}

func (u Unit) toBase(v float64) float64 { return (v - u.Offset) * u.Factor }

func (u Unit) fromBase(b float64) float64 { return b/u.Factor + u.Offset }

// Domain is a physical quantity and the units it can be expressed in.
type Domain struct {
	// Name is the canonical identifier of the domain, e.g. "longitud".
	Name string

	// Title is a human-readable name.
	Title string

	// Base is the unit every conversion in the domain pivots through.
	Base string

	// SI is the unit in which Quantity values are expressed.
	SI string

	// Dimensions are the physical dimensions of the SI unit.
	Dimensions unit.Dimensions

	aliases []string
	units   []Unit
	index   map[string]int
	alias   aliasIndex
}

// newDomain creates a domain and checks that its table is usable. It panics
// on an invalid table, which can only happen from a programming error.
func newDomain(name, title, base, si string, dims unit.Dimensions, aliases []string, units ...Unit) *Domain {
	d := &Domain{
		Name:       name,
		Title:      title,
		Base:       base,
		SI:         si,
		Dimensions: dims,
		aliases:    aliases,
		units:      units,
		index:      make(map[string]int, len(units)),
	}
	for i, u := range units {
		if u.Factor == 0 || math.IsNaN(u.Factor) || math.IsInf(u.Factor, 0) {
			panic(fmt.Errorf("conversor: unit %s in domain %s has invalid factor %g", u.Name, name, u.Factor))
		}
		if _, ok := d.index[u.Name]; ok {
			panic(fmt.Errorf("conversor: unit %s defined twice in domain %s", u.Name, name))
		}
		d.index[u.Name] = i
	}
	b, ok := d.Unit(base)
	if !ok || b.Factor != 1 || b.Offset != 0 {
		panic(fmt.Errorf("conversor: domain %s has invalid base unit %s", name, base))
	}
	if !d.Has(si) {
		panic(fmt.Errorf("conversor: domain %s has invalid SI unit %s", name, si))
	}
	return d
}

// Units returns the units of the domain in menu order.
func (d *Domain) Units() []Unit {
	o := make([]Unit, len(d.units))
	copy(o, d.units)
	return o
}

// UnitNames returns the canonical identifiers of the units of the domain
// in menu order.
func (d *Domain) UnitNames() []string {
	o := make([]string, len(d.units))
	for i, u := range d.units {
		o[i] = u.Name
	}
	return o
}

// Unit returns the unit with the given canonical identifier.
func (d *Domain) Unit(name string) (Unit, bool) {
	i, ok := d.index[name]
	if !ok {
		return Unit{}, false
	}
	return d.units[i], true
}

// Has returns whether the domain has a unit with the given canonical
// identifier.
func (d *Domain) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Convert converts value from unit from to unit to. Both must be canonical
// unit identifiers of the domain, otherwise an *InvalidUnitError is
// returned. Converting a value to its own unit returns it unchanged.
func (d *Domain) Convert(value float64, from, to string) (float64, error) {
	src, ok := d.Unit(from)
	if !ok {
		return 0, &InvalidUnitError{Domain: d.Name, Unit: from}
	}
	dst, ok := d.Unit(to)
	if !ok {
		return 0, &InvalidUnitError{Domain: d.Name, Unit: to}
	}
	if from == to {
		return value, nil
	}
	return dst.fromBase(src.toBase(value)), nil
}

// Quantity returns value, expressed in unit from, as an SI quantity with
// the dimensions of the domain.
func (d *Domain) Quantity(value float64, from string) (*unit.Unit, error) {
	v, err := d.Convert(value, from, d.SI)
	if err != nil {
		return nil, err
	}
	return unit.New(v, d.Dimensions), nil
}

// FromQuantity expresses the SI quantity q in unit to. It returns an error
// wrapping ErrDimensionMismatch if q does not have the dimensions of the
// domain.
func (d *Domain) FromQuantity(q *unit.Unit, to string) (float64, error) {
	if !Compatible(q, unit.New(0, d.Dimensions)) {
		return 0, fmt.Errorf("conversor: %w: %s: have %v, want %v",
			ErrDimensionMismatch, d.Name, q.Dimensions(), d.Dimensions)
	}
	return d.Convert(q.Value(), d.SI, to)
}
