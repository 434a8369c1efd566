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
	"errors"
	"fmt"
)

var (
	// ErrInvalidUnit is matched by every error about a unit identifier
	// that is not recognized.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrInvalidDomain indicates a domain name that is not recognized.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrDimensionMismatch indicates a conversion between units of
	// different physical quantities.
	ErrDimensionMismatch = errors.New("mismatched dimensions")
)

// InvalidUnitError is returned when a unit identifier is absent from the
// table of a domain. Domain is empty when the unit was looked up across
// all domains.
type InvalidUnitError struct {
	Domain string
	Unit   string
}

func (e *InvalidUnitError) Error() string {
	if e.Domain == "" {
		return fmt.Sprintf("conversor: %v %q", ErrInvalidUnit, e.Unit)
	}
	return fmt.Sprintf("conversor: %v %q for domain %s", ErrInvalidUnit, e.Unit, e.Domain)
}

// Is makes errors.Is(err, ErrInvalidUnit) true for an *InvalidUnitError.
func (e *InvalidUnitError) Is(target error) bool {
	return target == ErrInvalidUnit
}
