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
	"io"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/unitconv/conversor"
)

// Batch is a list of conversions read from a TOML file.
type Batch struct {
	Conversion []BatchConversion
}

// BatchConversion is a single entry of a Batch.
type BatchConversion struct {
	// Value is a number or an expression string such as "2*pi".
	Value interface{}

	From, To string

	// Domain optionally restricts From and To to one conversion system.
	Domain string
}

// ReadBatch decodes a Batch from TOML.
func ReadBatch(r io.Reader) (*Batch, error) {
	var b Batch
	if _, err := toml.DecodeReader(r, &b); err != nil {
		return nil, fmt.Errorf("conversor: reading batch file: %v", err)
	}
	return &b, nil
}

// Run runs the conversions in b, writing one line per successful
// conversion to w. Failed conversions are logged and do not stop the
// others, but cause an error to be returned at the end.
func (b *Batch) Run(w io.Writer, r *conversor.Resolver, prec int, log logrus.FieldLogger) error {
	var failed int
	for i, c := range b.Conversion {
		entry := log.WithFields(logrus.Fields{
			"entry": i + 1,
			"from":  c.From,
			"to":    c.To,
		})
		v, err := toValue(c.Value)
		if err != nil {
			entry.WithError(err).Error("invalid value")
			failed++
			continue
		}
		res, err := Convert(r, c.Domain, v, c.From, c.To)
		if err != nil {
			entry.WithError(err).Error("conversion failed")
			failed++
			continue
		}
		fmt.Fprintln(w, res.Line(prec))
	}
	if failed > 0 {
		return fmt.Errorf("conversor: %d of %d conversions failed", failed, len(b.Conversion))
	}
	return nil
}
