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
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/tealeg/xlsx"
	"github.com/unitconv/conversor"
	"gonum.org/v1/gonum/mat"
)

// matrixCache holds previously calculated conversion matrices.
var matrixCache *requestcache.Cache

var loadMatrixCacheOnce sync.Once

// Matrix returns the conversion matrix of d. The element at row i and
// column j is the value of one of the i-th unit of d expressed in the j-th
// unit.
func Matrix(ctx context.Context, d *conversor.Domain) (*mat.Dense, error) {
	loadMatrixCacheOnce.Do(func() {
		matrixCache = requestcache.NewCache(matrixWorker, runtime.GOMAXPROCS(-1),
			requestcache.Deduplicate(), requestcache.Memory(len(conversor.Domains())))
	})
	r := matrixCache.NewRequest(ctx, d, "matrix_"+d.Name)
	mI, err := r.Result()
	if err != nil {
		return nil, err
	}
	return mI.(*mat.Dense), nil
}

func matrixWorker(ctx context.Context, req interface{}) (interface{}, error) {
	d := req.(*conversor.Domain)
	names := d.UnitNames()
	m := mat.NewDense(len(names), len(names), nil)
	for i, from := range names {
		for j, to := range names {
			v, err := d.Convert(1, from, to)
			if err != nil {
				return nil, err
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}

// WriteTable writes the conversion matrices of the given domains to an
// Excel workbook at path, one sheet per domain. The first row and column
// of each sheet hold the unit names.
func WriteTable(path string, domains ...*conversor.Domain) error {
	f := xlsx.NewFile()
	for _, d := range domains {
		m, err := Matrix(context.Background(), d)
		if err != nil {
			return err
		}
		s, err := f.AddSheet(d.Name)
		if err != nil {
			return fmt.Errorf("conversor: adding sheet: %v", err)
		}
		names := d.UnitNames()
		header := s.AddRow()
		header.AddCell().SetString(d.Title)
		for _, n := range names {
			header.AddCell().SetString(n)
		}
		for i, n := range names {
			row := s.AddRow()
			row.AddCell().SetString(n)
			for j := range names {
				row.AddCell().SetFloat(m.At(i, j))
			}
		}
	}
	if err := f.Save(path); err != nil {
		return fmt.Errorf("conversor: writing table: %v", err)
	}
	return nil
}

// ReadTable reads the conversion matrix of the named domain from a
// workbook written by WriteTable, along with the unit names of its rows.
func ReadTable(path, domain string) (*mat.Dense, []string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("conversor: opening xlsx file: %v", err)
	}
	s, ok := f.Sheet[domain]
	if !ok {
		return nil, nil, fmt.Errorf("conversor: reading table; no sheet %s", domain)
	}
	n := len(s.Rows) - 1
	if n < 1 {
		return nil, nil, fmt.Errorf("conversor: reading table; sheet %s is empty", domain)
	}
	names := make([]string, n)
	o := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		names[i] = strings.TrimSpace(s.Cell(i+1, 0).Value)
		for j := 0; j < n; j++ {
			v, err := strconv.ParseFloat(s.Cell(i+1, j+1).Value, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("conversor: reading table: %v", err)
			}
			o.Set(i, j, v)
		}
	}
	return o, names, nil
}
