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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/unitconv/conversor"
)

// Console is an interactive, menu-driven conversion session.
type Console struct {
	// Resolver resolves the unit names typed by the user.
	Resolver *conversor.Resolver

	// Precision is the number of significant digits in results, or -1
	// for as many as needed.
	Precision int

	in  *bufio.Scanner
	out io.Writer
	log logrus.FieldLogger
}

// NewConsole returns a console session reading answers from r and
// writing menus and results to w. Invalid input is logged to log.
func NewConsole(r io.Reader, w io.Writer, log logrus.FieldLogger) *Console {
	return &Console{
		Precision: -1,
		in:        bufio.NewScanner(r),
		out:       w,
		log:       log,
	}
}

// prompt prints p and returns the next line of input. It returns io.EOF
// when the input is exhausted.
func (c *Console) prompt(p string) (string, error) {
	fmt.Fprint(c.out, p)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) mainMenu() {
	fmt.Fprintln(c.out, "----------Conversor de Unidades----------")
	for i, d := range conversor.Domains() {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, d.Title)
	}
	fmt.Fprintln(c.out, "0. Salir")
}

func (c *Console) unitMenu(d *conversor.Domain) {
	fmt.Fprintf(c.out, "--------------------%s--------------------\n", strings.ToUpper(d.Name))
	for i, u := range d.UnitNames() {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, displayName(u))
	}
	fmt.Fprintln(c.out, "0. Volver al menu principal")
}

// displayName turns "millas_nauticas" into "Millas Nauticas".
func displayName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Run runs the session until the user exits, the input ends or ctx is
// cancelled.
func (c *Console) Run(ctx context.Context) error {
	err := c.run(ctx)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err == nil {
		fmt.Fprintln(c.out, "Saliendo del programa...")
	}
	return err
}

func (c *Console) run(ctx context.Context) error {
	var d *conversor.Domain
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d == nil {
			c.mainMenu()
			s, err := c.prompt("Elije tu sistema de conversion: ")
			if err != nil {
				return err
			}
			if s == "0" {
				return nil
			}
			var ok bool
			if d, ok = conversor.ResolveDomain(s); !ok {
				c.log.WithField("input", s).Error("invalid conversion system")
				fmt.Fprintln(c.out, "No es una opcion valida!!")
				continue
			}
			fmt.Fprintf(c.out, "Se eligio el sistema: %s...\n", strings.ToUpper(d.Name))
		}

		r, err := c.request(ctx, d)
		if err != nil {
			return err
		}
		if r == nil {
			fmt.Fprintln(c.out, "Volviendo al menu principal...")
			d = nil
			continue
		}
		fmt.Fprintf(c.out, ">> %s %s equivalen a %s %s\n",
			formatValue(r.Value, c.Precision), r.From, formatValue(r.Result, c.Precision), r.To)
		fmt.Fprintf(c.out, "   SI: %s\n", formatSI(r.SI, c.Precision))

		fmt.Fprintln(c.out, "Quieres cambiar de sistema?")
		fmt.Fprintln(c.out, "1. Cambiar sistema")
		fmt.Fprintf(c.out, "2. Seguir con %s\n", strings.ToUpper(d.Name))
		fmt.Fprintln(c.out, "3. Salir del programa")
		s, err := c.prompt("Elije el numero de tu opcion: ")
		if err != nil {
			return err
		}
		switch s {
		case "1":
			fmt.Fprintln(c.out, "Volviendo al menu principal...")
			d = nil
		case "2":
		case "3":
			return nil
		default:
			fmt.Fprintln(c.out, "Opcion no reconocida. Volviendo al menu principal...")
			d = nil
		}
	}
}

// request asks for a source unit, a value and a destination unit in
// domain d. Answers that were valid are kept while the user corrects a
// later one. It returns nil if the user asks to go back to the main menu.
func (c *Console) request(ctx context.Context, d *conversor.Domain) (*Result, error) {
	var (
		from, to string
		value    float64
		hasValue bool
	)
	log := c.log.WithField("domain", d.Name)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c.unitMenu(d)

		if from == "" {
			s, err := c.prompt("Unidad de entrada: ")
			if err != nil {
				return nil, err
			}
			if s == "0" {
				return nil, nil
			}
			u, ok := c.Resolver.Unit(d, s)
			if !ok {
				log.WithField("input", s).Error("invalid source unit")
				fmt.Fprintln(c.out, "ERROR: Unidad ingresada invalida")
				continue
			}
			from = u
		} else {
			fmt.Fprintf(c.out, "Unidad de entrada: %s\n", from)
		}

		if !hasValue {
			s, err := c.prompt("Valor: ")
			if err != nil {
				return nil, err
			}
			v, err := ParseValue(s)
			if err != nil {
				log.WithField("input", s).WithError(err).Error("invalid value")
				fmt.Fprintf(c.out, "ERROR: %s\n", userMessage(err))
				continue
			}
			value, hasValue = v, true
		} else {
			fmt.Fprintf(c.out, "Valor: %s\n", formatValue(value, -1))
		}

		s, err := c.prompt("Unidad de salida: ")
		if err != nil {
			return nil, err
		}
		if s == "0" {
			return nil, nil
		}
		u, ok := c.Resolver.Unit(d, s)
		if !ok {
			log.WithField("input", s).Error("invalid destination unit")
			fmt.Fprintln(c.out, "ERROR: Unidad ingresada invalida")
			continue
		}
		to = u

		v, err := d.Convert(value, from, to)
		if err != nil {
			return nil, err
		}
		q, err := d.Quantity(value, from)
		if err != nil {
			return nil, err
		}
		return &Result{Domain: d, Value: value, From: from, Result: v, To: to, SI: q}, nil
	}
}

// userMessage returns the part of a value error that is shown to the
// user.
func userMessage(err error) string {
	var msg string
	switch {
	case errors.Is(err, ErrTooLarge):
		msg = ErrTooLarge.Error()
	default:
		msg = ErrNotANumber.Error()
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
