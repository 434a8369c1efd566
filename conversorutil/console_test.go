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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/unitconv/conversor"
)

// session runs a console session with the given input lines.
func session(t *testing.T, r *conversor.Resolver, lines ...string) (string, *logtest.Hook, error) {
	log, hook := logtest.NewNullLogger()
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, log)
	c.Resolver = r
	err := c.Run(context.Background())
	return out.String(), hook, err
}

func TestConsoleConvert(t *testing.T) {
	out, hook, err := session(t, nil, "1", "c", "100", "f", "3")
	require.NoError(t, err)
	require.Contains(t, out, "1. Temperatura")
	require.Contains(t, out, "12. Datos")
	require.Contains(t, out, "0. Salir")
	require.Contains(t, out, "Se eligio el sistema: TEMPERATURA...")
	require.Contains(t, out, "3. Fahrenheit")
	require.Contains(t, out, "0. Volver al menu principal")
	require.Contains(t, out, ">> 100 celsius equivalen a 212 fahrenheit")
	require.Contains(t, out, "SI: 373.15 K")
	require.True(t, strings.HasSuffix(out, "Saliendo del programa...\n"))
	require.Empty(t, hook.Entries)
}

func TestConsoleKeepsValidAnswers(t *testing.T) {
	out, hook, err := session(t, nil,
		"temp", "celsius", "abc", "sqrt('x')", "100", "rankine", "k", // three mistakes
		"2",      // stay in the same system
		"0", "0", // back to the main menu, then exit
	)
	require.NoError(t, err)
	require.Contains(t, out, "ERROR: Debes ingresar un número válido")
	require.Contains(t, out, "ERROR: Unidad ingresada invalida")
	require.Contains(t, out, "Unidad de entrada: celsius\n")
	require.Contains(t, out, "Valor: 100\n")
	require.Contains(t, out, ">> 100 celsius equivalen a 373.15 kelvin")
	require.Contains(t, out, "2. Seguir con TEMPERATURA")
	require.Contains(t, out, "Volviendo al menu principal...")
	require.Equal(t, 1, strings.Count(out, "Se eligio el sistema"))
	require.Equal(t, 2, strings.Count(out, "ERROR: Debes ingresar un número válido"))
	require.Len(t, hook.Entries, 3)
	require.Equal(t, "sqrt('x')", hook.Entries[1].Data["input"])
	require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	require.Equal(t, "rankine", hook.LastEntry().Data["input"])
	require.Equal(t, "temperatura", hook.LastEntry().Data["domain"])
}

func TestConsoleInvalidSystem(t *testing.T) {
	out, hook, err := session(t, nil, "colores", "0")
	require.NoError(t, err)
	require.Contains(t, out, "No es una opcion valida!!")
	require.Len(t, hook.Entries, 1)
}

func TestConsoleUnknownFollowUp(t *testing.T) {
	out, _, err := session(t, nil, "angulos", "rad", "pi", "grados", "9", "0")
	require.NoError(t, err)
	require.Contains(t, out, ">> 3.141592653589793 radianes equivalen a 180 grados")
	require.Contains(t, out, "Opcion no reconocida. Volviendo al menu principal...")
	require.Equal(t, 2, strings.Count(out, "----------Conversor de Unidades----------"))
}

func TestConsoleChangeSystem(t *testing.T) {
	out, _, err := session(t, nil,
		"2", "km", "1", "m", "1",
		"tiempo", "h", "1", "s", "3")
	require.NoError(t, err)
	require.Contains(t, out, ">> 1 kilometros equivalen a 1000 metros")
	require.Contains(t, out, ">> 1 horas equivalen a 3600 segundos")
}

func TestConsoleEOF(t *testing.T) {
	out, _, err := session(t, nil, "2", "km")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "Saliendo del programa...\n"))
	require.NotContains(t, out, "equivalen")
}

func TestConsoleTooLarge(t *testing.T) {
	out, hook, err := session(t, nil, "masa", "kg", "1e400", "1", "g", "3")
	require.NoError(t, err)
	require.Contains(t, out, "ERROR: El número es demasiado grande")
	require.Contains(t, out, ">> 1 kilogramos equivalen a 1000 gramos")
	require.Len(t, hook.Entries, 1)
}

func TestConsoleUserAliases(t *testing.T) {
	r, err := conversor.NewResolver(map[string]string{"tb": "terabytes"})
	require.NoError(t, err)
	out, _, err := session(t, r, "datos", "GB", "1000", "tb", "3")
	require.NoError(t, err)
	// "tb" is a built-in alias of terabits, which takes precedence.
	require.Contains(t, out, ">> 1000 gigabytes equivalen a 8 terabits")

	r, err = conversor.NewResolver(map[string]string{"teras": "terabytes"})
	require.NoError(t, err)
	out, _, err = session(t, r, "datos", "GB", "1000", "Teras", "3")
	require.NoError(t, err)
	require.Contains(t, out, ">> 1000 gigabytes equivalen a 1 terabytes")
}

func TestConsoleCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewConsole(strings.NewReader("1\n"), &bytes.Buffer{}, logrus.New())
	require.Equal(t, context.Canceled, c.Run(ctx))
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "Millas Nauticas", displayName("millas_nauticas"))
	require.Equal(t, "Bits", displayName("bits"))
}
