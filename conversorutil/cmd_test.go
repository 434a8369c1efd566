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
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/unitconv/conversor"
)

// execute runs Root with the given arguments and returns what it printed.
func execute(args ...string) (string, error) {
	var buf bytes.Buffer
	Root.SetOutput(&buf)
	defer Root.SetOutput(nil)
	Root.SetArgs(args)
	err := Root.Execute()
	return buf.String(), err
}

// set sets a command-line option for the duration of a test. The flag is
// put back to its default, unchanged state afterwards so that it no longer
// overrides the environment or the configuration file.
func set(t *testing.T, name, value string) func() {
	var f *pflag.Flag
	for _, o := range options {
		if o.name == name {
			f = o.flagsets[0].Lookup(name)
		}
	}
	if f == nil {
		t.Fatalf("no option %s", name)
	}
	if err := f.Value.Set(value); err != nil {
		t.Fatal(err)
	}
	f.Changed = true
	return func() {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
}

func TestVersion(t *testing.T) {
	out, err := execute("version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "Conversor v" + conversor.Version + "\n"; out != want {
		t.Errorf("have %q, want %q", out, want)
	}
}

func TestConvertCmd(t *testing.T) {
	t.Run("args", func(t *testing.T) {
		out, err := execute("convert", "100", "celsius", "fahrenheit")
		if err != nil {
			t.Fatal(err)
		}
		if want := "100 celsius = 212 fahrenheit (SI: 373.15 K)\n"; out != want {
			t.Errorf("have %q, want %q", out, want)
		}
	})
	t.Run("aliases", func(t *testing.T) {
		out, err := execute("convert", "1", "KiB", "B")
		if err != nil {
			t.Fatal(err)
		}
		if want := "1 kibibytes = 1024 bytes (SI: 8192 bit)\n"; out != want {
			t.Errorf("have %q, want %q", out, want)
		}
	})
	t.Run("negative", func(t *testing.T) {
		out, err := execute("convert", "--", "-40", "°F", "°C")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out, "-40 fahrenheit = -40 celsius") {
			t.Errorf("have %q", out)
		}
	})
	t.Run("options", func(t *testing.T) {
		defer set(t, "value", "2*pi")()
		defer set(t, "from", "rad")()
		defer set(t, "to", "grados")()
		defer set(t, "domain", "angulos")()
		out, err := execute("convert")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out, "6.283185307179586 radianes = 360 grados") {
			t.Errorf("have %q", out)
		}
	})
	t.Run("precision", func(t *testing.T) {
		defer set(t, "Precision", "4")()
		out, err := execute("convert", "5", "km", "mi")
		if err != nil {
			t.Fatal(err)
		}
		if want := "5 kilometros = 3.107 millas (SI: 5000 m)\n"; out != want {
			t.Errorf("have %q, want %q", out, want)
		}
	})
	t.Run("env", func(t *testing.T) {
		os.Setenv("CONVERSOR_PRECISION", "3")
		defer os.Unsetenv("CONVERSOR_PRECISION")
		out, err := execute("convert", "1", "mi", "km")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out, "1 millas = 1.61 kilometros") {
			t.Errorf("have %q", out)
		}
	})
	t.Run("user_aliases", func(t *testing.T) {
		defer set(t, "Aliases", `{"legua": "kilometros"}`)()
		out, err := execute("convert", "2", "Legua", "m")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out, "2 kilometros = 2000 metros") {
			t.Errorf("have %q", out)
		}
	})
	t.Run("bad_user_alias", func(t *testing.T) {
		defer set(t, "Aliases", `{"legua": "leguas"}`)()
		_, err := execute("convert", "2", "km", "m")
		if !errors.Is(err, conversor.ErrInvalidUnit) {
			t.Errorf("want ErrInvalidUnit, got %v", err)
		}
	})
	t.Run("mismatch", func(t *testing.T) {
		_, err := execute("convert", "1", "km", "kg")
		if !errors.Is(err, conversor.ErrDimensionMismatch) {
			t.Errorf("want ErrDimensionMismatch, got %v", err)
		}
	})
	t.Run("wrong_domain", func(t *testing.T) {
		defer set(t, "domain", "masa")()
		_, err := execute("convert", "1", "km", "m")
		if !errors.Is(err, conversor.ErrInvalidUnit) {
			t.Errorf("want ErrInvalidUnit, got %v", err)
		}
	})
	t.Run("unknown_domain", func(t *testing.T) {
		defer set(t, "domain", "colores")()
		_, err := execute("convert", "1", "km", "m")
		if !errors.Is(err, conversor.ErrInvalidDomain) {
			t.Errorf("want ErrInvalidDomain, got %v", err)
		}
	})
	t.Run("bad_value", func(t *testing.T) {
		_, err := execute("convert", "diez", "km", "m")
		if !errors.Is(err, ErrNotANumber) {
			t.Errorf("want ErrNotANumber, got %v", err)
		}
	})
	t.Run("arg_count", func(t *testing.T) {
		if _, err := execute("convert", "1", "km"); err == nil {
			t.Error("want an error for two arguments")
		}
	})
}

func TestListCmd(t *testing.T) {
	out, err := execute("list")
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range conversor.Domains() {
		if !strings.Contains(out, d.Name) {
			t.Errorf("list is missing %s", d.Name)
		}
	}

	out, err = execute("list", "data")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, " 7. kibibytes") || !strings.Contains(out, "KiB, kibibyte") {
		t.Errorf("unexpected units list:\n%s", out)
	}

	if _, err = execute("list", "colores"); !errors.Is(err, conversor.ErrInvalidDomain) {
		t.Errorf("want ErrInvalidDomain, got %v", err)
	}
}

func TestConsoleCmd(t *testing.T) {
	defer func() { stdin = os.Stdin }()
	for _, name := range []string{"console", "cli", "terminal"} {
		stdin = strings.NewReader("1\nc\n100\nf\n3\n")
		out, err := execute(name)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, ">> 100 celsius equivalen a 212 fahrenheit") {
			t.Errorf("%s: unexpected output:\n%s", name, out)
		}
	}
}

func TestConfigFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "conversor")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	cfgFile := filepath.Join(dir, "config.toml")
	err = ioutil.WriteFile(cfgFile, []byte(`Precision = 2

[Aliases]
braza = "metros"
`), 0644)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		// Clear the values read from the file.
		empty := filepath.Join(dir, "empty.toml")
		ioutil.WriteFile(empty, nil, 0644)
		Cfg.SetConfigFile(empty)
		Cfg.ReadInConfig()
	}()
	defer set(t, "config", cfgFile)()

	out, err := execute("convert", "10", "braza", "ft")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "10 metros = 33 pies") {
		t.Errorf("have %q", out)
	}

	Root.PersistentFlags().Set("config", filepath.Join(dir, "missing.toml"))
	if _, err := execute("version"); err == nil {
		t.Error("want an error for a missing configuration file")
	}
}

func TestLogLevel(t *testing.T) {
	defer set(t, "LogLevel", "verbose")()
	if _, err := execute("version"); err == nil {
		t.Error("want an error for an invalid log level")
	}
}

func TestLogFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "conversor")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	logPath := filepath.Join(dir, "conversor.log")
	defer set(t, "LogFile", logPath)()
	defer set(t, "LogLevel", "debug")()

	if _, err := execute("convert", "1", "h", "min"); err != nil {
		t.Fatal(err)
	}
	b, err := ioutil.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "msg=converted") || !strings.Contains(string(b), "domain=tiempo") {
		t.Errorf("unexpected log:\n%s", b)
	}
}
