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

// Package conversorutil contains the command-line, console and web
// interfaces to the conversor package.
package conversorutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/unitconv/conversor"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// logger is replaced by one configured from Cfg before each command runs.
var logger = logrus.StandardLogger()

// stdin is where the console reads its answers from.
var stdin io.Reader = os.Stdin

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to Conversor.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the minimum level of messages that are logged:
              debug, info, warning, error, fatal or panic.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogFile",
			usage: `
              LogFile is the path to a file that log messages are appended to.
              If it is empty, messages are written to standard error.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Precision",
			usage: `
              Precision is the number of significant digits in printed results.
              The default of -1 prints as many digits as needed to represent
              each value exactly.`,
			shorthand:  "p",
			defaultVal: -1,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Aliases",
			usage: `
              Aliases are additional names for units, as a map from the alias
              to the name of the unit, for example {"kilometro": "kilometros"}.
              Aliases are matched regardless of case, after the built-in ones.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "value",
			usage: `
              value is the value to convert. It can be a number or an arithmetic
              expression, which may use pi, e, sqrt(x) and pow(x, y).`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "from",
			usage: `
              from is the unit the value is expressed in.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "to",
			usage: `
              to is the unit to convert the value to.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "domain",
			usage: `
              domain restricts units to a single conversion system, for example
              temperatura or longitud. When converting, it is found from the
              source unit if not given. When writing tables, all systems are
              included if it is not given.`,
			shorthand:  "d",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags(), tableCmd.Flags()},
		},
		{
			name: "input",
			usage: `
              input is the path to a TOML file with a list of conversions.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output is the path of the Excel workbook to write.`,
			shorthand:  "o",
			defaultVal: "conversiones.xlsx",
			flagsets:   []*pflag.FlagSet{tableCmd.Flags()},
		},
		{
			name: "GUIAddress",
			usage: `
              GUIAddress is the address the graphical interface is served at.`,
			defaultVal: "localhost:7171",
			flagsets:   []*pflag.FlagSet{guiCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("CONVERSOR")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := strings.TrimSpace(b.String())
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(listCmd)
	Root.AddCommand(consoleCmd)
	Root.AddCommand(guiCmd)
	Root.AddCommand(batchCmd)
	Root.AddCommand(tableCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets up logging.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("conversor: problem reading configuration file: %v", err)
		}
	}
	l, err := newLogger(Cfg)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "conversor",
	Short: "A unit converter.",
	Long: `Conversor converts values between units of temperature, length, mass,
volume, energy, area, speed, time, power, angle, pressure and digital data.
Use the subcommands specified below to access its functionality. Run without
any arguments to open the graphical interface in a web browser.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'CONVERSOR_var' where 'var'
is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Conversor.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Conversor v%s\n", conversor.Version)
	},
	DisableAutoGenTag: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert [value from to]",
	Short: "Convert a value between units.",
	Long: `convert converts a value from one unit to another and prints the result
along with its SI equivalent. The value and units can be given as arguments,
for example 'conversor convert 100 celsius fahrenheit', or with the --value,
--from and --to options. Units may be given by name or by alias ('km', '°F').
Negative values must follow a '--' argument or be given with --value.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("conversor: convert needs 0 or 3 arguments but got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		value, from, to := Cfg.GetString("value"), Cfg.GetString("from"), Cfg.GetString("to")
		if len(args) == 3 {
			value, from, to = args[0], args[1], args[2]
		}
		v, err := ParseValue(value)
		if err != nil {
			return fmt.Errorf("conversor: value %q: %w", value, err)
		}
		r, err := resolver(Cfg)
		if err != nil {
			return err
		}
		res, err := Convert(r, Cfg.GetString("domain"), v, from, to)
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"domain": res.Domain.Name,
			"from":   res.From,
			"to":     res.To,
		}).Debug("converted")
		fmt.Fprintln(cmd.OutOrStdout(), res.Line(Cfg.GetInt("Precision")))
		return nil
	},
	DisableAutoGenTag: true,
}

var listCmd = &cobra.Command{
	Use:   "list [domain]",
	Short: "List conversion systems and units.",
	Long: `list prints the available conversion systems. If a system is given, it
prints the units of that system instead, along with their aliases.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if len(args) == 0 {
			for i, d := range conversor.Domains() {
				fmt.Fprintf(w, "%2d. %-12s %s (base: %s, SI: %s)\n", i+1, d.Name, d.Title, d.Base, d.SI)
			}
			return nil
		}
		d, ok := conversor.ResolveDomain(args[0])
		if !ok {
			return fmt.Errorf("conversor: %w %q", conversor.ErrInvalidDomain, args[0])
		}
		for i, u := range d.Units() {
			fmt.Fprintf(w, "%2d. %-40s %s\n", i+1, u.Name, strings.Join(d.Aliases(u.Name), ", "))
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var consoleCmd = &cobra.Command{
	Use:     "console",
	Aliases: []string{"cli", "terminal"},
	Short:   "Convert values interactively in the terminal.",
	Long: `console starts a menu-driven session in the terminal. Choose a conversion
system, then the source unit, the value and the destination unit, by number
or by name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolver(Cfg)
		if err != nil {
			return err
		}
		c := NewConsole(stdin, cmd.OutOrStdout(), logger)
		c.Resolver = r
		c.Precision = Cfg.GetInt("Precision")
		return c.Run(context.Background())
	},
	DisableAutoGenTag: true,
}

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the graphical interface.",
	Long: `gui serves a form for the commands in this program and opens it in a web
browser.`,
	Run: func(cmd *cobra.Command, args []string) {
		StartWebServer(Cfg.GetString("GUIAddress"))
	},
	DisableAutoGenTag: true,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run a list of conversions from a file.",
	Long: `batch reads a list of conversions from the TOML file given by --input
and prints one result per line. An example file is:

  [[Conversion]]
  Value = 100
  From = "celsius"
  To = "fahrenheit"

  [[Conversion]]
  Value = "2*pi"
  From = "rad"
  To = "grados"
  Domain = "angulos"

Conversions that fail are logged and the command fails after the rest have
been run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := os.ExpandEnv(Cfg.GetString("input"))
		if path == "" {
			return fmt.Errorf("conversor: you need to specify an input file (for example: --input=conversiones.toml)")
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("conversor: opening batch file: %v", err)
		}
		defer f.Close()
		b, err := ReadBatch(f)
		if err != nil {
			return err
		}
		r, err := resolver(Cfg)
		if err != nil {
			return err
		}
		return b.Run(cmd.OutOrStdout(), r, Cfg.GetInt("Precision"), logger)
	},
	DisableAutoGenTag: true,
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Write conversion tables to an Excel workbook.",
	Long: `table writes a workbook with one sheet per conversion system. Each sheet
holds the matrix of conversion factors: the cell in row A and column B is the
number of B in one A. Use --domain to write a single system.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		domains := conversor.Domains()
		if name := Cfg.GetString("domain"); name != "" {
			d, ok := conversor.ResolveDomain(name)
			if !ok {
				return fmt.Errorf("conversor: %w %q", conversor.ErrInvalidDomain, name)
			}
			domains = []*conversor.Domain{d}
		}
		path := os.ExpandEnv(Cfg.GetString("output"))
		if err := WriteTable(path, domains...); err != nil {
			return err
		}
		logger.WithField("file", path).Info("wrote conversion tables")
		return nil
	},
	DisableAutoGenTag: true,
}
