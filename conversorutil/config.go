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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/unitconv/conversor"
)

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) (map[string]string, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case nil:
		return make(map[string]string), nil
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		return cast.ToStringMapStringE(v)
	case string:
		o := make(map[string]string)
		if v == "" {
			return o, nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		if err := d.Decode(&o); err != nil {
			return nil, fmt.Errorf("conversor: reading %s: %v", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("conversor: invalid type for %s: %#v", varName, i)
	}
}

// resolver returns a unit resolver that includes the user-defined aliases
// in cfg.
func resolver(cfg *viper.Viper) (*conversor.Resolver, error) {
	aliases, err := GetStringMapString("Aliases", cfg)
	if err != nil {
		return nil, err
	}
	return conversor.NewResolver(aliases)
}

// logFile is the currently open log file, if any.
var logFile *os.File

// newLogger returns a logger configured by the LogLevel and LogFile
// options in cfg. Messages go to stderr when no LogFile is set.
func newLogger(cfg *viper.Viper) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.GetString("LogLevel"))
	if err != nil {
		return nil, fmt.Errorf("conversor: %v", err)
	}
	var out io.Writer = os.Stderr
	if path := os.ExpandEnv(cfg.GetString("LogFile")); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("conversor: opening log file: %v", err)
		}
		if logFile != nil {
			logFile.Close()
		}
		logFile = f
		out = f
	}
	l := logrus.New()
	l.Out = out
	l.Level = level
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	}
	return l, nil
}
