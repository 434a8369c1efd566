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

// Command conversor is a unit converter with console, command-line and
// web interfaces.
package main

import (
	"fmt"
	"os"

	"github.com/unitconv/conversor/conversorutil"
)

func main() {
	var commands int
	for _, arg := range os.Args { // Count the number of supplied commands.
		if arg != "" && arg[0] != '-' {
			commands++
		}
	}
	if commands == 1 { // If only one command was supplied, start the GUI server.
		conversorutil.StartWebServer(conversorutil.Cfg.GetString("GUIAddress"))
	}

	// If more than one command was supplied, run in CLI mode.
	conversorutil.Root.SetArgs(conversorutil.Args(os.Args[1:]))
	if err := conversorutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
