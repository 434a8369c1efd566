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

import "strings"

// Mode arguments accepted in place of the console and gui commands.
var (
	consoleModes = []string{"0", "terminal", "ter", "t", "false", "cli"}
	guiModes     = []string{"1", "customtkinter", "ctkinter", "ctk", "c", "true", "gui"}
)

// Args translates a sole mode argument, such as "t" or "1", into the
// command it selects. Other arguments are returned unchanged.
func Args(args []string) []string {
	if len(args) != 1 {
		return args
	}
	a := strings.ToLower(args[0])
	for _, m := range consoleModes {
		if a == m {
			return []string{consoleCmd.Name()}
		}
	}
	for _, m := range guiModes {
		if a == m {
			return []string{guiCmd.Name()}
		}
	}
	return args
}
