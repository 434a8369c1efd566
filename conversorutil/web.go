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
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/ctessum/gobra"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
	"github.com/unitconv/conversor"
)

// setConfigHandler reads the configuration file given in the request and
// responds with the resulting option values.
func setConfigHandler(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	configFile := r.Form.Get("config")
	Root.PersistentFlags().Set("config", configFile)
	err := setConfig()
	if err != nil {
		http.Error(w, err.Error(), 204)
		return
	}
	config := make(map[string]interface{})
	for _, option := range options {
		config[option.name] = Cfg.Get(option.name)
	}
	e := json.NewEncoder(w)
	if err := e.Encode(config); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
}

const webTemplate = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>Conversor de Unidades</title>
	<style>
		html, body {padding: 0; margin: 2% 0; font-family: sans-serif;}
		.container { max-width: 700px; margin: 0 auto; padding: 10px; }
		div[id^="gobra-"] blockquote { border-left: 3px solid #bbb; margin: .3em; color: #333; padding-left: 5px; font-size: 75%; }
		div[id^="gobra-"] code { font-weight: bold; }
		div[id^="gobra-"] input { font-family: monospace; margin-left: .2em; width: 50%; outline:none; }
		details { margin: .3em 0; }
		details code { font-size: 85%; }
		.red-border{ border: 1px solid #c35; }
		.green-border{ border: 1px solid #3c5; }
		.blue-border{ border: 1px solid #35c; }
	</style>
</head>
<body>
<div class="container">
	<h1>Conversor de Unidades</h1>
	<p>Elige el comando <code>convert</code>, escribe el valor y las unidades, y ejecuta.</p>
	<p>
		Color key: black=default;
		<font color="red">red</font>=error;
		<font color="green">green</font>=value from config file;
		<font color="blue">blue</font>=user entered
	</p>
	<div>
		{{.}}
	</div>
	<h2>Unidades</h2>
	{{range domains}}
	<details>
		<summary>{{.Title}} (<code>{{.Name}}</code>)</summary>
		{{range .UnitNames}}<code>{{.}}</code> {{end}}
	</details>
	<datalist id="units-{{.Name}}">
		{{range .UnitNames}}<option value="{{.}}">{{end}}
	</datalist>
	{{end}}
	<datalist id="units">
		{{range domains}}{{range .UnitNames}}<option value="{{.}}">{{end}}{{end}}
	</datalist>
	<footer>
		© 2026 Conversor Authors
	</footer>
</div>

<script>
// If the configuration file is changed, send the new file path
// to the server and update fields

let allFlags = [...document.querySelectorAll('[data-name]')];
allFlags.forEach(x => {
	let inputField = x.children[0];
	inputField.addEventListener("input", e => {
		inputField.classList.remove("green-border");
		inputField.classList.add("blue-border");
	})
})

// Offer the units of the chosen conversion system in the from and to
// fields, or every unit if no system is chosen.
let unitInputs = allFlags.filter(x => x.dataset.name == "from" || x.dataset.name == "to").map(x => x.children[0]);
let setUnitList = domain => {
	let id = document.getElementById("units-" + domain) ? "units-" + domain : "units";
	unitInputs.forEach(x => x.setAttribute("list", id));
};
setUnitList("");
allFlags.filter(x => x.dataset.name == "domain").forEach(x => {
	x.children[0].addEventListener("input", e => setUnitList(e.target.value.trim().toLowerCase()));
});

let configInput = allFlags.filter(x => x.dataset.name == "config")[0].children[0];
configInput.addEventListener("input", e => {
	fetch("/setConfig?config="+encodeURIComponent(configInput.value))
		.then( res => {
			if (res.status !== 200) {
				if (res.status == 204) {
					configInput.classList.remove("blue-border");
					configInput.classList.remove("green-border");
					configInput.classList.add("red-border");
				} else {
					console.log("Error fetching /setConfig: ", res.statusText);
				}
			} else {
				res.json().then( data => {
					configInput.classList.remove("red-border");
					for (let key in data)
						for(let f of allFlags)
							if (f.dataset.name == key) {
								let input = f.children[0];
								var newValue = JSON.stringify(data[key]).replace(/^"+|"+$/g,'');
								if (input.value != newValue) {
									input.value = newValue
									input.classList.remove("blue-border");
									input.classList.add("green-border");
								}
							}
				})
			}
		})
		.catch( err => {
			console.log("Error fetching /setConfig", err)
		})
})
</script>
</body>
</html>`

// webPage returns the page template that the command form is rendered
// into.
func webPage() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"domains": conversor.Domains,
	}).Parse(webTemplate))
}

// webCommands prepares the command tree under root to be shown as a web
// form. The console and the GUI itself cannot be run from the browser, so
// they are hidden.
func webCommands(root *cobra.Command) {
	root.SilenceUsage = true // We don't want the usage messages in the GUI.
	for _, cmd := range root.Commands() {
		cmd.SilenceUsage = true
		switch cmd.Name() {
		case "console", "gui":
			cmd.Hidden = true
		}
	}
}

// StartWebServer serves a form for the commands in Root at address and
// opens it in a web browser. It does not return.
func StartWebServer(address string) {
	setConfig() // Ignore any errors for now.

	http.HandleFunc("/setConfig", setConfigHandler)

	logger.Info("loading front-end...")

	webCommands(Root)

	server := gobra.Server{Root: Root, ServerAddress: address, AllowCORS: false, HTML: webPage()}
	logger.WithField("address", address).Info("server starting...")
	open.Run("http://" + address)
	fmt.Printf("If not opened automatically, please visit http://%s\n", address)
	server.Start()
}
