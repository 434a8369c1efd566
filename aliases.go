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

package conversor

import (
	"fmt"
	"strconv"
	"strings"
)

// aliasIndex maps free-text names to canonical unit identifiers.
type aliasIndex struct {
	exact  map[string]string
	folded map[string]string
}

// indexAliases builds the alias lookup tables of d. Lower-cased aliases
// point to the first unit in menu order that uses them.
func (d *Domain) indexAliases() {
	d.alias = aliasIndex{
		exact:  make(map[string]string),
		folded: make(map[string]string),
	}
	for _, u := range d.units {
		for _, a := range u.aliases {
			if o, ok := d.alias.exact[a]; ok && o != u.Name {
				panic(fmt.Errorf("conversor: alias %q of domain %s names both %s and %s", a, d.Name, o, u.Name))
			}
			d.alias.exact[a] = u.Name
		}
	}
	for _, u := range d.units {
		for _, a := range append([]string{u.Name}, u.aliases...) {
			f := strings.ToLower(a)
			if _, ok := d.alias.folded[f]; !ok {
				d.alias.folded[f] = u.Name
			}
		}
	}
}

// canonical turns "millas nauticas" or "millas-nauticas" into
// "millas_nauticas".
func canonical(s string) string {
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// menuNumber returns the 1-based menu position in s, if s is one.
func menuNumber(s string, n int) (int, bool) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

// Resolve returns the canonical identifier of the unit of d that input
// refers to. input may be the unit's menu number, its canonical identifier
// (with spaces or hyphens in place of underscores) or one of its aliases.
// Aliases are matched case-sensitively first, so that "kb" and "kB" remain
// distinct, and case-insensitively second.
func (d *Domain) Resolve(input string) (string, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", false
	}
	if i, ok := menuNumber(s, len(d.units)); ok {
		return d.units[i].Name, true
	}
	if c := canonical(s); d.Has(c) {
		return c, true
	}
	if u, ok := d.alias.exact[s]; ok {
		return u, true
	}
	if u, ok := d.alias.folded[strings.ToLower(s)]; ok {
		return u, true
	}
	if c := canonical(strings.ToLower(s)); d.Has(c) {
		return c, true
	}
	return "", false
}

// Aliases returns the aliases of the unit with the given canonical
// identifier.
func (d *Domain) Aliases(unitName string) []string {
	u, ok := d.Unit(unitName)
	if !ok {
		return nil
	}
	o := make([]string, len(u.aliases))
	copy(o, u.aliases)
	return o
}

// DomainAliases returns the alternative names that d can be chosen by.
func (d *Domain) DomainAliases() []string {
	o := make([]string, len(d.aliases))
	copy(o, d.aliases)
	return o
}

// ResolveDomain returns the domain that input refers to, by menu number,
// canonical identifier, title or alias.
func ResolveDomain(input string) (*Domain, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, false
	}
	if i, ok := menuNumber(s, len(domains)); ok {
		return domains[i], true
	}
	if d, ok := domainIndex[s]; ok {
		return d, true
	}
	l := strings.ToLower(s)
	for _, d := range domains {
		if strings.ToLower(d.Title) == l {
			return d, true
		}
		for _, a := range d.aliases {
			if a == s || strings.ToLower(a) == l {
				return d, true
			}
		}
	}
	return nil, false
}

// Resolver resolves unit names using the built-in aliases plus a set of
// user-defined ones.
type Resolver struct {
	extra map[string]string
}

// NewResolver returns a Resolver that also accepts the aliases in extra,
// which maps each alias to a canonical unit identifier. It returns an error
// if an alias targets a unit that does not exist.
func NewResolver(extra map[string]string) (*Resolver, error) {
	r := &Resolver{extra: make(map[string]string, len(extra))}
	for alias, name := range extra {
		if _, err := DomainOf(name); err != nil {
			return nil, fmt.Errorf("conversor: alias %q: %w", alias, err)
		}
		r.extra[strings.ToLower(strings.TrimSpace(alias))] = name
	}
	return r, nil
}

// Unit resolves input to a unit of d. User-defined aliases are only
// consulted when the built-in ones do not match, and only count if they
// point into d.
func (r *Resolver) Unit(d *Domain, input string) (string, bool) {
	if u, ok := d.Resolve(input); ok {
		return u, true
	}
	if r == nil {
		return "", false
	}
	if u, ok := r.extra[strings.ToLower(strings.TrimSpace(input))]; ok && d.Has(u) {
		return u, true
	}
	return "", false
}

// AnyUnit resolves input to a unit of any domain. Menu numbers are not
// accepted. When an alias is used by more than one domain, the first
// domain in menu order wins.
func (r *Resolver) AnyUnit(input string) (*Domain, string, bool) {
	s := strings.TrimSpace(input)
	if d, ok := unitIndex[canonical(s)]; ok {
		return d, canonical(s), true
	}
	if r != nil {
		if u, ok := r.extra[strings.ToLower(s)]; ok {
			return unitIndex[u], u, true
		}
	}
	if _, err := strconv.Atoi(s); err == nil {
		return nil, "", false
	}
	for _, d := range domains {
		if u, ok := d.alias.exact[s]; ok {
			return d, u, true
		}
	}
	for _, d := range domains {
		if u, ok := d.Resolve(s); ok {
			return d, u, true
		}
	}
	return nil, "", false
}
