package symbols

import (
	"fmt"
	"strings"
)

// Directory is a hierarchical symbol scope. The root directory owns the
// unique-name counter and the flat list of every definition, so uniqueness
// holds module-wide no matter which nested scope declared a symbol.
type Directory struct {
	parent *Directory
	root   *Directory
	names  map[string]*Definition

	// root-only state
	counter uint32
	all     []*Definition
	unique  map[string]*Definition
}

// NewDirectory creates a root scope for one compilation unit.
func NewDirectory() *Directory {
	d := &Directory{
		names:  make(map[string]*Definition),
		unique: make(map[string]*Definition),
	}
	d.root = d
	return d
}

// Child creates a nested scope. Definitions declared in the child are
// visible only there, but their unique names still live at the root.
func (d *Directory) Child() *Directory {
	return &Directory{
		parent: d,
		root:   d.root,
		names:  make(map[string]*Definition),
	}
}

// Declare creates a definition in this scope with a fresh unique name.
// Redeclaring a source name in the same scope shadows the old definition
// for lookups; both keep their unique names and both are emitted.
func (d *Directory) Declare(sourceName, typeName string, flags DeclFlags) *Definition {
	root := d.root
	root.counter++
	def := &Definition{
		UniqueName: fmt.Sprintf("%s_%d", sanitizeName(sourceName), root.counter),
		SourceName: sourceName,
		TypeName:   typeName,
		Flags:      flags,
	}
	d.names[sourceName] = def
	root.all = append(root.all, def)
	root.unique[def.UniqueName] = def
	return def
}

// Lookup finds a definition by source name, walking outward through
// enclosing scopes.
func (d *Directory) Lookup(sourceName string) (*Definition, bool) {
	for s := d; s != nil; s = s.parent {
		if def, ok := s.names[sourceName]; ok {
			return def, true
		}
	}
	return nil, false
}

// LookupUnique finds a definition by its generated unique name.
func (d *Directory) LookupUnique(uniqueName string) (*Definition, bool) {
	def, ok := d.root.unique[uniqueName]
	return def, ok
}

// AllUniqueChildSymbols returns every definition created under the root,
// flattened across nested scopes, in creation order, without duplicates.
func (d *Directory) AllUniqueChildSymbols() []*Definition {
	return d.root.all
}

// Len returns the number of definitions created under the root.
func (d *Directory) Len() int {
	return len(d.root.all)
}

// sanitizeName keeps unique names assembly-safe: dots from qualified
// source names become underscores.
func sanitizeName(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}
