package symbols

import "strings"

// builtinTypes maps source-level type keywords to their storage type names
// in the emitted module.
var builtinTypes = map[string]string{
	"int":    "SystemInt32",
	"bool":   "SystemBoolean",
	"string": "SystemString",
	"float":  "SystemSingle",
	"void":   "SystemVoid",
}

// Context is the resolver scope for one compilation unit: the namespaces
// made visible by usings and the namespace declaration, plus every type
// name resolvable in the unit. Constructed empty, populated by the
// namespace-resolution pass, consulted by later passes.
type Context struct {
	namespaces map[string]bool
	types      map[string]string // source name -> resolved storage name
	classes    map[string]bool   // resolved class type names
}

// NewContext creates a resolver context seeded with the built-in types.
func NewContext() *Context {
	c := &Context{
		namespaces: make(map[string]bool),
		types:      make(map[string]string, len(builtinTypes)),
		classes:    make(map[string]bool),
	}
	for src, resolved := range builtinTypes {
		c.types[src] = resolved
	}
	return c
}

// AddNamespace registers a namespace as visible.
func (c *Context) AddNamespace(name string) {
	if name != "" {
		c.namespaces[name] = true
	}
}

// HasNamespace reports whether a namespace was registered.
func (c *Context) HasNamespace(name string) bool {
	return c.namespaces[name]
}

// Namespaces returns the number of visible namespaces.
func (c *Context) Namespaces() int {
	return len(c.namespaces)
}

// DefineClass registers a class declared in namespace ns (may be empty).
// The resolved storage name is the dotted qualified name with separators
// removed: App.Counter becomes AppCounter.
func (c *Context) DefineClass(ns, name string) string {
	qualified := name
	if ns != "" {
		qualified = ns + "." + name
	}
	resolved := strings.ReplaceAll(qualified, ".", "")
	c.types[name] = resolved
	c.classes[resolved] = true
	return resolved
}

// ResolveType maps a source type name to its storage type name.
func (c *Context) ResolveType(name string) (string, bool) {
	resolved, ok := c.types[name]
	return resolved, ok
}

// IsClass reports whether a resolved type name refers to a class.
func (c *Context) IsClass(resolved string) bool {
	return c.classes[resolved]
}
