package symbols

// Definition is a named storage location in the emitted module. Its
// UniqueName is globally unique within the module; multiple definitions may
// share a SourceName across scopes. Definitions are accumulated for the
// compilation unit's lifetime and never deleted.
type Definition struct {
	// UniqueName is the generated module-level name, e.g. "x_3".
	UniqueName string
	// SourceName is the name as written in the source, e.g. "x".
	SourceName string
	// TypeName is the resolved storage type, e.g. "SystemInt32".
	TypeName string
	// Flags are the declaration bits controlling export and init value.
	Flags DeclFlags
}

// Is reports whether all the given flag bits are set.
func (d *Definition) Is(f DeclFlags) bool {
	return d.Flags&f == f
}

// InitialValue is the literal emitted in the data block declaration:
// "this" for receiver symbols, "null" for everything else.
func (d *Definition) InitialValue() string {
	if d.Is(FlagThis) {
		return "this"
	}
	return "null"
}
