package symbols

// DeclFlags encode the role and visibility bits of a symbol. They drive
// export emission and the data-block declaration order.
type DeclFlags uint8

const (
	// FlagPublic marks exported symbols.
	FlagPublic DeclFlags = 1 << iota
	// FlagPrivate marks class-private symbols.
	FlagPrivate
	// FlagInternal marks module-private symbols.
	FlagInternal
	// FlagThis marks the receiver symbol of an instance method.
	FlagThis
	// FlagConstant marks symbols whose value never changes after init.
	FlagConstant
	// FlagStatic marks symbols not bound to an instance.
	FlagStatic
)

// Strings returns textual flag labels, for debug output.
func (f DeclFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 4)
	if f&FlagPublic != 0 {
		labels = append(labels, "public")
	}
	if f&FlagPrivate != 0 {
		labels = append(labels, "private")
	}
	if f&FlagInternal != 0 {
		labels = append(labels, "internal")
	}
	if f&FlagThis != 0 {
		labels = append(labels, "this")
	}
	if f&FlagConstant != 0 {
		labels = append(labels, "const")
	}
	if f&FlagStatic != 0 {
		labels = append(labels, "static")
	}
	return labels
}
