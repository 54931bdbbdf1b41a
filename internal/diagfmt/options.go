// Package diagfmt renders diagnostics and token streams for humans and
// tools.
package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Context is how many source lines to show around the primary span.
	Context int
	// ShowNotes includes secondary notes under each diagnostic.
	ShowNotes bool
}
