package lower

import "cinder/internal/symbols"

// Verify is the post-lowering integrity check: every symbol an
// instruction references must be declared somewhere in the directory,
// every jump target must be defined, and no label may carry more than one
// definition line in the code block. A dangling reference means the
// passes disagree about what exists, which would produce a module the
// machine cannot load.
func Verify(res *Result, dir *symbols.Directory, labels *symbols.LabelTable) *Failure {
	for _, name := range res.SymbolRefs {
		if _, ok := dir.LookupUnique(name); !ok {
			return verifyFail("instruction references undeclared symbol %q", name)
		}
	}
	for _, name := range labels.Referenced() {
		if labels.Definitions(name) == 0 {
			return verifyFail("jump references undefined label %q", name)
		}
	}
	// A label defined twice clashes in the code block even when nothing
	// jumps to it, e.g. a user method whose mangled name matches the
	// class initializer section.
	for _, name := range labels.Defined() {
		if n := labels.Definitions(name); n > 1 {
			return verifyFail("label %q is defined %d times", name, n)
		}
	}
	return nil
}
