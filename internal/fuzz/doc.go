// Package fuzztests houses Go fuzz harnesses that exercise the front of the
// Cinder compilation pipeline (source -> lexer -> parser). Its goal is to
// smoke test robustness and guard against panics or hangs on arbitrary
// inputs; it never inspects diagnostics beyond collecting them.
package fuzztests
