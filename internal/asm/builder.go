// Package asm accumulates the textual assembly of an Ember VM module.
package asm

import (
	"fmt"
	"strings"
)

// Module segment markers.
const (
	DataStart = ".data_start"
	DataEnd   = ".data_end"
)

// indentUnit is one level of indentation inside a block.
const indentUnit = "    "

// Builder accumulates output lines at indentation levels and produces the
// final module text. It never reorders what was written.
type Builder struct {
	lines  []string
	indent int
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Indent increases the indentation level for subsequent lines.
func (b *Builder) Indent() {
	b.indent++
}

// Dedent decreases the indentation level. Dedenting below zero panics:
// that is always a programming error in an emitter.
func (b *Builder) Dedent() {
	if b.indent == 0 {
		panic("asm: dedent below zero")
	}
	b.indent--
}

// Line appends one formatted line at the current indentation.
func (b *Builder) Line(format string, args ...any) {
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	b.lines = append(b.lines, strings.Repeat(indentUnit, b.indent)+text)
}

// Text appends one pre-formatted line at the current indentation.
func (b *Builder) Text(text string) {
	b.lines = append(b.lines, strings.Repeat(indentUnit, b.indent)+text)
}

// Raw appends one line with no indentation, regardless of level.
// Used for label definition lines.
func (b *Builder) Raw(text string) {
	b.lines = append(b.lines, text)
}

// Blank appends an empty separator line.
func (b *Builder) Blank() {
	b.lines = append(b.lines, "")
}

// Len returns the number of accumulated lines.
func (b *Builder) Len() int {
	return len(b.lines)
}

// Lines returns a read-only view of the accumulated lines.
func (b *Builder) Lines() []string {
	return b.lines
}

// String renders the accumulated lines. A non-empty builder always ends
// with a trailing newline.
func (b *Builder) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}

// Export formats one export directive line.
func Export(uniqueName string) string {
	return ".export " + uniqueName
}

// Decl formats one typed declaration line with its initial value.
func Decl(uniqueName, typeName, initialValue string) string {
	return fmt.Sprintf("%s: %%%s, %s", uniqueName, typeName, initialValue)
}
