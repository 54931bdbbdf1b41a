package symbols

import "fmt"

// LabelTable is the per-unit registry of jump targets. Labels are created
// during lowering of control flow; instructions may reference a label
// before its definition line is emitted, so definitions and references are
// tracked separately and reconciled by integrity verification.
type LabelTable struct {
	counter  uint32
	defined  map[string]int
	refs     map[string]bool
	order    []string // first-reference order, for deterministic verification
	defOrder []string // first-definition order
}

func NewLabelTable() *LabelTable {
	return &LabelTable{
		defined: make(map[string]int),
		refs:    make(map[string]bool),
	}
}

// New allocates a fresh label name from a hint, e.g. "while_end_4".
func (t *LabelTable) New(hint string) string {
	t.counter++
	return fmt.Sprintf("%s_%d", hint, t.counter)
}

// Define records that a label's target line was emitted.
func (t *LabelTable) Define(name string) {
	if t.defined[name] == 0 {
		t.defOrder = append(t.defOrder, name)
	}
	t.defined[name]++
}

// Reference records that an instruction jumps to the label.
func (t *LabelTable) Reference(name string) {
	if !t.refs[name] {
		t.refs[name] = true
		t.order = append(t.order, name)
	}
}

// Definitions returns how many times a label was defined.
func (t *LabelTable) Definitions(name string) int {
	return t.defined[name]
}

// Referenced returns every referenced label in first-reference order.
func (t *LabelTable) Referenced() []string {
	return t.order
}

// Defined returns every defined label in first-definition order.
func (t *LabelTable) Defined() []string {
	return t.defOrder
}
