package symbols

import "fmt"

// Signature records one method's callable shape, harvested before any
// body is lowered so forward and mutually-recursive calls resolve.
type Signature struct {
	Class    string // declaring class (source name)
	Name     string
	Params   []string // resolved parameter type names
	Return   string   // resolved return type name
	IsStatic bool
	Label    string // code-block entry label
}

// SignatureSet is the durable method lookup produced by signature
// harvesting, independent of declaration order.
type SignatureSet struct {
	byKey map[string]*Signature
	order []*Signature
}

func NewSignatureSet() *SignatureSet {
	return &SignatureSet{byKey: make(map[string]*Signature)}
}

func sigKey(class, name string) string {
	return class + "." + name
}

// Add registers a signature. Overloading is not supported: a second
// method with the same name in the same class is an error.
func (s *SignatureSet) Add(sig *Signature) error {
	key := sigKey(sig.Class, sig.Name)
	if _, exists := s.byKey[key]; exists {
		return fmt.Errorf("method %s.%s is already defined", sig.Class, sig.Name)
	}
	s.byKey[key] = sig
	s.order = append(s.order, sig)
	return nil
}

// Lookup finds a method by declaring class and name.
func (s *SignatureSet) Lookup(class, name string) (*Signature, bool) {
	sig, ok := s.byKey[sigKey(class, name)]
	return sig, ok
}

// All returns every signature in harvest order.
func (s *SignatureSet) All() []*Signature {
	return s.order
}

// Len returns the number of harvested signatures.
func (s *SignatureSet) Len() int {
	return len(s.order)
}
