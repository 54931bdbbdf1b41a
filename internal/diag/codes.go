package diag

import "fmt"

// Code is a compact numeric identifier with a stable string form.
type Code uint16

const (
	// UnknownCode is the catch-all for uncategorized failures.
	UnknownCode Code = 0

	// Lexical (1xxx).
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadEscape          Code = 1004

	// Syntax (2xxx).
	SynUnexpectedToken  Code = 2001
	SynExpectSemicolon  Code = 2002
	SynExpectIdent      Code = 2003
	SynExpectType       Code = 2004
	SynUnclosedBrace    Code = 2005
	SynUnclosedParen    Code = 2006
	SynBadModifier      Code = 2007
	SynConstInitializer Code = 2008

	// Resolution (3xxx).
	ResUnknownType      Code = 3001
	ResUnknownNamespace Code = 3002
	ResDuplicateMethod  Code = 3003

	// Lowering (4xxx).
	LowInternal          Code = 4000
	LowUnknownName       Code = 4001
	LowUnknownMethod     Code = 4002
	LowUnsupported       Code = 4003
	LowBadAssignTarget   Code = 4004
	LowArgCountMismatch  Code = 4005
	LowConstReassignment Code = 4006

	// Verification (5xxx).
	VerIntegrity      Code = 5000
	VerDanglingSymbol Code = 5001
	VerDanglingLabel  Code = 5002
)

func (c Code) String() string {
	return fmt.Sprintf("CIN%04d", uint16(c))
}
