package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating-point literal.
	FloatLit
	// StringLit represents a string literal (decoded value in Text).
	StringLit

	// KwUsing represents the 'using' keyword.
	KwUsing
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace
	// KwClass represents the 'class' keyword.
	KwClass
	// KwPublic represents the 'public' keyword.
	KwPublic
	// KwPrivate represents the 'private' keyword.
	KwPrivate
	// KwInternal represents the 'internal' keyword.
	KwInternal
	// KwStatic represents the 'static' keyword.
	KwStatic
	// KwConst represents the 'const' keyword.
	KwConst
	// KwNew represents the 'new' keyword.
	KwNew
	// KwThis represents the 'this' keyword.
	KwThis
	// KwIf represents the 'if' keyword.
	KwIf
	// KwElse represents the 'else' keyword.
	KwElse
	// KwWhile represents the 'while' keyword.
	KwWhile
	// KwReturn represents the 'return' keyword.
	KwReturn
	// KwTrue represents the 'true' literal keyword.
	KwTrue
	// KwFalse represents the 'false' literal keyword.
	KwFalse
	// KwNull represents the 'null' literal keyword.
	KwNull
	// KwInt represents the built-in 'int' type keyword.
	KwInt
	// KwBool represents the built-in 'bool' type keyword.
	KwBool
	// KwString represents the built-in 'string' type keyword.
	KwString
	// KwFloat represents the built-in 'float' type keyword.
	KwFloat
	// KwVoid represents the built-in 'void' type keyword.
	KwVoid

	// Plus is '+'.
	Plus
	// Minus is '-'.
	Minus
	// Star is '*'.
	Star
	// Slash is '/'.
	Slash
	// Percent is '%'.
	Percent
	// Assign is '='.
	Assign
	// EqEq is '=='.
	EqEq
	// Bang is '!'.
	Bang
	// BangEq is '!='.
	BangEq
	// Lt is '<'.
	Lt
	// LtEq is '<='.
	LtEq
	// Gt is '>'.
	Gt
	// GtEq is '>='.
	GtEq
	// AndAnd is '&&'.
	AndAnd
	// OrOr is '||'.
	OrOr
	// Semicolon is ';'.
	Semicolon
	// Comma is ','.
	Comma
	// Dot is '.'.
	Dot
	// LParen is '('.
	LParen
	// RParen is ')'.
	RParen
	// LBrace is '{'.
	LBrace
	// RBrace is '}'.
	RBrace
)

var kindNames = map[Kind]string{
	Invalid:     "invalid",
	EOF:         "eof",
	Ident:       "ident",
	IntLit:      "int",
	FloatLit:    "float",
	StringLit:   "string",
	KwUsing:     "using",
	KwNamespace: "namespace",
	KwClass:     "class",
	KwPublic:    "public",
	KwPrivate:   "private",
	KwInternal:  "internal",
	KwStatic:    "static",
	KwConst:     "const",
	KwNew:       "new",
	KwThis:      "this",
	KwIf:        "if",
	KwElse:      "else",
	KwWhile:     "while",
	KwReturn:    "return",
	KwTrue:      "true",
	KwFalse:     "false",
	KwNull:      "null",
	KwInt:       "int",
	KwBool:      "bool",
	KwString:    "string",
	KwFloat:     "float",
	KwVoid:      "void",
	Plus:        "+",
	Minus:       "-",
	Star:        "*",
	Slash:       "/",
	Percent:     "%",
	Assign:      "=",
	EqEq:        "==",
	Bang:        "!",
	BangEq:      "!=",
	Lt:          "<",
	LtEq:        "<=",
	Gt:          ">",
	GtEq:        ">=",
	AndAnd:      "&&",
	OrOr:        "||",
	Semicolon:   ";",
	Comma:       ",",
	Dot:         ".",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
