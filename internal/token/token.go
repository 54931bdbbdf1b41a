package token

import "cinder/internal/source"

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, string, or
// null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwUsing, KwNamespace, KwClass, KwPublic, KwPrivate, KwInternal,
		KwStatic, KwConst, KwNew, KwThis, KwIf, KwElse, KwWhile, KwReturn,
		KwTrue, KwFalse, KwNull, KwInt, KwBool, KwString, KwFloat, KwVoid:
		return true
	default:
		return false
	}
}

// IsModifier reports whether the token starts a member declaration modifier.
func (t Token) IsModifier() bool {
	switch t.Kind {
	case KwPublic, KwPrivate, KwInternal, KwStatic, KwConst:
		return true
	default:
		return false
	}
}

// IsTypeKeyword reports whether the token names a built-in value type.
func (t Token) IsTypeKeyword() bool {
	switch t.Kind {
	case KwInt, KwBool, KwString, KwFloat, KwVoid:
		return true
	default:
		return false
	}
}
