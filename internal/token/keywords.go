package token

var keywords = map[string]Kind{
	"using":     KwUsing,
	"namespace": KwNamespace,
	"class":     KwClass,
	"public":    KwPublic,
	"private":   KwPrivate,
	"internal":  KwInternal,
	"static":    KwStatic,
	"const":     KwConst,
	"new":       KwNew,
	"this":      KwThis,
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
	"return":    KwReturn,
	"true":      KwTrue,
	"false":     KwFalse,
	"null":      KwNull,
	"int":       KwInt,
	"bool":      KwBool,
	"string":    KwString,
	"float":     KwFloat,
	"void":      KwVoid,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
