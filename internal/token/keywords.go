package token

var keywords = map[string]Kind{
	"pragma":    KwPragma,
	"import":    KwImport,
	"contract":  KwContract,
	"library":   KwLibrary,
	"interface": KwInterface,
	"function":  KwFunction,
	"modifier":  KwModifier,
	"event":     KwEvent,
	"struct":    KwStruct,
	"enum":      KwEnum,
	"mapping":   KwMapping,
	"using":     KwUsing,
	"is":        KwIs,
	"returns":   KwReturns,
	"return":    KwReturn,
	"if":        KwIf,
	"else":      KwElse,
	"for":       KwFor,
	"while":     KwWhile,
	"do":        KwDo,
	"break":     KwBreak,
	"continue":  KwContinue,
	"throw":     KwThrow,
	"emit":      KwEmit,
	"new":       KwNew,
	"delete":    KwDelete,
	"public":    KwPublic,
	"private":   KwPrivate,
	"internal":  KwInternal,
	"external":  KwExternal,
	"constant":  KwConstant,
	"pure":      KwPure,
	"view":      KwView,
	"payable":   KwPayable,
	"memory":    KwMemory,
	"storage":   KwStorage,
	"calldata":  KwCalldata,
	"anonymous": KwAnonymous,
	"indexed":   KwIndexed,
	"true":      KwTrue,
	"false":     KwFalse,
}

// LookupKeyword returns the keyword kind for ident if it is one.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// keywordText maps a keyword kind back to its source spelling.
func keywordText(k Kind) (string, bool) {
	for text, kind := range keywords {
		if kind == k {
			return text, true
		}
	}
	return "", false
}
