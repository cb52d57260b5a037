package token

// Kind represents the category of a Solidity source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// NumberLit represents a decimal or hex number literal, with an
	// optional denomination suffix (wei, ether, seconds, ...).
	NumberLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit
	// HexLit represents a hex"..." literal.
	HexLit

	// KwPragma represents the 'pragma' keyword.
	KwPragma // pragma
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwContract represents the 'contract' keyword.
	KwContract // contract
	// KwLibrary represents the 'library' keyword.
	KwLibrary // library
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwModifier represents the 'modifier' keyword.
	KwModifier // modifier
	// KwEvent represents the 'event' keyword.
	KwEvent // event
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwMapping represents the 'mapping' keyword.
	KwMapping // mapping
	// KwUsing represents the 'using' keyword.
	KwUsing // using
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwReturns represents the 'returns' keyword.
	KwReturns // returns
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwEmit represents the 'emit' keyword.
	KwEmit // emit
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete
	// KwPublic represents the 'public' visibility keyword.
	KwPublic // public
	// KwPrivate represents the 'private' visibility keyword.
	KwPrivate // private
	// KwInternal represents the 'internal' visibility keyword.
	KwInternal // internal
	// KwExternal represents the 'external' visibility keyword.
	KwExternal // external
	// KwConstant represents the 'constant' keyword.
	KwConstant // constant
	// KwPure represents the 'pure' keyword.
	KwPure // pure
	// KwView represents the 'view' keyword.
	KwView // view
	// KwPayable represents the 'payable' keyword.
	KwPayable // payable
	// KwMemory represents the 'memory' data-location keyword.
	KwMemory // memory
	// KwStorage represents the 'storage' data-location keyword.
	KwStorage // storage
	// KwCalldata represents the 'calldata' data-location keyword.
	KwCalldata // calldata
	// KwAnonymous represents the 'anonymous' keyword.
	KwAnonymous // anonymous
	// KwIndexed represents the 'indexed' keyword.
	KwIndexed // indexed
	// KwTrue represents the boolean literal 'true'.
	KwTrue // true
	// KwFalse represents the boolean literal 'false'.
	KwFalse // false

	// Operators and punctuation.
	Plus           // +
	Minus          // -
	Star           // *
	Slash          // /
	Percent        // %
	StarStar       // **
	PlusPlus       // ++
	MinusMinus     // --
	Assign         // =
	PlusAssign     // +=
	MinusAssign    // -=
	StarAssign     // *=
	SlashAssign    // /=
	PercentAssign  // %=
	AmpAssign      // &=
	PipeAssign     // |=
	CaretAssign    // ^=
	ShlAssign      // <<=
	ShrAssign      // >>=
	EqEq           // ==
	Bang           // !
	BangEq         // !=
	Lt             // <
	LtEq           // <=
	Gt             // >
	GtEq           // >=
	Shl            // <<
	Shr            // >>
	Amp            // &
	Pipe           // |
	Caret          // ^
	Tilde          // ~
	AndAnd         // &&
	OrOr           // ||
	Question       // ?
	Colon          // :
	Semicolon      // ;
	Comma          // ,
	Dot            // .
	Arrow          // =>
	LParen         // (
	RParen         // )
	LBrace         // {
	RBrace         // }
	LBracket       // [
	RBracket       // ]
)

var kindNames = map[Kind]string{
	Invalid:   "invalid",
	EOF:       "eof",
	Ident:     "identifier",
	NumberLit: "number",
	StringLit: "string",
	HexLit:    "hex literal",
	Semicolon: "';'",
	Comma:     "','",
	LParen:    "'('",
	RParen:    "')'",
	LBrace:    "'{'",
	RBrace:    "'}'",
	LBracket:  "'['",
	RBracket:  "']'",
	Assign:    "'='",
}

// String returns a short human-readable label for diagnostics.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if text, ok := keywordText(k); ok {
		return "'" + text + "'"
	}
	return "token"
}
