package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is a STIR document: a sequence of top-level blocks, at most one of
// them marked as the entry point.
type Program struct {
	Pos   lexer.Position
	Items []*Item `@@*`
}

type Item struct {
	Pos   lexer.Position
	Entry bool   `@"ENTRY"?`
	Block *Block `@@`
}

// Block is exactly one of its fields.
type Block struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	IfElse   *IfElse   `  @@`
	Loop     *Loop     `| @@`
	Function *Function `| @@`
	Call     *Call     `| @@`
	True     bool      `| @"true"`
	False    bool      `| @"false"`
	Number   *float64  `| @Number`
	Word     *string   `| @Ident`
}

type IfElse struct {
	Pos  lexer.Position
	Cond *Block `"IF" @@`
	Then *Block `"{" @@ "}"`
	Else *Block `( "ELSE" "{" @@ "}" )?`
}

// Loop has no Range when it is unbounded.
type Loop struct {
	Pos   lexer.Position
	Range *Range `"LOOP" @@?`
	Body  *Block `"{" @@? "}"`
}

type Range struct {
	Pos lexer.Position
	Lo  *Block `"[" @@?`
	Hi  *Block `"," @@? ")"`
}

type Function struct {
	Pos    lexer.Position
	Name   Name     `"FUNCTION" @@`
	Args   []*Block `"(" ( @@ ( "," @@ )* )? ")"`
	Body   []*Block `"{" @@*`
	Return *Block   `( "RETURN" @@ )? "}"`
}

type Call struct {
	Pos  lexer.Position
	Name Name `"CALL" @@`
}

// Name is an identifier that keeps its own position for diagnostics.
type Name struct {
	Pos   lexer.Position
	Value string `@Ident`
}
