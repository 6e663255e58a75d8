package lsp

import (
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"

	"stir/grammar"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const (
	tokenKeyword = iota
	tokenFunction
	tokenNumber
	tokenString
	tokenComment
)

const modDeclaration = 1 << 0

var symbols = grammar.StirLexer.Symbols()

// collectSemanticTokens classifies the lexer tokens of text. On a lexing
// error the tokens before it are returned along with the error.
func collectSemanticTokens(text string) ([]SemanticToken, error) {
	lex, err := grammar.StirLexer.LexString("", text)
	if err != nil {
		return nil, err
	}

	var tokens []SemanticToken
	var prev string
	for {
		tok, err := lex.Next()
		if err != nil {
			return tokens, err
		}
		if tok.EOF() {
			return tokens, nil
		}

		tokenType, mods, ok := classify(tok, prev)
		if tok.Type != symbols["Whitespace"] && tok.Type != symbols["Comment"] {
			prev = tok.Value
		}
		if !ok {
			continue
		}

		tokens = append(tokens, SemanticToken{
			Line:           uint32(tok.Pos.Line - 1),
			StartChar:      uint32(tok.Pos.Column - 1),
			Length:         uint32(utf8.RuneCountInString(tok.Value)),
			TokenType:      tokenType,
			TokenModifiers: mods,
		})
	}
}

// classify maps a token to its semantic type. prev is the previous
// significant token value, which decides how identifiers read.
func classify(tok lexer.Token, prev string) (int, int, bool) {
	switch tok.Type {
	case symbols["Keyword"]:
		return tokenKeyword, 0, true
	case symbols["Number"]:
		return tokenNumber, 0, true
	case symbols["Comment"]:
		return tokenComment, 0, true
	case symbols["Ident"]:
		switch prev {
		case "FUNCTION":
			return tokenFunction, modDeclaration, true
		case "CALL":
			return tokenFunction, 0, true
		}
		return tokenString, 0, true
	}
	return 0, 0, false
}
