package expression

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// TokenKind classifies a lexical token.
type TokenKind int

const (
	Number TokenKind = iota
	Plus
	Minus
	Star
	Slash
	LeftParen
	RightParen
	EndOfInput
)

var tokenKindBySymbol = map[string]TokenKind{
	"+": Plus,
	"-": Minus,
	"*": Star,
	"/": Slash,
	"(": LeftParen,
	")": RightParen,
}

var symbolByTokenKind = lo.Invert(tokenKindBySymbol)

func (k TokenKind) String() string {
	switch k {
	case Number:
		return "Number"
	case EndOfInput:
		return "EndOfInput"
	default:
		if symbol, ok := symbolByTokenKind[k]; ok {
			return symbol
		}
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is a classified fragment of source text. Pos is the zero-based
// offset of the token's first character in the original input, used only
// for error messages. Tokens are immutable once created.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Pos    int
}

// Value parses the lexeme of a Number token as a floating-point number.
func (t Token) Value() (float64, error) {
	if t.Kind != Number {
		return 0, fmt.Errorf("token %q at %d is not a number", t.Lexeme, t.Pos)
	}

	v, err := strconv.ParseFloat(t.Lexeme, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q at %d: %w", t.Lexeme, t.Pos, err)
	}
	return v, nil
}
