package expression

import (
	"fmt"

	"github.com/codehardth/calc/internal/result"
)

type lexer struct {
	source string
	index  int
	tokens []Token
}

func newLexer(source string) *lexer {
	return &lexer{source: source}
}

// Tokenize scans source left to right into an ordered token sequence
// terminated by an EndOfInput token. Scanning halts at the first
// unrecognized character; no tokens are produced past it.
func Tokenize(source string) result.Result[[]Token] {
	l := newLexer(source)
	for l.index != len(l.source) {
		switch c := l.source[l.index]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.index++ // just skip white spaces

		case isDigit(c) || (c == '.' && isDigit(l.peekNext())):
			tok := l.scanNumber()
			if _, err := tok.Value(); err != nil {
				// unreachable given the scan rules above
				return result.Err[[]Token](err)
			}
			l.push(tok)

		default:
			if kind, ok := tokenKindBySymbol[string(c)]; ok {
				l.push(Token{Kind: kind, Lexeme: string(c), Pos: l.index})
				l.index++
				continue
			}
			return result.Err[[]Token](fmt.Errorf("Unexpected character '%c' at position %d", c, l.index))
		}
	}

	l.push(Token{Kind: EndOfInput, Pos: len(l.source)})
	return result.OK(l.tokens)
}

func (l *lexer) push(t Token) {
	l.tokens = append(l.tokens, t)
}

// peekNext returns the byte after the current one, or 0 at the end.
func (l *lexer) peekNext() byte {
	if l.index+1 >= len(l.source) {
		return 0
	}
	return l.source[l.index+1]
}

// scanNumber consumes a numeric literal: digits, optionally followed by a
// '.' that must itself be followed by at least one digit. A literal may
// begin with '.' only when a digit follows, so a lone '.' never reaches
// here.
func (l *lexer) scanNumber() Token {
	begin := l.index
	for l.index != len(l.source) && isDigit(l.source[l.index]) {
		l.index++
	}
	if l.index != len(l.source) && l.source[l.index] == '.' && isDigit(l.peekNext()) {
		l.index++
		for l.index != len(l.source) && isDigit(l.source[l.index]) {
			l.index++
		}
	}
	return Token{Kind: Number, Lexeme: l.source[begin:l.index], Pos: begin}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
