package expression

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/k0kubun/pp"

	"github.com/codehardth/calc/internal/result"
)

var parserDebugLog = false

func init() {
	if v, err := strconv.ParseBool(os.Getenv("CALC_EXPRESSION_DEBUG")); v && err == nil {
		parserDebugLog = true
	}
}

// Parser converts a token sequence into a single expression tree by
// recursive descent. Precedence lowest to highest: addition/subtraction,
// multiplication/division, unary minus, primary.
//
//	expression := term (('+' | '-') term)*
//	term       := unary (('*' | '/') unary)*
//	unary      := '-' unary | primary
//	primary    := NUMBER | '(' expression ')'
type Parser struct {
	tokens []Token
	index  int
	debug  bool
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, debug: parserDebugLog}
}

// Parse converts tokens into a single expression tree.
func Parse(tokens []Token) result.Result[Expr] {
	return NewParser(tokens).Parse()
}

// Parse consumes the whole token sequence and requires it to form exactly
// one expression followed by EndOfInput.
func (p *Parser) Parse() result.Result[Expr] {
	if p.peek().Kind == EndOfInput {
		return result.Err[Expr](errors.New("empty expression"))
	}

	expr, err := p.parseExpression()
	if err != nil {
		return result.Err[Expr](err)
	}

	if tok := p.peek(); tok.Kind != EndOfInput {
		return result.Err[Expr](p.unexpectedTokenError(tok))
	}

	if p.debug {
		pp.Println(p.tokens)
		log.Println(expr.String())
	}

	return result.OK(expr)
}

func (p *Parser) parseExpression() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == Plus || p.peek().Kind == Minus {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Operator: op.Kind, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == Star || p.peek().Kind == Slash {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Operator: op.Kind, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (Expr, error) {
	if p.peek().Kind == Minus {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: op.Kind, Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Expr, error) {
	switch tok := p.peek(); tok.Kind {
	case Number:
		p.advance()
		v, err := tok.Value()
		if err != nil {
			return nil, err
		}
		return &NumberExpr{Value: v}, nil

	case LeftParen:
		open := p.advance()
		if p.peek().Kind == RightParen {
			return nil, fmt.Errorf("empty parentheses at position %d", open.Pos)
		}

		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if p.peek().Kind != RightParen {
			return nil, fmt.Errorf("mismatched parentheses: missing ')' for '(' at position %d", open.Pos)
		}
		p.advance()
		return inner, nil

	case RightParen:
		return nil, fmt.Errorf("mismatched parentheses: unexpected ')' at position %d", tok.Pos)

	case EndOfInput:
		return nil, errors.New("unexpected end of input: expected a number or '('")

	default:
		return nil, p.unexpectedTokenError(tok)
	}
}

// peek returns the current token without consuming it. A well-formed
// sequence always ends with EndOfInput; one is synthesized for sequences
// that lack it so the cursor never runs off the end.
func (p *Parser) peek() Token {
	if p.index < len(p.tokens) {
		return p.tokens[p.index]
	}

	pos := 0
	if n := len(p.tokens); n != 0 {
		last := p.tokens[n-1]
		pos = last.Pos + len(last.Lexeme)
	}
	return Token{Kind: EndOfInput, Pos: pos}
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.index < len(p.tokens) {
		p.index++
	}
	return tok
}

func (p *Parser) unexpectedTokenError(tok Token) error {
	return fmt.Errorf("Unexpected token '%s' at position %d", tok.Lexeme, tok.Pos)
}
