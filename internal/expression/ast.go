package expression

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is a node of the abstract syntax tree. The union is closed:
// NumberExpr, UnaryExpr and BinaryExpr are the only implementations.
// Trees are built bottom-up by the parser and never mutated afterwards.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

// UnaryExpr applies a prefix operator to its operand. The operator is
// always Minus.
type UnaryExpr struct {
	Operator TokenKind
	Operand  Expr
}

// BinaryExpr combines two fully-formed subtrees with an infix operator,
// one of Plus, Minus, Star or Slash.
type BinaryExpr struct {
	Left     Expr
	Operator TokenKind
	Right    Expr
}

func (e *NumberExpr) exprNode() {}
func (e *UnaryExpr) exprNode()  {}
func (e *BinaryExpr) exprNode() {}

func (e *NumberExpr) String() string {
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

func (e *UnaryExpr) String() string {
	return renderList(e.Operator, e.Operand)
}

func (e *BinaryExpr) String() string {
	return renderList(e.Operator, e.Left, e.Right)
}

// renderList prints a node as an s-expression for debug output.
func renderList(op TokenKind, children ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(op.String())
	for _, child := range children {
		b.WriteByte(' ')
		b.WriteString(child.String())
	}
	b.WriteByte(')')
	return b.String()
}
