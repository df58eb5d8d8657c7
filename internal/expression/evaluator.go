package expression

import (
	"errors"
	"fmt"

	"github.com/codehardth/calc/internal/result"
)

// Evaluate reduces an expression tree to a numeric value by a pure
// recursive walk. Binary operands are evaluated left before right, so a
// failure in the left subtree wins. Recursion depth equals tree depth.
func Evaluate(expr Expr) result.Result[float64] {
	v, err := evaluate(expr)
	if err != nil {
		return result.Err[float64](err)
	}
	return result.OK(v)
}

func evaluate(expr Expr) (float64, error) {
	switch e := expr.(type) {
	case *NumberExpr:
		return e.Value, nil

	case *UnaryExpr:
		v, err := evaluate(e.Operand)
		if err != nil {
			return 0, err
		}

		switch e.Operator {
		case Minus:
			return -v, nil
		default:
			panic(fmt.Sprintf("unknown unary operator: %s", e.Operator))
		}

	case *BinaryExpr:
		left, err := evaluate(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := evaluate(e.Right)
		if err != nil {
			return 0, err
		}

		switch e.Operator {
		case Plus:
			return left + right, nil
		case Minus:
			return left - right, nil
		case Star:
			return left * right, nil
		case Slash:
			// an exactly-zero divisor is rejected; negative zero compares
			// equal to zero and is rejected too
			if right == 0 {
				return 0, errors.New("Division by zero")
			}
			return left / right, nil
		default:
			panic(fmt.Sprintf("unknown binary operator: %s", e.Operator))
		}

	default:
		panic(fmt.Sprintf("unknown expression node: %T", expr))
	}
}
