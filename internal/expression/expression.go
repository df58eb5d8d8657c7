// Package expression implements the arithmetic expression pipeline:
// tokenize, parse by recursive descent, evaluate by tree walk. Each stage
// is a pure function over its whole input and reports failure through
// result.Result instead of raising.
package expression

import "github.com/codehardth/calc/internal/result"

// EvaluateString runs the full pipeline over source, short-circuiting at
// the first failing stage.
func EvaluateString(source string) result.Result[float64] {
	return result.FlatMap(result.FlatMap(Tokenize(source), Parse), Evaluate)
}
