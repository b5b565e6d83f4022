// Package expr compiles user-typed mathematical expressions into
// evaluable functions of a single variable x.
//
// Expressions are parsed into a small AST restricted to numeric
// literals, the variable x, arithmetic operators, and calls to an
// allow-listed set of math functions. There is no dynamic evaluation:
// anything outside the grammar or the allow-list is rejected at
// compile time, before any value is computed.
package expr

import (
	"errors"
	"fmt"
	"math"
)

// Parser limits. A pathological expression (deeply nested calls,
// thousands of tokens) is rejected at compile time so per-point
// evaluation cost stays bounded.
const (
	maxTokens = 256
	maxDepth  = 100
)

// ErrEmpty is returned by Compile for blank input. The UI uses it to
// distinguish "nothing typed yet" from a malformed expression.
var ErrEmpty = errors.New("expr: empty expression")

// ParseError describes why an expression failed to compile.
type ParseError struct {
	Pos int    // Byte offset into the source where the error was detected
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: %s (at offset %d)", e.Msg, e.Pos)
}

// Expr is a compiled expression. It is immutable and safe to evaluate
// repeatedly.
type Expr struct {
	src  string
	root node
}

// Compile parses src into an evaluable expression.
// It returns ErrEmpty for blank input and a *ParseError for syntax
// errors, unknown identifiers, arity mismatches, and expressions
// exceeding the size limits.
func Compile(src string) (*Expr, error) {
	toks, err := scan(src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 1 { // EOF only
		return nil, ErrEmpty
	}
	if len(toks) > maxTokens {
		return nil, &ParseError{Pos: 0, Msg: "expression too long"}
	}

	p := &parser{toks: toks}
	root, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, &ParseError{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %q", tok.text)}
	}

	return &Expr{src: src, root: root}, nil
}

// Eval computes the expression at the given x.
// ok is false when the result is undefined at this point: division by
// zero, logarithm of a non-positive number, square root of a negative
// number, and overflow all surface as NaN or Inf and are reported as
// undefined rather than propagated.
func (e *Expr) Eval(x float64) (y float64, ok bool) {
	y = e.root.eval(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, false
	}
	return y, true
}

// String returns the source the expression was compiled from.
func (e *Expr) String() string {
	return e.src
}
