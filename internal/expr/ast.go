package expr

import "math"

// node is an AST node evaluable at a given x.
// eval works in plain IEEE arithmetic; domain errors surface as NaN or
// Inf and are classified by Expr.Eval, so node evaluation never fails.
type node interface {
	eval(x float64) float64
}

type numNode float64

func (n numNode) eval(float64) float64 { return float64(n) }

type varNode struct{}

func (varNode) eval(x float64) float64 { return x }

type negNode struct {
	operand node
}

func (n negNode) eval(x float64) float64 { return -n.operand.eval(x) }

type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opPow
)

type binNode struct {
	op          binOp
	left, right node
}

func (n binNode) eval(x float64) float64 {
	l := n.left.eval(x)
	r := n.right.eval(x)
	switch n.op {
	case opAdd:
		return l + r
	case opSub:
		return l - r
	case opMul:
		return l * r
	case opDiv:
		return l / r
	case opPow:
		return math.Pow(l, r)
	}
	return math.NaN()
}

type callNode struct {
	fn   *builtin
	args []node
}

func (n callNode) eval(x float64) float64 {
	switch n.fn.arity {
	case 1:
		return n.fn.fn1(n.args[0].eval(x))
	case 2:
		return n.fn.fn2(n.args[0].eval(x), n.args[1].eval(x))
	}
	return math.NaN()
}
