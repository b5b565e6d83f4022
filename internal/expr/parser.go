package expr

import "fmt"

// parser is a recursive-descent parser over a scanned token stream.
//
// Grammar, loosest-binding first:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = "-" unary | power
//	power   = primary [ ("^" | "**") unary ]   (right-associative)
//	primary = number | ident | ident "(" expr { "," expr } ")" | "(" expr ")"
//
// Power binding tighter than unary minus matches the usual convention:
// -x^2 parses as -(x^2).
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errDepth(t token) error {
	return &ParseError{Pos: t.pos, Msg: "expression too deeply nested"}
}

func (p *parser) parseExpr(depth int) (node, error) {
	if depth > maxDepth {
		return nil, p.errDepth(p.peek())
	}

	left, err := p.parseTerm(depth + 1)
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.parseTerm(depth + 1)
			if err != nil {
				return nil, err
			}
			left = binNode{op: opAdd, left: left, right: right}
		case tokMinus:
			p.next()
			right, err := p.parseTerm(depth + 1)
			if err != nil {
				return nil, err
			}
			left = binNode{op: opSub, left: left, right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm(depth int) (node, error) {
	if depth > maxDepth {
		return nil, p.errDepth(p.peek())
	}

	left, err := p.parseUnary(depth + 1)
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.parseUnary(depth + 1)
			if err != nil {
				return nil, err
			}
			left = binNode{op: opMul, left: left, right: right}
		case tokSlash:
			p.next()
			right, err := p.parseUnary(depth + 1)
			if err != nil {
				return nil, err
			}
			left = binNode{op: opDiv, left: left, right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary(depth int) (node, error) {
	if depth > maxDepth {
		return nil, p.errDepth(p.peek())
	}

	if p.peek().kind == tokMinus {
		p.next()
		operand, err := p.parseUnary(depth + 1)
		if err != nil {
			return nil, err
		}
		return negNode{operand: operand}, nil
	}
	return p.parsePower(depth + 1)
}

func (p *parser) parsePower(depth int) (node, error) {
	if depth > maxDepth {
		return nil, p.errDepth(p.peek())
	}

	base, err := p.parsePrimary(depth + 1)
	if err != nil {
		return nil, err
	}

	if p.peek().kind == tokCaret {
		p.next()
		// Right operand goes through unary so 2^-x works.
		exponent, err := p.parseUnary(depth + 1)
		if err != nil {
			return nil, err
		}
		return binNode{op: opPow, left: base, right: exponent}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary(depth int) (node, error) {
	if depth > maxDepth {
		return nil, p.errDepth(p.peek())
	}

	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return numNode(tok.val), nil

	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.parseCall(tok, depth+1)
		}
		if tok.text == "x" {
			return varNode{}, nil
		}
		if val, ok := constants[tok.text]; ok {
			return numNode(val), nil
		}
		if _, ok := builtins[tok.text]; ok {
			return nil, &ParseError{Pos: tok.pos, Msg: fmt.Sprintf("%s is a function, expected %s(...)", tok.text, tok.text)}
		}
		return nil, &ParseError{Pos: tok.pos, Msg: fmt.Sprintf("unknown identifier %q", tok.text)}

	case tokLParen:
		inner, err := p.parseExpr(depth + 1)
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, &ParseError{Pos: closing.pos, Msg: "missing closing parenthesis"}
		}
		return inner, nil

	case tokEOF:
		return nil, &ParseError{Pos: tok.pos, Msg: "unexpected end of expression"}

	default:
		return nil, &ParseError{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %q", tok.text)}
	}
}

// parseCall parses ident "(" args ")" where ident has already been
// consumed. The callee must be in the allow-list with matching arity.
func (p *parser) parseCall(ident token, depth int) (node, error) {
	fn, ok := builtins[ident.text]
	if !ok {
		return nil, &ParseError{Pos: ident.pos, Msg: fmt.Sprintf("unknown function %q", ident.text)}
	}

	p.next() // consume "("

	var args []node
	if p.peek().kind != tokRParen {
		for {
			arg, err := p.parseExpr(depth + 1)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}

	if closing := p.next(); closing.kind != tokRParen {
		return nil, &ParseError{Pos: closing.pos, Msg: fmt.Sprintf("missing closing parenthesis in call to %s", fn.name)}
	}
	if len(args) != fn.arity {
		return nil, &ParseError{
			Pos: ident.pos,
			Msg: fmt.Sprintf("%s expects %d argument(s), got %d", fn.name, fn.arity, len(args)),
		}
	}

	return callNode{fn: fn, args: args}, nil
}
