package formula

import "strings"

// Compile translates formula source into an Expression.
func Compile(source string) (*Expression, error) {
	if len(source) > MaxSourceLen {
		return nil, translationErrorf(MaxSourceLen, "formula longer than %d bytes", MaxSourceLen)
	}
	if strings.TrimSpace(source) == "" {
		return nil, translationErrorf(0, "empty formula")
	}
	toks, err := tokenize(source)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	if err := p.parseExpr(); err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		if tok.kind == tokRParen {
			return nil, translationErrorf(tok.pos, "unbalanced ')'")
		}
		return nil, translationErrorf(tok.pos, "unexpected %s %q", tok.kind, tok.text)
	}
	return &Expression{code: p.code, maxStack: p.maxStack}, nil
}

// parser is a recursive-descent parser that emits postfix code directly.
type parser struct {
	toks     []token
	pos      int
	depth    int
	code     []instr
	stack    int
	maxStack int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) emit(in instr) error {
	switch in.op {
	case opConst, opVar:
		p.stack++
	case opNeg, opCall:
	default:
		p.stack--
	}
	if p.stack > p.maxStack {
		p.maxStack = p.stack
	}
	if p.maxStack > MaxDepth {
		return translationErrorf(p.peek().pos, "formula nested too deeply")
	}
	p.code = append(p.code, in)
	return nil
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > MaxDepth {
		return translationErrorf(p.peek().pos, "formula nested too deeply")
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// expr = term {("+"|"-") term}
func (p *parser) parseExpr() error {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	if err := p.parseTerm(); err != nil {
		return err
	}
	for {
		tok := p.peek()
		if tok.kind != tokOp || (tok.op != '+' && tok.op != '-') {
			return nil
		}
		p.next()
		if err := p.parseTerm(); err != nil {
			return err
		}
		op := opAdd
		if tok.op == '-' {
			op = opSub
		}
		if err := p.emit(instr{op: op}); err != nil {
			return err
		}
	}
}

// term = unary {("*"|"/"|"%") unary | implicit power}
func (p *parser) parseTerm() error {
	if err := p.parseUnary(); err != nil {
		return err
	}
	return p.parseProductTail(true)
}

// parseProductTail consumes the rest of a product. With explicit set it
// accepts "*", "/" and "%"; implicit multiplication is always accepted.
func (p *parser) parseProductTail(explicit bool) error {
	for {
		tok := p.peek()
		var op opcode
		switch {
		case explicit && tok.kind == tokOp && (tok.op == '*' || tok.op == '/' || tok.op == '%'):
			p.next()
			if err := p.parseUnary(); err != nil {
				return err
			}
			switch tok.op {
			case '*':
				op = opMul
			case '/':
				op = opDiv
			default:
				op = opMod
			}
		case tok.kind == tokVar || tok.kind == tokConst || tok.kind == tokFunc || tok.kind == tokLParen:
			if err := p.parsePower(); err != nil {
				return err
			}
			op = opMul
		default:
			return nil
		}
		if err := p.emit(instr{op: op}); err != nil {
			return err
		}
	}
}

// unary = ("-"|"+") unary | power
func (p *parser) parseUnary() error {
	tok := p.peek()
	if tok.kind == tokOp && (tok.op == '-' || tok.op == '+') {
		p.next()
		if err := p.enter(); err != nil {
			return err
		}
		defer p.leave()
		if err := p.parseUnary(); err != nil {
			return err
		}
		if tok.op == '-' {
			return p.emit(instr{op: opNeg})
		}
		return nil
	}
	return p.parsePower()
}

// power = primary [("^"|"**") unary]
func (p *parser) parsePower() error {
	if err := p.parsePrimary(); err != nil {
		return err
	}
	tok := p.peek()
	if tok.kind != tokOp || tok.op != '^' {
		return nil
	}
	p.next()
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()
	if err := p.parseUnary(); err != nil {
		return err
	}
	return p.emit(instr{op: opPow})
}

func (p *parser) parsePrimary() error {
	tok := p.next()
	switch tok.kind {
	case tokNumber, tokConst:
		return p.emit(instr{op: opConst, val: tok.num})
	case tokVar:
		return p.emit(instr{op: opVar})
	case tokLParen:
		return p.parseGroup(tok)
	case tokFunc:
		return p.parseCall(tok)
	case tokEOF:
		return translationErrorf(tok.pos, "missing operand")
	case tokRParen:
		return translationErrorf(tok.pos, "unbalanced ')'")
	default:
		return translationErrorf(tok.pos, "unexpected %s %q", tok.kind, tok.text)
	}
}

func (p *parser) parseGroup(open token) error {
	if err := p.parseExpr(); err != nil {
		return err
	}
	if tok := p.next(); tok.kind != tokRParen {
		if tok.kind == tokEOF {
			return translationErrorf(open.pos, "unbalanced '('")
		}
		return translationErrorf(tok.pos, "expected ')' but found %s %q", tok.kind, tok.text)
	}
	return nil
}

// parseCall applies a function either to a parenthesised group or, without
// parentheses, to the implicit product that follows ("sin 2x" is sin(2x)).
func (p *parser) parseCall(fn token) error {
	idx, ok := functionIndex[fn.text]
	if !ok {
		return translationErrorf(fn.pos, "unknown function %q", fn.text)
	}
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	if open := p.peek(); open.kind == tokLParen {
		p.next()
		if err := p.parseGroup(open); err != nil {
			return err
		}
	} else {
		if tok := p.peek(); tok.kind == tokEOF {
			return translationErrorf(tok.pos, "missing argument for %s", fn.text)
		}
		if err := p.parseUnary(); err != nil {
			return err
		}
		if err := p.parseProductTail(false); err != nil {
			return err
		}
	}
	return p.emit(instr{op: opCall, fn: uint8(idx)})
}
