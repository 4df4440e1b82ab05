package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"quantity-generator/quantity"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func tokenize(s string) ([]token, error) {
	var toks []token

	for i := 0; i < len(s); {
		c := rune(s[i])

		switch {
		case unicode.IsSpace(c):
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case strings.ContainsRune("+-*/", c):
			toks = append(toks, token{tokOp, string(c), i})
			i++
		case unicode.IsDigit(c) || c == '.':
			j := scanNumber(s, i)
			toks = append(toks, token{tokNumber, s[i:j], i})
			i = j
		case unicode.IsLetter(c):
			j := i
			for j < len(s) && (unicode.IsLetter(rune(s[j])) || unicode.IsDigit(rune(s[j]))) {
				j++
			}

			toks = append(toks, token{tokIdent, s[i:j], i})
			i = j
		default:
			return nil, fmt.Errorf("unexpected %q at offset %d", c, i)
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(s)}), nil
}

// scanNumber returns the end of the number starting at i, exponent included.
func scanNumber(s string, i int) int {
	j := i
	for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
		j++
	}

	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}

		if k < len(s) && s[k] >= '0' && s[k] <= '9' {
			j = k
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
		}
	}

	return j
}

// parser evaluates
//
//	expr    = term { ("+" | "-") term }
//	term    = factor { ("*" | "/") factor }
//	factor  = ["-"] NUMBER UNIT | "(" expr ")"
//
// against a registry while parsing.
type parser struct {
	r    *quantity.Registry
	toks []token
	pos  int
}

func evaluate(r *quantity.Registry, expr string) (quantity.Value, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return quantity.Value{}, err
	}

	p := &parser{r: r, toks: toks}

	v, err := p.expr()
	if err != nil {
		return quantity.Value{}, err
	}

	if t := p.peek(); t.kind != tokEOF {
		return quantity.Value{}, fmt.Errorf("unexpected %q at offset %d", t.text, t.pos)
	}

	return v, nil
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

func (p *parser) expr() (quantity.Value, error) {
	left, err := p.term()
	if err != nil {
		return left, err
	}

	for t := p.peek(); t.kind == tokOp && (t.text == "+" || t.text == "-"); t = p.peek() {
		p.next()

		right, err := p.term()
		if err != nil {
			return left, err
		}

		if t.text == "+" {
			left, err = p.r.Add(left, right)
		} else {
			left, err = p.r.Sub(left, right)
		}

		if err != nil {
			return left, err
		}
	}

	return left, nil
}

func (p *parser) term() (quantity.Value, error) {
	left, err := p.factor()
	if err != nil {
		return left, err
	}

	for t := p.peek(); t.kind == tokOp && (t.text == "*" || t.text == "/"); t = p.peek() {
		p.next()

		right, err := p.factor()
		if err != nil {
			return left, err
		}

		op, err := quantity.ParseOperator(t.text)
		if err != nil {
			return left, err
		}

		if op == quantity.OpMul {
			left, err = p.r.Mul(left, right)
		} else {
			left, err = p.r.Div(left, right)
		}

		if err != nil {
			return left, err
		}
	}

	return left, nil
}

func (p *parser) factor() (quantity.Value, error) {
	t := p.next()

	switch t.kind {
	case tokLParen:
		v, err := p.expr()
		if err != nil {
			return v, err
		}

		if c := p.next(); c.kind != tokRParen {
			return v, fmt.Errorf("expected ) at offset %d", c.pos)
		}

		return v, nil
	case tokOp:
		if t.text != "-" || p.peek().kind != tokNumber {
			return quantity.Value{}, fmt.Errorf("unexpected %q at offset %d", t.text, t.pos)
		}

		return p.operand(-1)
	case tokNumber:
		p.pos--
		return p.operand(1)
	case tokEOF:
		return quantity.Value{}, errors.New("unexpected end of expression")
	default:
		return quantity.Value{}, fmt.Errorf("expected a number at offset %d, got %q", t.pos, t.text)
	}
}

// operand reads NUMBER UNIT. The sign is applied before conversion so that
// "-40 Celsius" means minus forty degrees.
func (p *parser) operand(sign float64) (quantity.Value, error) {
	num := p.next()

	f, err := strconv.ParseFloat(num.text, 64)
	if err != nil {
		return quantity.Value{}, fmt.Errorf("invalid number %q at offset %d", num.text, num.pos)
	}

	unit := p.next()
	if unit.kind != tokIdent {
		return quantity.Value{}, fmt.Errorf("expected a unit after %s at offset %d", num.text, unit.pos)
	}

	return p.r.New(sign*f, unit.text)
}
