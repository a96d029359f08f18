package fhirpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

type parser struct {
	expr   string
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if t.kind != tkEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.advance()
	if t.kind != kind {
		return t, p.errorf(t, "expected %s but got %s", kind, describe(t))
	}
	return t, nil
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &SyntaxError{Expr: p.expr, Pos: t.pos, Msg: fmt.Sprintf(format, args...)}
}

func describe(t token) string {
	if t.kind == tkEOF {
		return t.kind.String()
	}
	return fmt.Sprintf("%q", t.value)
}

// parse builds the AST of a whole expression.
func parse(expr string) (Node, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{expr: expr}
	for _, t := range tokens {
		if t.kind != tkWhitespace {
			p.tokens = append(p.tokens, t)
		}
	}
	if p.peek().kind == tkEOF {
		return nil, p.errorf(p.peek(), "empty expression")
	}
	tree, err := p.parseExpression(precImplies)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tkEOF {
		return nil, p.errorf(t, "unexpected %s", describe(t))
	}
	return tree, nil
}

// Operator precedence, lowest first.
const (
	precImplies = iota + 1
	precOr
	precAnd
	precComparison
	precUnion
	precType
	precAdditive
	precMultiplicative
)

func infixInfo(t token) (int, Op) {
	switch t.kind {
	case tkOperator:
		switch t.value {
		case "implies":
			return precImplies, OpImplies
		case "or":
			return precOr, OpOr
		case "xor":
			return precOr, OpXor
		case "and":
			return precAnd, OpAnd
		case "|":
			return precUnion, OpUnion
		case "as":
			return precType, OpAs
		case "is":
			return precType, OpIs
		case "+":
			return precAdditive, OpAdd
		case "-":
			return precAdditive, OpSub
		case "&":
			return precAdditive, OpConcat
		case "*":
			return precMultiplicative, OpMul
		case "/":
			return precMultiplicative, OpDiv
		}
	case tkComparator:
		return precComparison, Op(t.value)
	}
	return -1, ""
}

// parseExpression implements precedence climbing over the binary operators.
// All binary operators are left-associative.
func (p *parser) parseExpression(minPrec int) (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec, op := infixInfo(p.peek())
		if prec < minPrec {
			return left, nil
		}
		p.advance()
		var right Node
		if op == OpAs || op == OpIs {
			right, err = p.parseTypeSpecifier()
		} else {
			right, err = p.parseExpression(prec + 1)
		}
		if err != nil {
			return nil, err
		}
		left = BinOpNode{Left: left, Op: op, Right: right}
	}
}

func (p *parser) parseTypeSpecifier() (Node, error) {
	t, err := p.expect(tkSymbol)
	if err != nil {
		return nil, err
	}
	name := t.value
	if p.peek().kind == tkDot && p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].kind == tkSymbol {
		p.advance()
		name += "." + p.advance().value
	}
	return PathNode{Name: name}, nil
}

func (p *parser) parseUnary() (Node, error) {
	t := p.peek()
	if t.kind == tkOperator && (t.value == "-" || t.value == "+") {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if t.value == "+" {
			return operand, nil
		}
		switch n := operand.(type) {
		case IntegerNode:
			return IntegerNode{Value: -n.Value}, nil
		case DecimalNode:
			var neg apd.Decimal
			neg.Neg(n.Value)
			return DecimalNode{Value: &neg}, nil
		}
		return BinOpNode{Left: IntegerNode{Value: 0}, Op: OpSub, Right: operand}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a term followed by any number of .invocation suffixes.
// a.b.c parses as ((a . b) . c).
func (p *parser) parsePostfix() (Node, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tkDot {
		p.advance()
		right, err := p.parseInvocation()
		if err != nil {
			return nil, err
		}
		node = BinOpNode{Left: node, Op: OpDot, Right: right}
	}
	return node, nil
}

func (p *parser) parseTerm() (Node, error) {
	t := p.peek()
	switch t.kind {
	case tkOpenParen:
		p.advance()
		inner, err := p.parseExpression(precImplies)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tkCloseParen); err != nil {
			return nil, err
		}
		return inner, nil
	case tkText:
		p.advance()
		return StringNode{Value: t.value}, nil
	case tkNumber:
		p.advance()
		if strings.Contains(t.value, ".") {
			d, _, err := apd.NewFromString(t.value)
			if err != nil {
				return nil, p.errorf(t, "invalid decimal %q", t.value)
			}
			return DecimalNode{Value: d}, nil
		}
		i, err := strconv.ParseInt(t.value, 10, 32)
		if err != nil {
			return nil, p.errorf(t, "integer %q out of range", t.value)
		}
		return IntegerNode{Value: Integer(i)}, nil
	case tkDateTime:
		p.advance()
		v, err := parseDateTimeLiteral(t.value)
		if err != nil {
			return nil, p.errorf(t, "%v", err)
		}
		return DateTimeNode{Value: v}, nil
	case tkSymbol:
		if t.value == "true" || t.value == "false" {
			if next := p.tokens[p.pos+1]; next.kind != tkOpenParen {
				p.advance()
				return BooleanNode{Value: t.value == "true"}, nil
			}
		}
		return p.parseInvocation()
	}
	return nil, p.errorf(t, "unexpected %s", describe(t))
}

// parseInvocation parses name, name[k] or name(args...).
func (p *parser) parseInvocation() (Node, error) {
	t, err := p.expect(tkSymbol)
	if err != nil {
		return nil, err
	}
	switch p.peek().kind {
	case tkOpenParen:
		p.advance()
		var args []Node
		if p.peek().kind != tkCloseParen {
			for {
				arg, err := p.parseExpression(precImplies)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.peek().kind != tkComma {
					break
				}
				p.advance()
			}
		}
		if _, err := p.expect(tkCloseParen); err != nil {
			return nil, err
		}
		return CallNode{Name: t.value, Args: args}, nil
	case tkOpenBracket:
		p.advance()
		idx, err := p.expect(tkNumber)
		if err != nil {
			return nil, err
		}
		i, err := strconv.Atoi(idx.value)
		if err != nil {
			return nil, p.errorf(idx, "invalid index %q", idx.value)
		}
		if _, err := p.expect(tkCloseBracket); err != nil {
			return nil, err
		}
		return PathNode{Name: t.value, Index: &i}, nil
	}
	return PathNode{Name: t.value}, nil
}

func parseDateTimeLiteral(s string) (Element, error) {
	s = strings.TrimPrefix(s, "@")
	if strings.HasPrefix(s, "T") {
		return ParseTime(s)
	}
	if strings.Contains(s, "T") {
		return ParseDateTime(s)
	}
	return ParseDate(s)
}
