package fhirpath

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tkWhitespace   tokenKind = iota
	tkDot                    // .
	tkOpenParen              // (
	tkCloseParen             // )
	tkOpenBracket            // [
	tkCloseBracket           // ]
	tkComma                  // ,
	tkSymbol                 // identifier, $this, %variable, true, false
	tkText                   // 'single-quoted'
	tkDateTime               // @2024-01-01 ...
	tkNumber                 // integer or decimal
	tkOperator               // + - * / | & and or xor implies as is
	tkComparator             // = != < <= > >=
	tkEOF
)

func (k tokenKind) String() string {
	switch k {
	case tkWhitespace:
		return "whitespace"
	case tkDot:
		return "'.'"
	case tkOpenParen:
		return "'('"
	case tkCloseParen:
		return "')'"
	case tkOpenBracket:
		return "'['"
	case tkCloseBracket:
		return "']'"
	case tkComma:
		return "','"
	case tkSymbol:
		return "symbol"
	case tkText:
		return "string"
	case tkDateTime:
		return "date/time"
	case tkNumber:
		return "number"
	case tkOperator:
		return "operator"
	case tkComparator:
		return "comparator"
	}
	return "end of expression"
}

type token struct {
	kind  tokenKind
	value string
	pos   int
}

var reservedOperators = map[string]bool{
	"and":     true,
	"or":      true,
	"xor":     true,
	"implies": true,
	"as":      true,
	"is":      true,
}

// tokenize splits a FHIRPath expression into tokens, including whitespace runs.
func tokenize(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		start := i
		ch := input[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			for i < len(input) && strings.IndexByte(" \t\n\r", input[i]) >= 0 {
				i++
			}
			tokens = append(tokens, token{kind: tkWhitespace, value: input[start:i], pos: start})
			continue
		case ch == '/' && i+1 < len(input) && (input[i+1] == '/' || input[i+1] == '*'):
			end, err := skipComment(input, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tkWhitespace, value: input[start:end], pos: start})
			i = end
			continue
		case ch == '.':
			tokens = append(tokens, token{kind: tkDot, value: ".", pos: i})
		case ch == '(':
			tokens = append(tokens, token{kind: tkOpenParen, value: "(", pos: i})
		case ch == ')':
			tokens = append(tokens, token{kind: tkCloseParen, value: ")", pos: i})
		case ch == '[':
			tokens = append(tokens, token{kind: tkOpenBracket, value: "[", pos: i})
		case ch == ']':
			tokens = append(tokens, token{kind: tkCloseBracket, value: "]", pos: i})
		case ch == ',':
			tokens = append(tokens, token{kind: tkComma, value: ",", pos: i})
		case strings.IndexByte("+-*/|&", ch) >= 0:
			tokens = append(tokens, token{kind: tkOperator, value: string(ch), pos: i})
		case ch == '=':
			tokens = append(tokens, token{kind: tkComparator, value: "=", pos: i})
		case ch == '!':
			if i+1 >= len(input) || input[i+1] != '=' {
				return nil, &SyntaxError{Expr: input, Pos: i, Msg: "expected '=' after '!'"}
			}
			tokens = append(tokens, token{kind: tkComparator, value: "!=", pos: i})
			i++
		case ch == '<' || ch == '>':
			if i+1 < len(input) && input[i+1] == '=' {
				tokens = append(tokens, token{kind: tkComparator, value: input[i : i+2], pos: i})
				i++
			} else {
				tokens = append(tokens, token{kind: tkComparator, value: string(ch), pos: i})
			}
		case ch == '\'':
			s, end, err := lexText(input, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tkText, value: s, pos: start})
			i = end
			continue
		case ch == '`':
			end := strings.IndexByte(input[i+1:], '`')
			if end < 0 {
				return nil, &SyntaxError{Expr: input, Pos: i, Msg: "unterminated delimited identifier"}
			}
			tokens = append(tokens, token{kind: tkSymbol, value: input[i+1 : i+1+end], pos: i})
			i += end + 2
			continue
		case ch == '@':
			i++
			for i < len(input) && (isDigit(input[i]) || strings.IndexByte("-:.TZ+", input[i]) >= 0) {
				i++
			}
			if i == start+1 {
				return nil, &SyntaxError{Expr: input, Pos: start, Msg: "empty date/time literal"}
			}
			tokens = append(tokens, token{kind: tkDateTime, value: input[start:i], pos: start})
			continue
		case isDigit(ch):
			for i < len(input) && isDigit(input[i]) {
				i++
			}
			if i+1 < len(input) && input[i] == '.' && isDigit(input[i+1]) {
				i++
				for i < len(input) && isDigit(input[i]) {
					i++
				}
			}
			tokens = append(tokens, token{kind: tkNumber, value: input[start:i], pos: start})
			continue
		case ch == '$' || ch == '%':
			i++
			if i < len(input) && input[i] == '`' {
				end := strings.IndexByte(input[i+1:], '`')
				if end < 0 {
					return nil, &SyntaxError{Expr: input, Pos: i, Msg: "unterminated delimited identifier"}
				}
				tokens = append(tokens, token{kind: tkSymbol, value: string(ch) + input[i+1:i+1+end], pos: start})
				i += end + 2
				continue
			}
			i = lexSymbol(input, i)
			if i == start+1 {
				return nil, &SyntaxError{Expr: input, Pos: start, Msg: "expected identifier after " + string(ch)}
			}
			tokens = append(tokens, token{kind: tkSymbol, value: input[start:i], pos: start})
			continue
		default:
			r, _ := utf8.DecodeRuneInString(input[i:])
			if !isSymbolStart(r) {
				return nil, &SyntaxError{Expr: input, Pos: i, Msg: "unexpected character " + strconv.QuoteRune(r)}
			}
			i = lexSymbol(input, i)
			word := input[start:i]
			if reservedOperators[word] {
				tokens = append(tokens, token{kind: tkOperator, value: word, pos: start})
			} else {
				tokens = append(tokens, token{kind: tkSymbol, value: word, pos: start})
			}
			continue
		}
		i++
	}
	tokens = append(tokens, token{kind: tkEOF, pos: len(input)})
	return tokens, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func lexSymbol(input string, i int) int {
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		if !isSymbolPart(r) {
			break
		}
		i += size
	}
	return i
}

func skipComment(input string, i int) (int, error) {
	if input[i+1] == '/' {
		if end := strings.IndexByte(input[i:], '\n'); end >= 0 {
			return i + end, nil
		}
		return len(input), nil
	}
	end := strings.Index(input[i+2:], "*/")
	if end < 0 {
		return 0, &SyntaxError{Expr: input, Pos: i, Msg: "unterminated comment"}
	}
	return i + 2 + end + 2, nil
}

// lexText reads a single-quoted string starting at i and returns its unescaped value
// and the position after the closing quote.
func lexText(input string, i int) (string, int, error) {
	var b strings.Builder
	j := i + 1
	for j < len(input) {
		c := input[j]
		switch c {
		case '\'':
			return b.String(), j + 1, nil
		case '\\':
			if j+1 >= len(input) {
				return "", 0, &SyntaxError{Expr: input, Pos: j, Msg: "unterminated escape"}
			}
			j++
			switch input[j] {
			case '\'', '"', '`', '\\', '/':
				b.WriteByte(input[j])
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'f':
				b.WriteByte('\f')
			case 'u':
				if j+4 >= len(input) {
					return "", 0, &SyntaxError{Expr: input, Pos: j, Msg: "invalid unicode escape"}
				}
				r, err := strconv.ParseUint(input[j+1:j+5], 16, 32)
				if err != nil {
					return "", 0, &SyntaxError{Expr: input, Pos: j, Msg: "invalid unicode escape"}
				}
				b.WriteRune(rune(r))
				j += 4
			default:
				return "", 0, &SyntaxError{Expr: input, Pos: j, Msg: "invalid escape \\" + string(input[j])}
			}
			j++
		default:
			b.WriteByte(c)
			j++
		}
	}
	return "", 0, &SyntaxError{Expr: input, Pos: i, Msg: "unterminated string"}
}

func isUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
