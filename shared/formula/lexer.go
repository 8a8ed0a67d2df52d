package formula

import (
	"sort"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokVar   // x
	tokConst // pi, e
	tokFunc
	tokOp
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of formula"
	case tokNumber:
		return "number"
	case tokVar:
		return "variable"
	case tokConst:
		return "constant"
	case tokFunc:
		return "function"
	case tokOp:
		return "operator"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "token"
	}
}

type token struct {
	kind tokenKind
	pos  int
	text string
	num  float64
	op   byte // normalized: + - * / % ^
}

// names lists every identifier the lexer may split a letter run into,
// longest first so greedy matching prefers "exp" over "e".
var names = func() []string {
	ns := []string{variable}
	for name := range constants {
		ns = append(ns, name)
	}
	for _, f := range functions {
		ns = append(ns, f.name)
	}
	sort.Slice(ns, func(i, j int) bool {
		if len(ns[i]) != len(ns[j]) {
			return len(ns[i]) > len(ns[j])
		}
		return ns[i] < ns[j]
	})
	return ns
}()

// tokenize splits src into tokens. Letter runs such as "xsinx" are split
// into known names so implicit multiplication can be recognised later.
func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.':
			tok, next, err := lexNumber(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		case isLetter(c):
			start := i
			for i < len(src) && isLetter(src[i]) {
				i++
			}
			idents, err := splitIdentifiers(strings.ToLower(src[start:i]), start, callFollows(src, i))
			if err != nil {
				return nil, err
			}
			toks = append(toks, idents...)
		case c == '*' && i+1 < len(src) && src[i+1] == '*':
			toks = append(toks, token{kind: tokOp, pos: i, text: "**", op: '^'})
			i += 2
		case strings.IndexByte("+-*/%^", c) >= 0:
			toks = append(toks, token{kind: tokOp, pos: i, text: string(c), op: c})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i, text: ")"})
			i++
		default:
			return nil, translationErrorf(i, "unknown symbol %q", rune(c))
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}

// lexNumber reads a decimal literal with optional fraction and exponent.
// An exponent marker must be followed by digits unless it starts an
// identifier run, so "1e" is malformed while "2ex" reads as 2*e*x.
func lexNumber(src string, start int) (token, int, error) {
	i := start
	digits := 0
	for i < len(src) && isDigit(src[i]) {
		i++
		digits++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return token{}, 0, translationErrorf(start, "malformed number")
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		switch {
		case j < len(src) && isDigit(src[j]):
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		case j == i+1 && j < len(src) && isLetter(src[j]):
			// "2exp(x)", "2ex": the letters form an identifier run.
		default:
			return token{}, 0, translationErrorf(start, "malformed number %q", src[start:j])
		}
	}
	if i < len(src) && (src[i] == '.' || isDigit(src[i])) {
		return token{}, 0, translationErrorf(start, "malformed number")
	}
	text := src[start:i]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, 0, translationErrorf(start, "malformed number %q", text)
	}
	return token{kind: tokNumber, pos: start, text: text, num: v}, i, nil
}

func splitIdentifiers(run string, offset int, call bool) ([]token, error) {
	var toks []token
	i := 0
	for i < len(run) {
		matched := ""
		for _, name := range names {
			if strings.HasPrefix(run[i:], name) {
				matched = name
				break
			}
		}
		if matched == "" {
			end := i + 1
			for end < len(run) && !startsWithName(run[end:]) {
				end++
			}
			if call && end == len(run) {
				return nil, translationErrorf(offset+i, "unknown function %q", run[i:end])
			}
			return nil, translationErrorf(offset+i, "unknown symbol %q", run[i:end])
		}
		tok := token{pos: offset + i, text: matched}
		switch {
		case matched == variable:
			tok.kind = tokVar
		case isConstant(matched):
			tok.kind = tokConst
			tok.num = constants[matched]
		default:
			tok.kind = tokFunc
		}
		toks = append(toks, tok)
		i += len(matched)
	}
	return toks, nil
}

// callFollows reports whether the next non-blank byte after i is '('.
func callFollows(src string, i int) bool {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return i < len(src) && src[i] == '('
}

func startsWithName(s string) bool {
	for _, name := range names {
		if strings.HasPrefix(s, name) {
			return true
		}
	}
	return false
}

func isConstant(name string) bool {
	_, ok := constants[name]
	return ok
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
