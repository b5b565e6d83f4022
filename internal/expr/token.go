package expr

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret // ^ and Python-style **
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	pos  int
	text string
	val  float64 // Set for tokNumber
}

// scan tokenizes src. The token stream always ends with a tokEOF entry.
func scan(src string) ([]token, error) {
	var toks []token
	i := 0
	n := len(src)

	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++

		case c >= '0' && c <= '9' || c == '.':
			start := i
			for i < n && (src[i] >= '0' && src[i] <= '9' || src[i] == '.') {
				i++
			}
			// Optional exponent part
			if i < n && (src[i] == 'e' || src[i] == 'E') {
				j := i + 1
				if j < n && (src[j] == '+' || src[j] == '-') {
					j++
				}
				if j < n && src[j] >= '0' && src[j] <= '9' {
					i = j
					for i < n && src[i] >= '0' && src[i] <= '9' {
						i++
					}
				}
			}
			text := src[start:i]
			val, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &ParseError{Pos: start, Msg: fmt.Sprintf("malformed number %q", text)}
			}
			toks = append(toks, token{kind: tokNumber, pos: start, text: text, val: val})

		case isIdentStart(rune(c)):
			start := i
			for i < n && isIdentPart(rune(src[i])) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, pos: start, text: src[start:i]})

		case c == '*':
			// Python habit: ** means power
			if i+1 < n && src[i+1] == '*' {
				toks = append(toks, token{kind: tokCaret, pos: i, text: "**"})
				i += 2
			} else {
				toks = append(toks, token{kind: tokStar, pos: i, text: "*"})
				i++
			}

		default:
			kind, ok := singleCharTokens[c]
			if !ok {
				return nil, &ParseError{Pos: i, Msg: fmt.Sprintf("unexpected character %q", string(c))}
			}
			toks = append(toks, token{kind: kind, pos: i, text: string(c)})
			i++
		}
	}

	toks = append(toks, token{kind: tokEOF, pos: n})
	return toks, nil
}

var singleCharTokens = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'/': tokSlash,
	'^': tokCaret,
	'(': tokLParen,
	')': tokRParen,
	',': tokComma,
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
