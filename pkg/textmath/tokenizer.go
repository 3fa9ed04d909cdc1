package textmath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Tokenizer splits a candidate expression string into tokens.
type Tokenizer struct {
	input    string
	position int
	tokens   []Token
}

// NewTokenizer creates a new tokenizer instance for the given input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the input and returns a slice of tokens. A non-nil
// error means the candidate cannot be tokenized at all (for example a
// numeral with two decimal points) and detection for it must be abandoned.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	for t.position < len(t.input) {
		if err := t.nextToken(); err != nil {
			return nil, err
		}
	}
	return t.tokens, nil
}

// Tokenize splits an expression string into tokens using a fresh tokenizer.
func Tokenize(text string) ([]Token, error) {
	return NewTokenizer(text).Tokenize()
}

// nextToken processes the next token from the input.
func (t *Tokenizer) nextToken() error {
	r, size := utf8.DecodeRuneInString(t.input[t.position:])

	switch {
	case r == '(' || r == ')':
		t.tokens = append(t.tokens, NewParenToken(string(r)))
		t.position += size

	case isDigit(r) || r == '.' || (r == '-' && t.minusIsSign()):
		return t.matchNumber()

	case isOperatorRune(r):
		t.tokens = append(t.tokens, NewOperatorToken(normalizeOperator(r)))
		t.position += size

	default:
		// Whitespace and stray characters are skipped: the scanner has
		// already bounded the candidate to a sensible substring.
		t.position += size
	}
	return nil
}

// minusIsSign reports whether a '-' at the current position starts a signed
// numeral rather than acting as a binary operator. It is a sign exactly when
// no token has been emitted yet, or the last token is an operator or an open
// parenthesis - unless the next character is '(', which keeps expressions
// like "5-(3+2)" a subtraction.
func (t *Tokenizer) minusIsSign() bool {
	next, _ := utf8.DecodeRuneInString(t.input[t.position+1:])
	if next == '(' {
		return false
	}
	if len(t.tokens) == 0 {
		return true
	}
	last := t.tokens[len(t.tokens)-1]
	return last.Type == OperatorTokenType || last.isOpenParen()
}

// matchNumber consumes a numeric literal, stripping comma thousands
// separators. A second decimal point within the literal is a hard failure.
func (t *Tokenizer) matchNumber() error {
	start := t.position
	var literal strings.Builder
	seenDot := false

	if t.input[t.position] == '-' {
		literal.WriteByte('-')
		t.position++
	}

loop:
	for t.position < len(t.input) {
		switch c := t.input[t.position]; {
		case c >= '0' && c <= '9':
			literal.WriteByte(c)
		case c == '.':
			if seenDot {
				return fmt.Errorf("malformed numeral at offset %d: second decimal point", t.position)
			}
			seenDot = true
			literal.WriteByte('.')
		case c == ',':
			// Thousands separator, not a token boundary.
		default:
			break loop
		}
		t.position++
	}

	text := literal.String()
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("malformed numeral %q at offset %d", text, start)
	}
	t.tokens = append(t.tokens, NewNumberToken(text, value))
	return nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isOperatorRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', 'x', '×':
		return true
	}
	return false
}

// normalizeOperator maps the alternate multiplication glyphs to "*".
func normalizeOperator(r rune) string {
	if r == 'x' || r == '×' {
		return "*"
	}
	return string(r)
}
