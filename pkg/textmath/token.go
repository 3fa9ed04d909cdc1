package textmath

// TokenType represents the different types of tokens.
type TokenType string

const (
	NumberTokenType   TokenType = "n" // Numeric literals
	OperatorTokenType TokenType = "o" // One of + - * /
	ParenTokenType    TokenType = "p" // ( or )
)

// Token represents a single unit of a math expression. Number tokens carry
// their parsed value; the Text field holds the literal with thousands
// separators already stripped.
type Token struct {
	Type  TokenType `json:"type"`
	Text  string    `json:"text"`
	Value float64   `json:"value,omitempty"`
}

// NewNumberToken creates a numeric token.
func NewNumberToken(text string, value float64) Token {
	return Token{Type: NumberTokenType, Text: text, Value: value}
}

// NewOperatorToken creates an operator token. Alternate multiplication
// glyphs must already be normalized to "*".
func NewOperatorToken(op string) Token {
	return Token{Type: OperatorTokenType, Text: op}
}

// NewParenToken creates a parenthesis token from "(" or ")".
func NewParenToken(paren string) Token {
	return Token{Type: ParenTokenType, Text: paren}
}

func (t Token) isNumber() bool {
	return t.Type == NumberTokenType
}

func (t Token) isOperator(op string) bool {
	return t.Type == OperatorTokenType && t.Text == op
}

func (t Token) isOpenParen() bool {
	return t.Type == ParenTokenType && t.Text == "("
}

func (t Token) isCloseParen() bool {
	return t.Type == ParenTokenType && t.Text == ")"
}

// Match is a validated expression found in source text. Expression is always
// exactly the slice text[StartIndex:EndIndex] of the scanned text, and
// Result is always finite.
type Match struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
	StartIndex int     `json:"startIndex"`
	EndIndex   int     `json:"endIndex"`
}
