package textmath

import (
	"testing"
)

func TestBasicTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int // expected number of tokens
	}{
		{"Empty input", "", 0},
		{"Single number", "42", 1},
		{"Two-operand sum", "10+5", 3},
		{"Parenthesized expression", "(10+5)*2", 7},
		{"Whitespace skipped", " 10 + 5 ", 3},
		{"Stray characters skipped", "10 apples + 5", 3},
		{"Chained operators", "20/2/2", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if len(tokens) != tt.expected {
				t.Errorf("Expected %d tokens, got %d", tt.expected, len(tokens))
			}
		})
	}
}

func TestNumberTokens(t *testing.T) {
	tests := []struct {
		input         string
		expectedText  string
		expectedValue float64
	}{
		{"42", "42", 42},
		{"3.14", "3.14", 3.14},
		{".5", ".5", 0.5},
		{"-5", "-5", -5},
		{"12,738", "12738", 12738},
		{"1,000,000.5", "1000000.5", 1000000.5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if len(tokens) != 1 {
				t.Errorf("Expected 1 token, got %d", len(tokens))
				return
			}

			token := tokens[0]
			if token.Type != NumberTokenType {
				t.Errorf("Expected number token, got %s", token.Type)
			}

			if token.Text != tt.expectedText {
				t.Errorf("Expected text '%s', got '%s'", tt.expectedText, token.Text)
			}

			if token.Value != tt.expectedValue {
				t.Errorf("Expected value %v, got %v", tt.expectedValue, token.Value)
			}
		})
	}
}

func TestCommaSeparatedExpression(t *testing.T) {
	tokens, err := Tokenize("12,738+100")

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}

	if tokens[0].Value != 12738 {
		t.Errorf("Expected first value 12738, got %v", tokens[0].Value)
	}
	if !tokens[1].isOperator("+") {
		t.Errorf("Expected '+' operator, got %q", tokens[1].Text)
	}
	if tokens[2].Value != 100 {
		t.Errorf("Expected second value 100, got %v", tokens[2].Value)
	}
}

func TestOperatorNormalization(t *testing.T) {
	tests := []string{"3x4", "3×4", "3*4"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tokens, err := Tokenize(input)

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if len(tokens) != 3 {
				t.Errorf("Expected 3 tokens, got %d", len(tokens))
				return
			}

			if !tokens[1].isOperator("*") {
				t.Errorf("Expected normalized '*' operator, got %q", tokens[1].Text)
			}

			for _, token := range tokens {
				if token.Text == "x" || token.Text == "×" {
					t.Errorf("Multiplication glyph %q leaked into token stream", token.Text)
				}
			}
		})
	}
}

func TestUnarySign(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedTokens int
		numberIndex    int
		expectedValue  float64
	}{
		{"Leading negative number", "-5+10", 3, 0, -5},
		{"Negative after operator", "10*-2", 3, 2, -2},
		{"Negative after open paren", "(-5)", 3, 1, -5},
		{"Double minus", "5--3", 3, 2, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if len(tokens) != tt.expectedTokens {
				t.Errorf("Expected %d tokens, got %d", tt.expectedTokens, len(tokens))
				return
			}

			token := tokens[tt.numberIndex]
			if !token.isNumber() {
				t.Errorf("Expected number token at index %d, got %s", tt.numberIndex, token.Type)
			}
			if token.Value != tt.expectedValue {
				t.Errorf("Expected value %v, got %v", tt.expectedValue, token.Value)
			}
		})
	}
}

func TestMinusBeforeParenIsBinary(t *testing.T) {
	tokens, err := Tokenize("5-(3+2)")

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(tokens) != 7 {
		t.Fatalf("Expected 7 tokens, got %d", len(tokens))
	}

	if !tokens[1].isOperator("-") {
		t.Errorf("Expected binary '-' operator before '(', got %q token %q", tokens[1].Type, tokens[1].Text)
	}
}

func TestMalformedNumerals(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Two decimal points", "1.2.3"},
		{"Adjacent decimal points", "1..2"},
		{"Bare decimal point", "."},
		{"Bare minus", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)

			if err == nil {
				t.Errorf("Expected tokenization error, got %d tokens", len(tokens))
			}
			if tokens != nil {
				t.Errorf("Expected no tokens on failure, got %d", len(tokens))
			}
		})
	}
}
