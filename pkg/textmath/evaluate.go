package textmath

import (
	"errors"
	"fmt"
	"strconv"
)

// Evaluate reduces a token sequence to a single numeric value. Parentheses
// resolve innermost-leftmost first, then * and / apply left to right, then
// + and -. The caller's slice is never modified. Overflow to a non-finite
// value is not an error here; the scanner filters non-finite results.
func Evaluate(tokens []Token) (float64, error) {
	if len(tokens) == 0 {
		return 0, errors.New("empty expression")
	}

	// Unary sign on the whole sequence: a leading + is a no-op, a leading -
	// before a number or a group negates the evaluated remainder.
	if first := tokens[0]; first.Type == OperatorTokenType {
		switch first.Text {
		case "+":
			return Evaluate(tokens[1:])
		case "-":
			if len(tokens) > 1 && (tokens[1].isNumber() || tokens[1].isOpenParen()) {
				value, err := Evaluate(tokens[1:])
				if err != nil {
					return 0, err
				}
				return -value, nil
			}
		}
	}

	work := make([]Token, len(tokens))
	copy(work, tokens)

	work, err := resolveParens(work)
	if err != nil {
		return 0, err
	}
	work, err = reduceOperators(work, "*", "/")
	if err != nil {
		return 0, err
	}
	work, err = reduceOperators(work, "+", "-")
	if err != nil {
		return 0, err
	}

	if len(work) != 1 || !work[0].isNumber() {
		return 0, errors.New("expression did not reduce to a single value")
	}
	return work[0].Value, nil
}

// resolveParens repeatedly evaluates the leftmost innermost parenthesized
// group and splices its value back into the sequence in place of the group.
func resolveParens(tokens []Token) ([]Token, error) {
	for {
		closing := -1
		for i, tok := range tokens {
			if tok.isCloseParen() {
				closing = i
				break
			}
		}
		if closing < 0 {
			break
		}

		opening := -1
		for i := closing - 1; i >= 0; i-- {
			if tokens[i].isOpenParen() {
				opening = i
				break
			}
		}
		if opening < 0 {
			return nil, errors.New("unmatched closing parenthesis")
		}

		value, err := Evaluate(tokens[opening+1 : closing])
		if err != nil {
			return nil, err
		}
		spliced := append(tokens[:opening], numberFromValue(value))
		tokens = append(spliced, tokens[closing+1:]...)
	}

	for _, tok := range tokens {
		if tok.isOpenParen() {
			return nil, errors.New("unmatched opening parenthesis")
		}
	}
	return tokens, nil
}

// reduceOperators collapses every left-operand/operator/right-operand
// triplet for the given operators, strictly left to right, until none of
// the operators remain.
func reduceOperators(tokens []Token, ops ...string) ([]Token, error) {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Type != OperatorTokenType || !containsOperator(ops, tok.Text) {
			continue
		}
		if i == 0 || i == len(tokens)-1 || !tokens[i-1].isNumber() || !tokens[i+1].isNumber() {
			return nil, fmt.Errorf("operator %q is missing an operand", tok.Text)
		}

		left, right := tokens[i-1].Value, tokens[i+1].Value
		var value float64
		switch tok.Text {
		case "*":
			value = left * right
		case "/":
			if right == 0 {
				return nil, errors.New("division by zero")
			}
			value = left / right
		case "+":
			value = left + right
		case "-":
			value = left - right
		}

		tokens[i-1] = numberFromValue(value)
		tokens = append(tokens[:i], tokens[i+2:]...)
		// The collapsed value may be the left operand of the next operator.
		i--
	}
	return tokens, nil
}

func containsOperator(ops []string, op string) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

func numberFromValue(value float64) Token {
	return NewNumberToken(strconv.FormatFloat(value, 'f', -1, 64), value)
}
