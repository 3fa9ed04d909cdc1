package textmath

import (
	"math"
	"regexp"
)

// Candidate patterns for the scanner: chains of signed comma'd numerals
// joined by the supported operators, optionally mixed with single-level
// parenthesized groups, or a lone parenthesized group. Deliberately a loose
// superset of what evaluates cleanly - the tokenizer and evaluator reject
// the rest. Go's RE2 engine keeps matching linear on adversarial input.
const (
	numberPattern = `[-+]?\d[\d,]*(?:\.\d+)?`
	groupPattern  = `\([\d,.+\-*/x× ]*\d[\d,.+\-*/x× ]*\)`
	termPattern   = `(?:` + groupPattern + `|` + numberPattern + `)`
)

var expressionRegex = regexp.MustCompile(
	termPattern + `(?: *[+\-*/x×] *` + termPattern + `)+` + `|` + groupPattern,
)

// Detector finds and evaluates math expressions in free-form text.
type Detector struct {
	opts *Options
}

// NewDetector creates a detector with the default options.
func NewDetector() *Detector {
	return NewDetectorWithOptions(DefaultOptions())
}

// NewDetectorWithOptions creates a detector with custom options. A nil
// options value falls back to the defaults.
func NewDetectorWithOptions(opts *Options) *Detector {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Detector{opts: opts}
}

// FindAllExpressions returns every substring of text that evaluates to a
// finite number, in document order. Text longer than the configured scan
// length yields no matches at all.
func (d *Detector) FindAllExpressions(text string) []Match {
	if len(text) > d.opts.MaxScanLength {
		return nil
	}

	var matches []Match
	for _, span := range expressionRegex.FindAllStringIndex(text, -1) {
		start, end := span[0], span[1]
		if isNumeralFragment(text, start, end) {
			continue
		}

		raw := text[start:end]
		tokens, err := Tokenize(raw)
		if err != nil {
			continue
		}
		result, err := Evaluate(tokens)
		if err != nil || math.IsInf(result, 0) || math.IsNaN(result) {
			continue
		}

		matches = append(matches, Match{
			Expression: raw,
			Result:     d.roundResult(result),
			StartIndex: start,
			EndIndex:   end,
		})
	}
	return matches
}

// FindAllExpressions finds every expression in text using default options.
func FindAllExpressions(text string) []Match {
	return NewDetector().FindAllExpressions(text)
}

// isNumeralFragment reports whether a raw pattern match is a fragment of a
// larger malformed numeral: directly preceded by a digit or a decimal
// point, or directly followed by a decimal point.
func isNumeralFragment(text string, start, end int) bool {
	if start > 0 {
		c := text[start-1]
		if (c >= '0' && c <= '9') || c == '.' {
			return true
		}
	}
	return end < len(text) && text[end] == '.'
}

// roundResult keeps integer-valued results exact and rounds everything else
// to the configured number of decimal places.
func (d *Detector) roundResult(value float64) float64 {
	if value == math.Trunc(value) {
		return value
	}
	shift := math.Pow(10, float64(d.opts.RoundDigits))
	return math.Round(value*shift) / shift
}
