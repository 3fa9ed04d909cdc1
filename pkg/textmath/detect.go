package textmath

// Detect returns the first expression found in text in document order, or
// nil if nothing evaluates.
func (d *Detector) Detect(text string) *Match {
	matches := d.FindAllExpressions(text)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

// DetectAtCursor returns the expression whose span contains the cursor
// offset (inclusive on both ends), else the nearest expression ending at or
// before the cursor, else the first expression in the text. It returns nil
// only when the text has no expressions at all.
func (d *Detector) DetectAtCursor(text string, cursor int) *Match {
	matches := d.FindAllExpressions(text)
	if len(matches) == 0 {
		return nil
	}

	for i := range matches {
		if matches[i].StartIndex <= cursor && cursor <= matches[i].EndIndex {
			return &matches[i]
		}
	}

	best := -1
	for i := range matches {
		if matches[i].EndIndex > cursor {
			continue
		}
		if best < 0 || matches[i].EndIndex > matches[best].EndIndex {
			best = i
		}
	}
	if best >= 0 {
		return &matches[best]
	}
	return &matches[0]
}

// Detect finds the first expression in text using default options.
func Detect(text string) *Match {
	return NewDetector().Detect(text)
}

// DetectAtCursor finds the expression nearest the cursor offset using
// default options.
func DetectAtCursor(text string, cursor int) *Match {
	return NewDetector().DetectAtCursor(text, cursor)
}
