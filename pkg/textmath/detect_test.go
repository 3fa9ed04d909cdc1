package textmath

import (
	"testing"
)

func TestDetectAtCursorWithinSpan(t *testing.T) {
	text := "hello 10+5 world" // match spans [6,10)

	tests := []struct {
		name   string
		cursor int
	}{
		{"Cursor inside", 8},
		{"Cursor at end", 10},
		{"Cursor at start", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := DetectAtCursor(text, tt.cursor)

			if match == nil {
				t.Fatalf("Expected a match, got nil")
			}
			if match.Expression != "10+5" || match.Result != 15 {
				t.Errorf("Expected '10+5' = 15, got %q = %v", match.Expression, match.Result)
			}
		})
	}
}

func TestDetectAtCursorNearestPreceding(t *testing.T) {
	text := "10+5 some text here"
	match := DetectAtCursor(text, 15)

	if match == nil {
		t.Fatalf("Expected a match, got nil")
	}
	if match.Expression != "10+5" {
		t.Errorf("Expected nearest preceding match '10+5', got %q", match.Expression)
	}
}

func TestDetectAtCursorBeforeAllMatches(t *testing.T) {
	text := "some text 10+5"
	match := DetectAtCursor(text, 0)

	if match == nil {
		t.Fatalf("Expected a match, got nil")
	}
	if match.Expression != "10+5" {
		t.Errorf("Expected first match '10+5', got %q", match.Expression)
	}
}

func TestDetectAtCursorPicksContainingMatch(t *testing.T) {
	text := "1+1 and 2+2" // matches span [0,3) and [8,11)

	tests := []struct {
		name     string
		cursor   int
		expected string
	}{
		{"Inside first", 1, "1+1"},
		{"Inside second", 9, "2+2"},
		{"Between matches", 5, "1+1"},
		{"After everything", 11, "2+2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := DetectAtCursor(text, tt.cursor)

			if match == nil {
				t.Fatalf("Expected a match, got nil")
			}
			if match.Expression != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, match.Expression)
			}
		})
	}
}

func TestDetectAtCursorNoMatches(t *testing.T) {
	if match := DetectAtCursor("no math here", 3); match != nil {
		t.Errorf("Expected nil, got %q", match.Expression)
	}
}
