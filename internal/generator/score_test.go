package generator

import (
	"errors"
	"testing"
)

func TestExtractScore(t *testing.T) {
	tests := []struct {
		output string
		want   float64
	}{
		{"8", 8},
		{"7.333", 7.33},
		{"12.7 is the score", 10.0},
		{"Score: 6.10", 6.1},
		{"I'd rate this 9.5 out of 10", 9.5},
		{"10", 10},
		{"0", 0},
	}

	for _, tt := range tests {
		got, err := ExtractScore(tt.output)
		if err != nil {
			t.Errorf("ExtractScore(%q) returned error: %v", tt.output, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractScore(%q) = %v, want %v", tt.output, got, tt.want)
		}
	}
}

func TestExtractScoreNoNumber(t *testing.T) {
	_, err := ExtractScore("no numbers here")
	if !errors.Is(err, ErrNoScore) {
		t.Errorf("ExtractScore(\"no numbers here\") error = %v, want ErrNoScore", err)
	}

	_, err = ExtractScore("")
	if !errors.Is(err, ErrNoScore) {
		t.Errorf("ExtractScore(\"\") error = %v, want ErrNoScore", err)
	}
}
