package generator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

// ErrNoScore indicates the model's reply contained no numeral to parse.
// Sweep callers count this as a per-item failure and leave the record
// unscored; it never aborts the batch.
var ErrNoScore = errors.New("no numeric score in model output")

var scorePattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// ExtractScore pulls the first decimal-or-integer numeral out of free-form
// model output, rounds it to 2 decimal places, and clamps it to 10.0.
func ExtractScore(modelOutput string) (float64, error) {
	match := scorePattern.FindString(modelOutput)
	if match == "" {
		return 0, ErrNoScore
	}

	score, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, ErrNoScore
	}

	score = math.Round(score*100) / 100
	return math.Min(score, 10.0), nil
}
