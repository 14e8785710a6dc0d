// Package forms holds the submission-boundary helpers shared by every view:
// the string-typed form fields are parsed into wire types exactly once, when
// the user submits.
package forms

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

const dateLayout = "2006-01-02"

// ParseDate parses a form date in "YYYY-MM-DD" format.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(dateStr))
}

// FormatDate renders a timestamp the way date inputs expect it.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Today returns the current date in form format, the default for date fields.
func Today() string {
	return FormatDate(time.Now())
}

// ParseMoney parses a non-negative monetary amount.
func ParseMoney(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ParseRating parses a performance rating: 1 to 5 inclusive, half steps.
func ParseRating(s string) (float64, bool) {
	r, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	if r < 1 || r > 5 {
		return 0, false
	}
	if math.Mod(r*2, 1) != 0 {
		return 0, false
	}
	return r, true
}

// SplitCSV turns a comma-separated field into a trimmed list, dropping blanks.
func SplitCSV(s string) []string {
	if IsEmpty(s) {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
