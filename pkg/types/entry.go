package types

import (
	"math"
	"strconv"
	"strings"
)

// ErrorText is what the display shows for an Error entry.
const ErrorText = "Error"

// Entry is the text of the number being typed or shown, or the Error marker.
// The zero value is not valid; use NumericEntry or ErrorEntry.
type Entry struct {
	text    string
	invalid bool
}

// NumericEntry wraps literal number text such as "0", "12.", "-7" or "1e+21".
func NumericEntry(text string) Entry {
	return Entry{text: text}
}

// ErrorEntry is the entry left behind by an invalid arithmetic operation.
func ErrorEntry() Entry {
	return Entry{invalid: true}
}

// ZeroEntry is the default entry.
func ZeroEntry() Entry {
	return NumericEntry("0")
}

func (e Entry) IsError() bool { return e.invalid }

// Text returns the literal entry text, ErrorText for the Error variant.
func (e Entry) Text() string {
	if e.invalid {
		return ErrorText
	}
	return e.text
}

// Value parses the entry. Error and unparsable text yield NaN.
func (e Entry) Value() float64 {
	if e.invalid {
		return math.NaN()
	}
	return ParseNumber(e.text)
}

func (e Entry) HasPoint() bool {
	return !e.invalid && strings.Contains(e.text, ".")
}

func (e Entry) Len() int {
	return len(e.Text())
}

// ParseNumber converts entry text to a float. Overflowing exponents
// saturate to ±Inf; anything else unparsable is NaN.
func ParseNumber(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}
