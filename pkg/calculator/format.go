package calculator

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/mamaar/gocalc/pkg/types"
)

// NumberToString renders v the way entries are stored: the shortest decimal
// that round-trips, in plain notation for 1e-7 <= |v| < 1e21 and exponent
// notation ("1e+21", "1.5e-7") outside that range.
func NumberToString(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// d.ddde±XX
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	e, _ := strconv.Atoi(exp)

	k := len(digits)
	n := e + 1 // position of the decimal point relative to digits

	var out string
	switch {
	case k <= n && n <= 21:
		out = digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		out = digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		out = "0." + strings.Repeat("0", -n) + digits
	default:
		expSign := "+"
		if n-1 < 0 {
			expSign = "-"
		}
		exponent := strconv.Itoa(abs(n - 1))
		if k == 1 {
			out = digits + "e" + expSign + exponent
		} else {
			out = digits[:1] + "." + digits[1:] + "e" + expSign + exponent
		}
	}
	return sign + out
}

// FormatForDisplay fits an entry into the default 12 character display.
func FormatForDisplay(entry string) string {
	return FormatWidth(entry, DefaultDisplayWidth)
}

// FormatWidth fits entry text into width characters:
//
//   - "Error" is returned unchanged.
//   - Text longer than width, or text that is not a finite number, is rounded
//     to width significant digits and re-rendered. If that is still too long
//     it is cut to width characters, which may leave a trailing point.
//   - Trailing zeros after a decimal point are removed, and the point too
//     when nothing follows it.
func FormatWidth(entry string, width int) string {
	if entry == types.ErrorText {
		return entry
	}

	text := entry
	num := types.ParseNumber(text)
	if len(text) > width || !isFinite(num) {
		if isFinite(num) {
			text = NumberToString(roundSignificant(num, width))
			if len(text) > width {
				text = text[:width]
			}
		}
	}

	return trimFraction(text)
}

// trimFraction removes a run of trailing zeros, plus the point immediately
// before it, from text containing a decimal point. "3.00" -> "3", "3.50" -> "3.5",
// "10." stays "10.".
func trimFraction(text string) string {
	if !strings.Contains(text, ".") {
		return text
	}
	trimmed := strings.TrimRight(text, "0")
	if trimmed == text {
		return text
	}
	return strings.TrimSuffix(trimmed, ".")
}

// exactDigits is enough decimal digits to print any float64 exactly.
const exactDigits = 800

// roundSignificant rounds v to digits significant digits, with ties going
// away from zero.
func roundSignificant(v float64, digits int) float64 {
	if v == 0 || !isFinite(v) {
		return v
	}
	neg := v < 0
	if neg {
		v = -v
	}

	sci := new(big.Float).SetFloat64(v).Text('e', exactDigits)
	mantissa, exp, _ := strings.Cut(sci, "e")
	ds := []byte(strings.Replace(mantissa, ".", "", 1))
	e, _ := strconv.Atoi(exp)

	if len(ds) > digits {
		up := ds[digits] >= '5'
		ds = ds[:digits]
		if up {
			i := len(ds) - 1
			for ; i >= 0 && ds[i] == '9'; i-- {
				ds[i] = '0'
			}
			if i < 0 {
				ds = append([]byte{'1'}, ds[:len(ds)-1]...)
				e++
			} else {
				ds[i]++
			}
		}
	}

	text := string(ds[:1]) + "." + string(ds[1:]) + "e" + strconv.Itoa(e)
	r := types.ParseNumber(text)
	if neg {
		r = -r
	}
	return r
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
