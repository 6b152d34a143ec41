package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is the result of normalising a monetary cell. Value is always a
// finite float64 in dollars. Defaulted reports that the input could not be
// used and Value was forced to zero; Absent narrows that down to a missing
// or blank cell as opposed to a malformed one.
type Amount struct {
	Value     float64
	Defaulted bool
	Absent    bool
}

var amountReplacer = strings.NewReplacer("$", "", ",", "", " ", "")

// ParseAmount converts a spreadsheet cell into dollars. It never fails:
// anything that cannot be interpreted yields 0.
func ParseAmount(v any) float64 {
	return ParseAmountResult(v).Value
}

// ParseAmountResult is ParseAmount with the degradation made explicit.
// Numbers pass through unchanged. Strings are trimmed, stripped of "$"
// and "," and parsed; an accounting style "(1,234.56)" is read as negative.
func ParseAmountResult(v any) Amount {
	switch n := v.(type) {
	case nil:
		return Amount{Defaulted: true, Absent: true}
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return Amount{Value: float64(n)}
	case int8:
		return Amount{Value: float64(n)}
	case int16:
		return Amount{Value: float64(n)}
	case int32:
		return Amount{Value: float64(n)}
	case int64:
		return Amount{Value: float64(n)}
	case uint:
		return Amount{Value: float64(n)}
	case uint8:
		return Amount{Value: float64(n)}
	case uint16:
		return Amount{Value: float64(n)}
	case uint32:
		return Amount{Value: float64(n)}
	case uint64:
		return Amount{Value: float64(n)}
	case decimal.Decimal:
		f, _ := n.Float64()
		return finite(f)
	case string:
		return parseAmountString(n)
	case fmt.Stringer:
		return parseAmountString(n.String())
	default:
		return Amount{Defaulted: true}
	}
}

func parseAmountString(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{Defaulted: true, Absent: true}
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = amountReplacer.Replace(s)
	if s == "" || s == "-" || s == "+" {
		return Amount{Defaulted: true}
	}

	var f float64
	if d, err := decimal.NewFromString(s); err == nil {
		f, _ = d.Float64()
	} else {
		pf, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			return Amount{Defaulted: true}
		}
		f = pf
	}
	if negative {
		f = -f
	}
	return finite(f)
}

func finite(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{Defaulted: true}
	}
	return Amount{Value: f}
}

// FormatAmount renders an amount the way the source sheets do, e.g.
// "-$1,234.56". ParseAmount(FormatAmount(x)) == x to the cent.
func FormatAmount(f float64) string {
	d := decimal.NewFromFloat(f).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole := d.Truncate(0).String()
	frac := d.Sub(d.Truncate(0)).Shift(2).Round(0).IntPart()

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s$%s.%02d", sign, b.String(), frac)
}
