// Package format renders numeric values as strings with locale-correct
// grouping and decimal separators. Formatting is a pure function of the
// value and an explicit Policy; there is no process-wide formatting state.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Policy holds the separator conventions for one rendering. The zero value
// is the neutral policy: no grouping, "." as the decimal separator.
type Policy struct {
	Group   string
	Decimal string
}

var (
	// US groups with "," and uses "." for decimals ("50,000.5").
	US = PolicyFor("en-US")

	// Indonesian groups with "." and uses "," for decimals ("799.000.000").
	Indonesian = PolicyFor("id")

	// Neutral renders without grouping.
	Neutral = Policy{Decimal: "."}
)

// PolicyFor builds a policy from a BCP 47 tag. The separators are taken
// from the locale data shipped with x/text, so the policy never encodes a
// convention by hand. An unresolvable tag falls back to the neutral policy
// instead of failing the request.
func PolicyFor(tag string) Policy {
	t, err := language.Parse(tag)
	if err != nil {
		return Neutral
	}
	return policyFromLocale(message.NewPrinter(t))
}

// policyFromLocale extracts the group and decimal separators by rendering a
// value large enough to force grouping: the first non-digit run is the group
// separator, the last one is the decimal separator.
func policyFromLocale(p *message.Printer) Policy {
	probe := p.Sprintf("%v", number.Decimal(1234567.5,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	))

	var runs []string
	var run strings.Builder
	for _, r := range probe {
		if r >= '0' && r <= '9' {
			if run.Len() > 0 {
				runs = append(runs, run.String())
				run.Reset()
			}
			continue
		}
		run.WriteRune(r)
	}

	switch len(runs) {
	case 0:
		return Policy{Decimal: "."}
	case 1:
		// no grouping in this locale
		return Policy{Decimal: runs[0]}
	default:
		return Policy{Group: runs[0], Decimal: runs[len(runs)-1]}
	}
}

// Decimal renders v with exactly places fractional digits under p. The
// output is built from the decimal's own digits, so upstream precision is
// preserved at any magnitude. places is clamped to [0, 10].
func Decimal(v decimal.Decimal, places int, p Policy) string {
	if places < 0 {
		places = 0
	}
	if places > 10 {
		places = 10
	}

	s := v.StringFixed(int32(places))

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	dec := p.Decimal
	if dec == "" {
		dec = "."
	}

	var sb strings.Builder
	sb.WriteString(sign)
	sb.WriteString(groupDigits(intPart, p.Group))
	if fracPart != "" {
		sb.WriteString(dec)
		sb.WriteString(fracPart)
	}
	return sb.String()
}

// groupDigits inserts sep between every three digits, counting from the
// right. An empty separator leaves the digits untouched.
func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
