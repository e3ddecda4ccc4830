// Package format holds the display helpers shared by every view: escaping,
// money, numbers, dates and the email check.
package format

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CurrencySymbol = "₱"
	NotAvailable   = "N/A"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes text for inclusion in markup. Empty text renders as N/A.
func EscapeHTML(text string) string {
	if text == "" {
		return NotAvailable
	}
	return htmlEscaper.Replace(text)
}

// FormatCurrency renders amount as pesos with two decimals and comma grouping.
func FormatCurrency(amount float64) string {
	return FormatMoney(decimal.NewFromFloat(amount))
}

func FormatMoney(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + CurrencySymbol + groupThousands(intPart) + "." + frac
}

// FormatNumber renders n with comma grouping and at most three fraction
// digits, trailing zeros dropped.
func FormatNumber(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}
	s := strconv.FormatFloat(n, 'f', 3, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	frac = strings.TrimRight(frac, "0")
	out := groupThousands(intPart)
	if frac != "" {
		out += "." + frac
	}
	if sign != "" && strings.Trim(out, "0.,") == "" {
		sign = ""
	}
	return sign + out
}

func FormatInt(n int) string {
	return FormatNumber(float64(n))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123,
	time.RFC1123Z,
	"January 02, 2006 (03:04 PM)",
	"2006-01-02",
}

// DisplayDateLayout matches the en-US short date with 2-digit time.
const DisplayDateLayout = "Jan 2, 2006, 03:04 PM"

// FormatDate reformats a backend date string for display. Unknown formats
// are returned unchanged.
func FormatDate(dateString string) string {
	if dateString == "" {
		return NotAvailable
	}
	if t, ok := ParseDate(dateString); ok {
		return t.Format(DisplayDateLayout)
	}
	return dateString
}

func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB"}

func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(fileSizeUnits) {
		i = len(fileSizeUnits) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + " " + fileSizeUnits[i]
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// EncodeURIComponent escapes s for use as one query value, spaces as %20.
func EncodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func GenerateID() string {
	return uuid.NewString()
}

// LabelColor derives a stable HSL color from a label using the browser's
// 32-bit string hash so charts keep the colors users already know.
func LabelColor(label string) string {
	var hash int64
	for _, unit := range utf16.Encode([]rune(label)) {
		shifted := int64(int32(uint32(hash) << 5))
		hash = int64(unit) + shifted - hash
	}
	return fmt.Sprintf("hsl(%d,70%%,60%%)", hash%360)
}
