package bot

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

var printer = message.NewPrinter(language.English)

var bracketedTag = regexp.MustCompile(`\[[^\]]*\]`)

// FormatNum renders a number with a comma every three digits of its integer
// part. Anything that is not a finite number renders as "0"
func FormatNum(value any) string {
	switch v := value.(type) {
	case nil:
		return "0"
	case int:
		return printer.Sprintf("%d", v)
	case int8:
		return printer.Sprintf("%d", v)
	case int16:
		return printer.Sprintf("%d", v)
	case int32:
		return printer.Sprintf("%d", v)
	case int64:
		return printer.Sprintf("%d", v)
	case uint:
		return printer.Sprintf("%d", v)
	case uint8:
		return printer.Sprintf("%d", v)
	case uint16:
		return printer.Sprintf("%d", v)
	case uint32:
		return printer.Sprintf("%d", v)
	case uint64:
		return printer.Sprintf("%d", v)
	case float32:
		return formatFloat(float64(v))
	case float64:
		return formatFloat(v)
	case *int:
		if v == nil {
			return "0"
		}
		return FormatNum(*v)
	case *float64:
		if v == nil {
			return "0"
		}
		return FormatNum(*v)
	case json.Number:
		return FormatNum(string(v))
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return FormatNum(i)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return FormatNum(f)
		}
		return "0"
	default:
		return "0"
	}
}

func formatFloat(v float64) string {

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// The fractional part is kept as is
	digits := strconv.FormatFloat(v, 'f', -1, 64)
	integer, fraction, hasFraction := strings.Cut(digits, ".")

	var grouped string
	if v < math.MaxInt64 {
		grouped = printer.Sprintf("%d", int64(math.Trunc(v)))
	} else {
		grouped = groupDigits(integer)
	}

	if hasFraction {
		return sign + grouped + "." + fraction
	}
	return sign + grouped
}

// Used for magnitudes that do not fit in an int64
func groupDigits(digits string) string {
	var builder strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.UTC().Format(dateLayout)
}

// Remove every [tag] from a server name
func CleanServerName(name string) string {
	return strings.TrimSpace(bracketedTag.ReplaceAllString(name, ""))
}

func FormatGameMode(id string) string {
	return strings.TrimSpace(strings.ReplaceAll(id, "_", " "))
}

// Cut text to at most limit runes, marking the cut with an ellipsis
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit-1]) + "…"
}
