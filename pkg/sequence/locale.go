package sequence

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultDecimalSeparator is used when no locale is configured.
const DefaultDecimalSeparator = "."

// DecimalSeparator returns the decimal separator numbers are written with
// in the given locale.
func DecimalSeparator(tag language.Tag) string {
	p := message.NewPrinter(tag)
	r := []rune(p.Sprintf("%.1f", 0.5))
	if len(r) < 3 {
		return DefaultDecimalSeparator
	}
	return string(r[1 : len(r)-1])
}

// LocaleDecimalSeparator parses a BCP 47 tag such as "de-DE" and returns its
// decimal separator. An empty tag yields DefaultDecimalSeparator.
func LocaleDecimalSeparator(locale string) (string, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return DefaultDecimalSeparator, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("invalid locale '%s': %w", locale, err)
	}
	return DecimalSeparator(tag), nil
}
