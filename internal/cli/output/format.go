package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/saju/pkg/ganji"
)

// FormatHeader formats a markdown header.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue formats a markdown key/value bullet.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s**: %s", key, value)
}

// ElementLabel returns "목 (Wood)" style labels.
func ElementLabel(e ganji.Element) string {
	return fmt.Sprintf("%s (%s)", e, cases.Title(language.English).String(e.English()))
}

// YesNo formats a boolean for tables and key/value lines.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
