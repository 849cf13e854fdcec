package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// isBuiltInDateFormat reports whether a built-in number format id is a
// date, time or elapsed-time format. 27-36 and 50-58 are the CJK locale
// date formats.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom number format code renders
// its value as a date or time.
func isDateFormatCode(code string) bool {
	// Only the first section decides; later ones format negatives, zero
	// and text.
	var (
		inQuote bool
		escaped bool
	)
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case escaped:
			escaped = false
			continue
		case inQuote:
			if c == '"' {
				inQuote = false
			}
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '"':
			inQuote = true
		case ';':
			return false
		case '_', '*':
			// Padding and fill take the next character literally.
			i++
		case '[':
			end := strings.IndexByte(code[i:], ']')
			if end < 0 {
				return false
			}
			switch strings.ToLower(code[i+1 : i+end]) {
			case "h", "hh", "m", "mm", "s", "ss":
				return true
			}
			i += end
		case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
			return true
		case 'g', 'G':
			if strings.HasPrefix(strings.ToLower(code[i:]), "general") {
				i += len("general") - 1
			}
		}
	}
	return false
}

// isDateStyle reports whether an excelize style formats numbers as dates.
func isDateStyle(style *excelize.Style) bool {
	if style == nil {
		return false
	}
	if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}
