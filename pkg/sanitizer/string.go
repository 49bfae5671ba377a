package sanitizer

import (
	"strings"
	"unicode"
)

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeTitle(title string) string {
	return TrimAndNormalize(title)
}

func NormalizeLocation(location string) string {
	return TrimAndNormalize(location)
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeLanguage produces the canonical form used for captain language
// sets and language filters: whitespace-normalized and title-cased, so
// "russian", "RUSSIAN" and " Russian " all store and match as "Russian".
func NormalizeLanguage(language string) string {
	normalized := strings.ToLower(TrimAndNormalize(language))
	if normalized == "" {
		return ""
	}

	runes := []rune(normalized)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
