package sanitizer

func NormalizeStringSlice(items []string, normalizer func(string) string) []string {
	if len(items) == 0 {
		return []string{}
	}

	seen := make(map[string]bool)
	result := make([]string, 0, len(items))

	for _, item := range items {
		normalized := normalizer(item)
		if normalized == "" {
			continue
		}
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		result = append(result, normalized)
	}

	return result
}

// NormalizeLanguages canonicalizes a captain's spoken-language set: each
// entry normalized, duplicates and empties dropped, first-seen order kept.
func NormalizeLanguages(languages []string) []string {
	return NormalizeStringSlice(languages, NormalizeLanguage)
}
