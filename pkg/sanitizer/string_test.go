package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Sunset Wakeboarding", "Sunset Wakeboarding"},
		{"leading and trailing spaces", "  Dubai Marina  ", "Dubai Marina"},
		{"internal runs collapse", "Deep   Sea\tFishing", "Deep Sea Fishing"},
		{"empty", "", ""},
		{"only whitespace", "   \t\n ", ""},
		{"unicode preserved", "Капитан  Миша", "Капитан Миша"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.expected {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrimAndNormalize_Idempotent(t *testing.T) {
	input := "  Pro   Wake Training "
	once := TrimAndNormalize(input)
	twice := TrimAndNormalize(once)
	if once != twice {
		t.Errorf("not idempotent: %q vs %q", once, twice)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"russian", "Russian"},
		{"RUSSIAN", "Russian"},
		{" English ", "English"},
		{"arabic", "Arabic"},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeLanguage(tt.input); got != tt.expected {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeImageURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"https preserved", "https://images.example.com/boat.jpg", "https://images.example.com/boat.jpg"},
		{"http upgraded", "http://images.example.com/boat.jpg", "https://images.example.com/boat.jpg"},
		{"scheme added", "images.example.com/boat.jpg", "https://images.example.com/boat.jpg"},
		{"host lowercased", "https://Images.Example.COM/boat.jpg", "https://images.example.com/boat.jpg"},
		{"utm stripped", "https://images.example.com/boat.jpg?utm_source=app&w=600", "https://images.example.com/boat.jpg?w=600"},
		{"empty", "", ""},
		{"garbage", "://", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeImageURL(tt.input); got != tt.expected {
				t.Errorf("NormalizeImageURL(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
