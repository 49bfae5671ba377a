package sanitizer

import (
	"reflect"
	"testing"
)

func TestNormalizeLanguages(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"nil", nil, []string{}},
		{"empty", []string{}, []string{}},
		{"canonical kept", []string{"English", "Arabic"}, []string{"English", "Arabic"}},
		{"case folded", []string{"english", "ENGLISH", "English"}, []string{"English"}},
		{"empties dropped", []string{"", " ", "Russian"}, []string{"Russian"}},
		{"order preserved", []string{"russian", "english", "arabic"}, []string{"Russian", "English", "Arabic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLanguages(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("NormalizeLanguages(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
