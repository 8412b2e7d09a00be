package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Chic Hair Studio", want: "chic-hair-studio"},
		{in: "Bella's  Salon & Spa", want: "bella-s-salon-spa"},
		{in: "Salon 42", want: "salon-42"},
		{in: "美发沙龙", want: "mei-fa-sha-long"},
		{in: "Lily 美容院", want: "lily-mei-rong-yuan"},
		{in: "---", want: ""},
	}

	for _, tc := range tests {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateSlugSuffix(t *testing.T) {
	suffix := GenerateSlugSuffix(4)
	if len(suffix) != 4 {
		t.Fatalf("expected length 4, got %d", len(suffix))
	}
	for _, r := range suffix {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			t.Fatalf("unexpected rune %q in slug suffix", r)
		}
	}
}
