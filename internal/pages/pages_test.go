package pages

import (
	"testing"
	"time"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Минск", "Минск"},
		{"script tag", `<script>alert("xss")</script>`, "&lt;script&gt;alert(&quot;xss&quot;)&lt;/script&gt;"},
		{"ampersand", "Rock & Roll", "Rock &amp; Roll"},
		{"single quote", "O'Hara", "O&#039;Hara"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.in); got != tt.want {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTravelLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "путешествие"},
		{2, "путешествия"},
		{3, "путешествия"},
		{4, "путешествия"},
		{5, "путешествий"},
		{11, "путешествий"},
		{12, "путешествий"},
		{14, "путешествий"},
		{21, "путешествие"},
		{22, "путешествия"},
		{25, "путешествий"},
		{100, "путешествий"},
		{101, "путешествие"},
		{111, "путешествий"},
		{0, "путешествий"},
	}
	for _, tt := range tests {
		if got := TravelLabel(tt.n); got != tt.want {
			t.Errorf("TravelLabel(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestOtherLabels(t *testing.T) {
	if got := PhotoLabel(1); got != "фотография" {
		t.Errorf("PhotoLabel(1) = %q", got)
	}
	if got := PhotoLabel(3); got != "фотографии" {
		t.Errorf("PhotoLabel(3) = %q", got)
	}
	if got := PhotoLabel(12); got != "фотографий" {
		t.Errorf("PhotoLabel(12) = %q", got)
	}
	if got := LocationLabel(1); got != "локация" {
		t.Errorf("LocationLabel(1) = %q", got)
	}
	if got := LocationLabel(4); got != "локации" {
		t.Errorf("LocationLabel(4) = %q", got)
	}
	if got := LocationLabel(7); got != "локаций" {
		t.Errorf("LocationLabel(7) = %q", got)
	}
	if got := DayLabel(1); got != "день" {
		t.Errorf("DayLabel(1) = %q", got)
	}
	if got := DayLabel(2); got != "дня" {
		t.Errorf("DayLabel(2) = %q", got)
	}
	if got := DayLabel(5); got != "дней" {
		t.Errorf("DayLabel(5) = %q", got)
	}
}

func TestFormatDateRu(t *testing.T) {
	d := time.Date(2024, time.March, 8, 12, 0, 0, 0, time.UTC)
	if got := FormatDateRu(d); got != "8 марта 2024" {
		t.Errorf("FormatDateRu = %q", got)
	}
}
