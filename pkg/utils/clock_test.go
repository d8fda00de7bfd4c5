package utils

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"06:30", 390},
		{"15:04", 904},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if err != nil {
			t.Errorf("ParseClock(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "-1:30", "12:3x", "12:30:00"} {
		if _, err := ParseClock(in); err == nil {
			t.Errorf("ParseClock(%q) returned nil error", in)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{390, "06:30"},
		{1439, "23:59"},
		{1440, "00:00"},
		{-30, "23:30"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.in); got != tc.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
