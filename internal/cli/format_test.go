package cli

import (
	"testing"

	"stucash/internal/model"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   model.Money
		want string
	}{
		{0, "$0"},
		{1_00, "$1"},
		{1234_56, "$1,235"},
		{1_234_567_00, "$1,234,567"},
		{-850_00, "-$850"},
	}

	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want model.Money
	}{
		{"1234", 1234_00},
		{"$1,234.50", 1234_50},
		{"  850 ", 850_00},
		{"-120", -120_00},
		{"not a number", 0}, // malformed input maps to zero, not an error
		{"", 0},
	}

	for _, tc := range cases {
		if got := ParseMoney(tc.in); got != tc.want {
			t.Errorf("ParseMoney(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	if got := FormatRatio(nil); got != "n/a" {
		t.Errorf("nil ratio = %q, want n/a", got)
	}
	r := 0.35
	if got := FormatRatio(&r); got != "35.0%" {
		t.Errorf("ratio = %q, want 35.0%%", got)
	}
}

func TestFormatYears(t *testing.T) {
	if got := FormatYears(model.PayoffHorizon{NeverPaysOff: true}); got != "never (contribution below interest)" {
		t.Errorf("divergent horizon = %q", got)
	}
	if got := FormatYears(model.PayoffHorizon{Years: 4.1667}); got != "4.2 years" {
		t.Errorf("horizon = %q, want 4.2 years", got)
	}
	if got := FormatYears(model.PayoffHorizon{}); got != "0 years" {
		t.Errorf("zero horizon = %q, want 0 years", got)
	}
}
