package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{50_000_000, "$50,000,000"},
		{27_500_000.4, "$27,500,000"},
		{-1_200_000, "-$1,200,000"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoneyCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{27_500_000, "$27.5M"},
		{1_250_000_000, "$1.25B"},
		{950_000, "$950.0K"},
		{42, "$42"},
		{-22_000_000, "-$22.0M"},
	}
	for _, tt := range tests {
		if got := FormatMoneyCompact(tt.in); got != tt.want {
			t.Errorf("FormatMoneyCompact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-5000, "-5,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSignedPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.5, "+2.5%"},
		{-0.8, "-0.8%"},
		{0, "0.0%"},
		{0.01, "0.0%"}, // below display resolution
	}
	for _, tt := range tests {
		if got := FormatSignedPercent(tt.in); got != tt.want {
			t.Errorf("FormatSignedPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoneyDelta(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1_500_000, "+$1,500,000"},
		{-400_000, "-$400,000"},
		{0, "$0"},
		{0.2, "$0"},
	}
	for _, tt := range tests {
		if got := FormatMoneyDelta(tt.in); got != tt.want {
			t.Errorf("FormatMoneyDelta(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderAllocationBar(t *testing.T) {
	bar := RenderAllocationBar(15, 15, 30, 20)
	if len([]rune(bar)) != 20 {
		t.Fatalf("bar width = %d, want 20", len([]rune(bar)))
	}

	empty := RenderAllocationBar(10, 10, 0, 20)
	if empty != "" {
		t.Errorf("zero max should render empty, got %q", empty)
	}

	over := RenderAllocationBar(50, 15, 30, 20)
	if len([]rune(over)) != 20 {
		t.Errorf("overflow bar width = %d, want clamped to 20", len([]rune(over)))
	}
}
