package pricing

import "testing"

func f(v float64) *float64 { return &v }

func TestCalculator_CustomerPrice(t *testing.T) {
	c := NewCalculator(0.45, "USD")

	cases := []struct {
		name   string
		vendor float64
		want   float64
	}{
		{name: "round number", vendor: 10.00, want: 14.50},
		{name: "half-up tie", vendor: 33.33, want: 48.33}, // 48.3285 -> 48.33
		{name: "zero", vendor: 0, want: 0},
		{name: "sub-cent result", vendor: 0.01, want: 0.01}, // 0.0145 -> 0.01
		{name: "registry example", vendor: 20.00, want: 29.00},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.CustomerPrice(f(tc.vendor))
			if got == nil {
				t.Fatalf("expected price, got nil")
			}
			if *got != tc.want {
				t.Fatalf("expected %.2f, got %.2f", tc.want, *got)
			}
		})
	}

	t.Run("nil in nil out", func(t *testing.T) {
		if got := c.CustomerPrice(nil); got != nil {
			t.Fatalf("expected nil, got %v", *got)
		}
	})
}

func TestCalculator_ConfiguredMarkup(t *testing.T) {
	c := NewCalculator(0.10, "eur")
	got := c.CustomerPrice(f(100))
	if got == nil || *got != 110.00 {
		t.Fatalf("expected 110.00, got %v", got)
	}
	if c.Currency() != "EUR" {
		t.Fatalf("expected currency EUR, got %s", c.Currency())
	}
}

func TestNewCalculatorFromEnv(t *testing.T) {
	t.Setenv("PRICING_MARKUP_FRACTION", "0.45")
	t.Setenv("PRICING_CURRENCY", "")
	c := NewCalculatorFromEnv()
	got := c.CustomerPrice(f(10))
	if got == nil || *got != 14.50 {
		t.Fatalf("expected 14.50, got %v", got)
	}
	if c.Currency() != "USD" {
		t.Fatalf("expected default currency USD, got %s", c.Currency())
	}

	t.Setenv("PRICING_MARKUP_FRACTION", "not-a-number")
	c = NewCalculatorFromEnv()
	got = c.CustomerPrice(f(10))
	if got == nil || *got != 14.50 {
		t.Fatalf("expected default markup fallback, got %v", got)
	}
}
