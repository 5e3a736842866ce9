package services

import (
	"errors"
	"testing"
)

func TestConvert(t *testing.T) {
	rates := Rates{"AUD": 1.0, "USD": 1.52, "GBP": 1.92}

	tests := []struct {
		name   string
		amount float64
		from   string
		to     string
		want   float64
	}{
		{"base_to_usd", 100, "AUD", "USD", 65.789474},
		{"usd_to_base", 100, "USD", "AUD", 152},
		{"cross_usd_gbp", 100, "USD", "GBP", 79.166667},
		{"zero_amount", 0, "AUD", "USD", 0},
		{"negative_amount", -50, "USD", "AUD", -76},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.amount, tt.from, tt.to, rates)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !floatClose(got, tt.want) {
				t.Errorf("Convert(%v, %s, %s) = %f, want %f", tt.amount, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvert_IdentityIsExact(t *testing.T) {
	rates := Rates{"AUD": 1.0, "USD": 1.52}

	// Same-currency conversion must return the amount bit-for-bit, not
	// multiply and divide by the rate.
	got, err := Convert(123.456789, "USD", "USD", rates)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got != 123.456789 {
		t.Errorf("identity conversion = %v, want exactly 123.456789", got)
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	rates := Rates{"AUD": 1.0, "USD": 1.52, "EUR": 1.65}

	usd, err := Convert(1000, "EUR", "USD", rates)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	back, err := Convert(usd, "USD", "EUR", rates)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !floatClose(back, 1000) {
		t.Errorf("round trip = %f, want 1000", back)
	}
}

func TestConvert_UnknownCurrency(t *testing.T) {
	rates := Rates{"AUD": 1.0}

	tests := []struct {
		name string
		from string
		to   string
	}{
		{"unknown_from", "JPY", "AUD"},
		{"unknown_to", "AUD", "JPY"},
		{"unknown_identity", "JPY", "JPY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(100, tt.from, tt.to, rates)
			if !errors.Is(err, ErrUnknownCurrency) {
				t.Errorf("Convert(%s, %s) error = %v, want ErrUnknownCurrency", tt.from, tt.to, err)
			}
		})
	}
}
