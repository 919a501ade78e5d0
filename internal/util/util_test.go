package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{name: "plus prefix", phone: "+79161234567", expected: "79161234567"},
		{name: "dashes and spaces", phone: "+7 916 123-45-67", expected: "79161234567"},
		{name: "already normalized", phone: "79161234567", expected: "79161234567"},
		{name: "empty", phone: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizePhone(tt.phone); got != tt.expected {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.phone, got, tt.expected)
			}
		})
	}
}

func TestFormatGroupedAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "under one thousand", amount: "950", expected: "950"},
		{name: "thousands", amount: "15000", expected: "15,000"},
		{name: "millions", amount: "1234567", expected: "1,234,567"},
		{name: "rounds fractions", amount: "1234567.80", expected: "1,234,568"},
		{name: "zero", amount: "0", expected: "0"},
		{name: "negative", amount: "-15000", expected: "-15,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			amount, err := decimal.NewFromString(tt.amount)
			if err != nil {
				t.Fatalf("decimal.NewFromString(%q) failed: %v", tt.amount, err)
			}

			if got := FormatGroupedAmount(amount); got != tt.expected {
				t.Fatalf("FormatGroupedAmount(%s) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}
