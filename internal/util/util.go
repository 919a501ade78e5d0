package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizePhone strips the formatting characters commonly found in
// user-entered phone numbers. SMS gateways expect digits only.
func NormalizePhone(phone string) string {
	replacer := strings.NewReplacer("+", "", "-", "", " ", "")

	return replacer.Replace(phone)
}

// FormatGroupedAmount renders a monetary amount with comma thousands
// separators and no decimal places, e.g. 1234567.80 -> "1,234,568".
func FormatGroupedAmount(amount decimal.Decimal) string {
	rounded := amount.Round(0).StringFixed(0)

	negative := strings.HasPrefix(rounded, "-")
	digits := strings.TrimPrefix(rounded, "-")

	var grouped strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	if negative {
		return "-" + grouped.String()
	}

	return grouped.String()
}
