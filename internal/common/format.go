package common

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatUnits renders a point or mile count with thousands separators.
func FormatUnits(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

// FormatMoney renders a dollar amount with thousands separators and cents.
func FormatMoney(amount float64) string {
	return numberPrinter.Sprintf("$%.2f", amount)
}
