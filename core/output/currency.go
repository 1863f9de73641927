package output

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"fabric-price/core/types"
)

// nbsp separates the amount from the currency symbol, as vi-VN does
const nbsp = "\u00a0"

// FormatNumber renders d with vi-VN grouping and no decimals: 50820 -> "50.820".
func FormatNumber(d decimal.Decimal) string {
	return humanize.FormatFloat("#.###,", d.Round(0).InexactFloat64())
}

// FormatVND renders d as vi-VN currency: 50820 -> "50.820 ₫".
func FormatVND(d decimal.Decimal) string {
	return FormatNumber(d) + nbsp + "₫"
}

// FormatUSD renders d with two decimals: 2.152 -> "$2.15".
func FormatUSD(d decimal.Decimal) string {
	return "$" + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// FormatAmount renders d in its currency
func FormatAmount(d decimal.Decimal, c types.Currency) string {
	if c == types.CurrencyUSD {
		return FormatUSD(d)
	}
	return FormatVND(d)
}

// FormatPerKg renders a per-kg amount: "145.200 VND/kg"
func FormatPerKg(d decimal.Decimal, c types.Currency) string {
	if c == types.CurrencyUSD {
		return FormatUSD(d) + "/kg"
	}
	return FormatNumber(d) + " VND/kg"
}
