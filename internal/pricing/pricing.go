package pricing

import (
	"github.com/shopspring/decimal"
)

// LongStayDays is the stay length from which the discount rate applies.
const LongStayDays = 14

// VATRate is added on top of the discounted subtotal plus the processing fee.
var VATRate = decimal.RequireFromString("0.15")

// Quote is the price of one stay. Amounts are not rounded.
type Quote struct {
	Days     int
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Fee      decimal.Decimal
	VAT      decimal.Decimal
	Total    decimal.Decimal
}

// DiscountEarned reports whether the long-stay discount was applied.
func (q Quote) DiscountEarned() bool {
	return q.Discount.IsPositive()
}

// CalculateTotal returns the final total and the discount amount for a stay
// of days nights. days >= 1 is a precondition.
func CalculateTotal(days int, processingFee, nightlyRate, discountRate decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	q := Calculate(days, processingFee, nightlyRate, discountRate)

	return q.Total, q.Discount
}

func Calculate(days int, processingFee, nightlyRate, discountRate decimal.Decimal) Quote {
	subtotal := nightlyRate.Mul(decimal.NewFromInt(int64(days)))

	discount := decimal.Zero
	if days >= LongStayDays {
		discount = subtotal.Mul(discountRate)
		subtotal = subtotal.Sub(discount)
	}

	withFee := subtotal.Add(processingFee)
	vat := withFee.Mul(VATRate)

	return Quote{
		Days:     days,
		Subtotal: subtotal,
		Discount: discount,
		Fee:      processingFee,
		VAT:      vat,
		Total:    withFee.Add(vat),
	}
}
