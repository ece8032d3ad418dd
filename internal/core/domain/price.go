package domain

import (
	"github.com/SscSPs/order_book_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ReciprocalPrecision is the number of significant digits kept when inverting
// a price. Small reciprocals never keep fewer than this many decimal places.
const ReciprocalPrecision int32 = 34

var one = decimal.NewFromInt(1)

// Reciprocal returns 1/price rounded to ReciprocalPrecision significant digits.
func Reciprocal(price decimal.Decimal) (decimal.Decimal, error) {
	if !price.IsPositive() {
		return decimal.Zero, apperrors.NewInvalidPrice()
	}

	// price has intDigits digits before the point, so 1/price starts at
	// decimal place intDigits.
	intDigits := int32(price.NumDigits()) + price.Exponent()
	places := max(ReciprocalPrecision+intDigits-1, ReciprocalPrecision)

	r := one.DivRound(price, places)
	if !r.IsPositive() {
		return decimal.Zero, apperrors.NewInvalidPrice()
	}
	return r, nil
}

// MatchThreshold is the lowest effective price a resting order in the
// opposite canonical book may carry and still trade with an incoming order.
// It equals Reciprocal(canonical price); for SELL orders the canonical price
// is already a reciprocal, so the requested price is returned unchanged to
// avoid compounding rounding.
func MatchThreshold(side Side, price decimal.Decimal) (decimal.Decimal, error) {
	if side == SideSell {
		if !price.IsPositive() {
			return decimal.Zero, apperrors.NewInvalidPrice()
		}
		return price, nil
	}
	return Reciprocal(price)
}
