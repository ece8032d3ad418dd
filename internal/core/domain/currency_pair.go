package domain

import (
	"github.com/SscSPs/order_book_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const pairCodeLength = 6

// CurrencyPair is an ordered (base, quote) pair. (A,B) and (B,A) are
// distinct book keys describing inverse markets.
type CurrencyPair struct {
	Base  Currency `json:"base"`
	Quote Currency `json:"quote"`
}

// NewCurrencyPair builds a pair from two already recognized currencies.
func NewCurrencyPair(base, quote Currency) CurrencyPair {
	return CurrencyPair{Base: base, Quote: quote}
}

// ParsePair parses a 6-character code such as "BTCZAR".
func ParsePair(code string) (CurrencyPair, error) {
	if len(code) != pairCodeLength {
		return CurrencyPair{}, apperrors.NewInvalidPairFormat()
	}
	base, err := ParseCurrency(code[:3])
	if err != nil {
		return CurrencyPair{}, err
	}
	quote, err := ParseCurrency(code[3:])
	if err != nil {
		return CurrencyPair{}, err
	}
	return CurrencyPair{Base: base, Quote: quote}, nil
}

// Reverse swaps base and quote.
func (p CurrencyPair) Reverse() CurrencyPair {
	return CurrencyPair{Base: p.Quote, Quote: p.Base}
}

// String renders the pair as its 6-character code.
func (p CurrencyPair) String() string {
	return string(p.Base) + string(p.Quote)
}

// Family returns the orientation of p whose base sorts first. A pair and its
// reverse share the same family.
func (p CurrencyPair) Family() CurrencyPair {
	if p.Quote < p.Base {
		return p.Reverse()
	}
	return p
}

// Canonicalize maps a limit order onto its BUY-equivalent: a SELL of pair at
// price is a BUY of the reversed pair at the reciprocal price.
func Canonicalize(side Side, pair CurrencyPair, price decimal.Decimal) (CurrencyPair, decimal.Decimal, error) {
	if side == SideBuy {
		if !price.IsPositive() {
			return CurrencyPair{}, decimal.Zero, apperrors.NewInvalidPrice()
		}
		return pair, price, nil
	}
	reciprocal, err := Reciprocal(price)
	if err != nil {
		return CurrencyPair{}, decimal.Zero, err
	}
	return pair.Reverse(), reciprocal, nil
}
