package domain

import (
	"sort"

	"github.com/SscSPs/order_book_app/internal/apperrors"
)

// Currency is a recognized 3-letter currency code (e.g. "BTC").
type Currency string

// Supported currencies.
const (
	BTC Currency = "BTC"
	ETH Currency = "ETH"
	XRP Currency = "XRP"
	LTC Currency = "LTC"
	SOL Currency = "SOL"
	ZAR Currency = "ZAR"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

type currencyInfo struct {
	symbol string
	name   string
}

var knownCurrencies = map[Currency]currencyInfo{
	BTC: {symbol: "₿", name: "Bitcoin"},
	ETH: {symbol: "Ξ", name: "Ether"},
	XRP: {symbol: "XRP", name: "XRP"},
	LTC: {symbol: "Ł", name: "Litecoin"},
	SOL: {symbol: "◎", name: "Solana"},
	ZAR: {symbol: "R", name: "South African Rand"},
	USD: {symbol: "$", name: "US Dollar"},
	EUR: {symbol: "€", name: "Euro"},
	GBP: {symbol: "£", name: "Pound Sterling"},
}

// ParseCurrency resolves a 3-letter code. Matching is case-sensitive.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if _, ok := knownCurrencies[c]; !ok {
		return "", apperrors.NewCurrencyNotRecognized(code)
	}
	return c, nil
}

// SupportedCurrencies returns every recognized currency ordered by code.
func SupportedCurrencies() []Currency {
	out := make([]Currency, 0, len(knownCurrencies))
	for c := range knownCurrencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Code returns the 3-letter code.
func (c Currency) Code() string { return string(c) }

// Symbol returns the display symbol, or the code for unknown values.
func (c Currency) Symbol() string {
	if info, ok := knownCurrencies[c]; ok {
		return info.symbol
	}
	return string(c)
}

// Name returns the human readable name.
func (c Currency) Name() string {
	if info, ok := knownCurrencies[c]; ok {
		return info.name
	}
	return string(c)
}
