package domain_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/order_book_app/internal/apperrors"
	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePair(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    domain.CurrencyPair
		wantErr error
	}{
		{
			name: "valid pair",
			code: "BTCZAR",
			want: domain.NewCurrencyPair(domain.BTC, domain.ZAR),
		},
		{
			name: "valid reversed pair",
			code: "ZARBTC",
			want: domain.NewCurrencyPair(domain.ZAR, domain.BTC),
		},
		{
			name:    "too short",
			code:    "BTCZA",
			wantErr: apperrors.ErrInvalidPairFormat,
		},
		{
			name:    "too long",
			code:    "BTCZARX",
			wantErr: apperrors.ErrInvalidPairFormat,
		},
		{
			name:    "empty",
			code:    "",
			wantErr: apperrors.ErrInvalidPairFormat,
		},
		{
			name:    "unknown base",
			code:    "DOGZAR",
			wantErr: apperrors.ErrCurrencyNotRecognized,
		},
		{
			name:    "unknown quote",
			code:    "BTCXYZ",
			wantErr: apperrors.ErrCurrencyNotRecognized,
		},
		{
			name:    "lower case is not recognized",
			code:    "btczar",
			wantErr: apperrors.ErrCurrencyNotRecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParsePair(tt.code)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.code, got.String())
		})
	}
}

func TestParsePair_UnknownCurrencyMessage(t *testing.T) {
	_, err := domain.ParsePair("BTCXYZ")
	require.Error(t, err)

	obErr, ok := apperrors.AsOrderBookError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeCurrencyNotRecognized, obErr.Code)
	assert.Equal(t, "Currency XYZ not found", obErr.Message)
}

func TestCurrencyPair_ReverseAndFamily(t *testing.T) {
	pair := domain.NewCurrencyPair(domain.ZAR, domain.BTC)

	assert.Equal(t, domain.NewCurrencyPair(domain.BTC, domain.ZAR), pair.Reverse())
	assert.Equal(t, pair, pair.Reverse().Reverse())
	assert.NotEqual(t, pair, pair.Reverse())
	assert.Equal(t, pair.Family(), pair.Reverse().Family())
	assert.Equal(t, domain.BTC, pair.Family().Base)
}

func TestReciprocal(t *testing.T) {
	got, err := domain.Reciprocal(decimal.NewFromInt(2000))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.0005").Equal(got), "got %s", got)

	got, err = domain.Reciprocal(decimal.NewFromFloat(2.3))
	require.NoError(t, err)
	assert.Equal(t, "0.4347826087", got.StringFixed(10))

	_, err = domain.Reciprocal(decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPrice)

	_, err = domain.Reciprocal(decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, apperrors.ErrInvalidPrice)
}

func TestReciprocal_KeepsSignificantDigitsForLargePrices(t *testing.T) {
	got, err := domain.Reciprocal(decimal.RequireFromString("3e20"))
	require.NoError(t, err)
	want := decimal.RequireFromString("0." + strings.Repeat("0", 20) + strings.Repeat("3", 34))
	assert.True(t, want.Equal(got), "got %s", got)
	assert.Equal(t, 34, got.NumDigits())

	got, err = domain.Reciprocal(decimal.RequireFromString("1905"))
	require.NoError(t, err)
	assert.Equal(t, 34, got.NumDigits())

	got, err = domain.Reciprocal(decimal.RequireFromString("1e40"))
	require.NoError(t, err)
	assert.True(t, got.IsPositive())
	assert.True(t, decimal.RequireFromString("1e-40").Equal(got), "got %s", got)

	got, err = domain.Reciprocal(decimal.RequireFromString("7e60"))
	require.NoError(t, err)
	assert.True(t, got.IsPositive())
	assert.Equal(t, 34, got.NumDigits())
}

func TestCanonicalize(t *testing.T) {
	btcZar := domain.NewCurrencyPair(domain.BTC, domain.ZAR)

	pair, price, err := domain.Canonicalize(domain.SideBuy, btcZar, decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.Equal(t, btcZar, pair)
	assert.True(t, decimal.NewFromInt(4).Equal(price))

	pair, price, err = domain.Canonicalize(domain.SideSell, btcZar, decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.Equal(t, btcZar.Reverse(), pair)
	assert.True(t, decimal.RequireFromString("0.25").Equal(price))

	_, _, err = domain.Canonicalize(domain.SideBuy, btcZar, decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPrice)

	_, _, err = domain.Canonicalize(domain.SideSell, btcZar, decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPrice)
}

func TestMatchThreshold(t *testing.T) {
	got, err := domain.MatchThreshold(domain.SideSell, decimal.NewFromInt(1905))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1905).Equal(got))

	got, err = domain.MatchThreshold(domain.SideBuy, decimal.NewFromInt(2000))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.0005").Equal(got))

	_, err = domain.MatchThreshold(domain.SideSell, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, apperrors.ErrInvalidPrice)
}

func TestParseSide(t *testing.T) {
	side, err := domain.ParseSide("BUY")
	require.NoError(t, err)
	assert.Equal(t, domain.SideBuy, side)

	side, err = domain.ParseSide("SELL")
	require.NoError(t, err)
	assert.Equal(t, domain.SideSell, side)

	_, err = domain.ParseSide("HOLD")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrderFormat)
}

func TestOrder_DisplayPrice(t *testing.T) {
	order := domain.Order{
		OriginalPrice:        decimal.NewFromInt(4),
		EffectivePrice:       decimal.RequireFromString("0.25"),
		CurrencyPairReversed: true,
	}
	assert.True(t, decimal.NewFromInt(4).Equal(order.DisplayPrice()))

	order.CurrencyPairReversed = false
	assert.True(t, decimal.RequireFromString("0.25").Equal(order.DisplayPrice()))
}

func TestSupportedCurrencies(t *testing.T) {
	currencies := domain.SupportedCurrencies()
	require.NotEmpty(t, currencies)
	assert.Contains(t, currencies, domain.BTC)
	assert.Contains(t, currencies, domain.ZAR)
	for i := 1; i < len(currencies); i++ {
		assert.Less(t, currencies[i-1], currencies[i])
	}
	assert.Equal(t, "Bitcoin", domain.BTC.Name())
}
