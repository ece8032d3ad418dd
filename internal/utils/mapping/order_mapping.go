package mapping

import (
	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/SscSPs/order_book_app/internal/dto"
)

const (
	placementMessageMatched = "Order matched with previous deals"
	placementMessageCreated = "Order created."
)

// ToOrderResponse converts one order book line
func ToOrderResponse(l domain.OrderBookLine) dto.OrderResponse {
	return dto.OrderResponse{
		Side:         string(l.Side),
		Quantity:     l.Quantity,
		Price:        l.Price,
		CurrencyPair: l.CurrencyPair.String(),
		OrderCount:   l.OrderCount,
	}
}

func toOrderResponses(ls []domain.OrderBookLine) []dto.OrderResponse {
	out := make([]dto.OrderResponse, len(ls))
	for i, l := range ls {
		out[i] = ToOrderResponse(l)
	}
	return out
}

// ToOrderBookResponse converts an order book view
func ToOrderBookResponse(v domain.OrderBookView) dto.OrderBookResponse {
	return dto.OrderBookResponse{
		Asks:           toOrderResponses(v.Asks),
		Bids:           toOrderResponses(v.Bids),
		LastChange:     v.LastChange,
		SequenceNumber: v.SequenceNumber,
	}
}

// ToPlaceOrderResponse converts the outcome of a placement. Any outcome that
// produced trades reports the matched message.
func ToPlaceOrderResponse(o domain.PlacementOutcome) dto.PlaceOrderResponse {
	message := placementMessageCreated
	if len(o.Trades) > 0 {
		message = placementMessageMatched
	}

	outcome := dto.PlacementOutcome{
		Result:            string(o.Status),
		RemainingQuantity: o.RemainingQuantity,
		Trades:            ToTradeResponses(o.Trades),
		SequenceNumber:    o.OrderSequence,
	}
	if o.RestingOrder != nil {
		outcome.RestingOrderID = o.RestingOrder.ID.String()
	}

	return dto.PlaceOrderResponse{
		Status:  "ok",
		Message: message,
		Outcome: outcome,
	}
}
