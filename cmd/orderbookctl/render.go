package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/SscSPs/order_book_app/internal/dto"
	"github.com/olekukonko/tablewriter"
)

func printOrders(w io.Writer, title string, orders []dto.OrderResponse) {
	writer := tablewriter.NewWriter(w)
	writer.SetHeader([]string{"side", "price", "qty", "pair", "orders"})
	for _, o := range orders {
		writer.Append([]string{o.Side, o.Price.String(), o.Quantity.String(), o.CurrencyPair, strconv.Itoa(o.OrderCount)})
	}
	writer.SetCaption(true, title)
	writer.Render()
}

func printOrderBook(w io.Writer, pair string, book *dto.OrderBookResponse) {
	printOrders(w, "asks", book.Asks)
	printOrders(w, "bids", book.Bids)
	fmt.Fprintf(w, "%s sequence %d, last change %s\n", pair, book.SequenceNumber, book.LastChange.Format(time.RFC3339Nano))
}

func printTrades(w io.Writer, trades []dto.TradeResponse) {
	writer := tablewriter.NewWriter(w)
	writer.SetHeader([]string{"seq", "time", "side", "price", "qty", "total", "pair"})
	for _, t := range trades {
		writer.Append([]string{strconv.FormatInt(t.SequenceID, 10), t.TradedAt.Format(time.RFC3339), t.TakerSide,
			t.Price.String(), t.Quantity.String(), t.QuoteVolume.String(), t.CurrencyPair})
	}
	writer.SetCaption(true, "trades")
	writer.Render()
}

func printPlacement(w io.Writer, resp *dto.PlaceOrderResponse) {
	fmt.Fprintf(w, "%s (%s), remaining %s\n", resp.Message, resp.Outcome.Result, resp.Outcome.RemainingQuantity)
	if resp.Outcome.RestingOrderID != "" {
		fmt.Fprintf(w, "resting order %s\n", resp.Outcome.RestingOrderID)
	}
	if len(resp.Outcome.Trades) > 0 {
		printTrades(w, resp.Outcome.Trades)
	}
}

func printCurrencies(w io.Writer, currencies []dto.CurrencyResponse) {
	writer := tablewriter.NewWriter(w)
	writer.SetHeader([]string{"code", "symbol", "name"})
	for _, c := range currencies {
		writer.Append([]string{c.CurrencyCode, c.Symbol, c.Name})
	}
	writer.Render()
}
