package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/order_book_app/internal/dto"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const usage = `usage: orderbookctl [flags] <command> [args]

commands:
  book PAIR                       print the order book of PAIR
  trades [-offset N] [-limit N] [-page TOKEN] PAIR
                                  print one page of PAIR's trade history
  buy QTY PRICE PAIR              place a BUY limit order
  sell QTY PRICE PAIR             place a SELL limit order
  currencies                      list supported currencies

flags:
`

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "orderbookctl:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("orderbookctl", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, usage)
		fs.PrintDefaults()
	}
	addr := fs.String("addr", envOr("ORDERBOOK_ADDR", "http://localhost:8082"), "server base URL")
	user := fs.String("user", envOr("ORDERBOOK_USER", ""), "basic auth username")
	password := fs.String("password", envOr("ORDERBOOK_PASSWORD", ""), "basic auth password")
	token := fs.String("token", envOr("ORDERBOOK_TOKEN", ""), "bearer token, takes precedence over basic auth")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	client := newAPIClient(strings.TrimRight(*addr, "/"), *user, *password, *token)
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "book":
		if len(rest) != 1 {
			return errors.New("book needs exactly one PAIR")
		}
		book, err := client.OrderBook(ctx, rest[0])
		if err != nil {
			return err
		}
		printOrderBook(out, rest[0], book)

	case "trades":
		return runTrades(ctx, client, rest, out)

	case "buy", "sell":
		if len(rest) != 3 {
			return fmt.Errorf("%s needs QTY PRICE PAIR", cmd)
		}
		req, err := parseOrder(strings.ToUpper(cmd), rest)
		if err != nil {
			return err
		}
		resp, err := client.PlaceLimitOrder(ctx, req)
		if err != nil {
			return err
		}
		printPlacement(out, resp)

	case "currencies":
		currencies, err := client.Currencies(ctx)
		if err != nil {
			return err
		}
		printCurrencies(out, currencies)

	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func runTrades(ctx context.Context, client *apiClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("trades", flag.ContinueOnError)
	fs.SetOutput(out)
	offset := fs.Int("offset", 0, "offset of the first trade")
	limit := fs.Int("limit", 0, "page size, server default when 0")
	page := fs.String("page", "", "page token printed by a previous call")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("trades needs exactly one PAIR")
	}

	trades, next, err := client.TradeHistory(ctx, fs.Arg(0), *offset, *limit, *page)
	if err != nil {
		return err
	}
	printTrades(out, trades)
	if next != "" {
		fmt.Fprintf(out, "next page: -page %s\n", next)
	}
	return nil
}

func parseOrder(side string, args []string) (dto.PlaceOrderRequest, error) {
	qty, err := decimal.NewFromString(args[0])
	if err != nil {
		return dto.PlaceOrderRequest{}, fmt.Errorf("invalid quantity %q: %w", args[0], err)
	}
	price, err := decimal.NewFromString(args[1])
	if err != nil {
		return dto.PlaceOrderRequest{}, fmt.Errorf("invalid price %q: %w", args[1], err)
	}
	return dto.PlaceOrderRequest{
		Side:     side,
		Quantity: qty,
		Price:    price,
		Pair:     strings.ToUpper(args[2]),
	}, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
