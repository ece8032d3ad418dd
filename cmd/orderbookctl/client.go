package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/SscSPs/order_book_app/internal/dto"
)

const nextPageTokenHeader = "X-Next-Page-Token"

// apiClient talks to the order book HTTP API.
type apiClient struct {
	baseURL  string
	username string
	password string
	token    string
	http     *http.Client
}

func newAPIClient(baseURL, username, password, token string) *apiClient {
	return &apiClient{
		baseURL:  baseURL,
		username: username,
		password: password,
		token:    token,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// apiError is a non-2xx response.
type apiError struct {
	Status int
	Body   dto.ErrorResponse
}

func (e *apiError) Error() string {
	if e.Body.Code != 0 {
		return fmt.Sprintf("%d: %s (code %d)", e.Status, e.Body.Message, e.Body.Code)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Body.Message)
}

func (c *apiClient) OrderBook(ctx context.Context, pair string) (*dto.OrderBookResponse, error) {
	var out dto.OrderBookResponse
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/pairs/"+url.PathEscape(pair)+"/orderbook", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TradeHistory returns one page of trades and the token of the next page, if
// any.
func (c *apiClient) TradeHistory(ctx context.Context, pair string, offset, limit int, pageToken string) ([]dto.TradeResponse, string, error) {
	q := url.Values{}
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	} else {
		q.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out []dto.TradeResponse
	header, err := c.do(ctx, http.MethodGet, "/api/v1/pairs/"+url.PathEscape(pair)+"/tradehistory?"+q.Encode(), nil, &out)
	if err != nil {
		return nil, "", err
	}
	return out, header.Get(nextPageTokenHeader), nil
}

func (c *apiClient) PlaceLimitOrder(ctx context.Context, req dto.PlaceOrderRequest) (*dto.PlaceOrderResponse, error) {
	var out dto.PlaceOrderResponse
	if _, err := c.do(ctx, http.MethodPost, "/api/v1/orders/limit", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) Currencies(ctx context.Context) ([]dto.CurrencyResponse, error) {
	var out []dto.CurrencyResponse
	if _, err := c.do(ctx, http.MethodGet, "/api/v1/currencies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) do(ctx context.Context, method, path string, body, out any) (http.Header, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	switch {
	case c.token != "":
		req.Header.Set("Authorization", "Bearer "+c.token)
	case c.username != "":
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &apiError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr.Body)
		if apiErr.Body.Message == "" {
			apiErr.Body.Message = http.StatusText(resp.StatusCode)
		}
		return nil, apiErr
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return resp.Header, nil
}
