package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/SscSPs/order_book_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	sendBufferSize = 256
)

// TradesChannel is the channel carrying trades executed for pair.
func TradesChannel(pair domain.CurrencyPair) string {
	return "trades:" + pair.String()
}

// OrderBookChannel is the channel announcing changes to pair's listing.
func OrderBookChannel(pair domain.CurrencyPair) string {
	return "orderbook:" + pair.String()
}

// Message is the envelope written to websocket clients.
type Message struct {
	Channel string `json:"channel"`
	Data    any    `json:"data"`
}

// BookChange tells subscribers to refetch a listing.
type BookChange struct {
	Pair           string `json:"pair"`
	SequenceNumber int64  `json:"sequenceNumber"`
}

// SubscribeRequest is what clients send to manage their subscriptions.
type SubscribeRequest struct {
	Op       string   `json:"op"`
	Channels []string `json:"channels"`
}

// Hub maintains active websocket connections and fans order book events out
// to the clients subscribed to them.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	upgrader   websocket.Upgrader
	logger     *slog.Logger
}

// NewHub creates a hub. Call Run before serving connections.
func NewHub(logger *slog.Logger, allowedOrigins []string) *Hub {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(origins) == 0 || origins[origin] || origins["*"]
			},
		},
	}
}

// Run processes registrations until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("Websocket client connected", slog.String("client_id", client.id), slog.Int("total", total))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("Websocket client disconnected", slog.String("client_id", client.id), slog.Int("total", total))

		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Broadcast sends data to every client subscribed to channel. Clients whose
// buffer is full miss the message.
func (h *Hub) Broadcast(channel string, data any) {
	message, err := json.Marshal(Message{Channel: channel, Data: data})
	if err != nil {
		h.logger.Error("Failed to marshal websocket message", slog.String("channel", channel), slog.String("error", err.Error()))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if !client.IsSubscribed(channel) {
			continue
		}
		select {
		case client.send <- message:
		default:
			h.logger.Warn("Websocket client buffer full, dropping message", slog.String("client_id", client.id))
		}
	}
}

// Subscribers counts clients subscribed to channel.
func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for client := range h.clients {
		if client.IsSubscribed(channel) {
			n++
		}
	}
	return n
}

// PublishTrades broadcasts each trade on the pair's trade channel.
func (h *Hub) PublishTrades(_ context.Context, pair domain.CurrencyPair, trades []domain.Trade) {
	channel := TradesChannel(pair)
	for _, trade := range trades {
		h.Broadcast(channel, mapping.ToTradeResponse(trade))
	}
}

// PublishBookChange notifies listeners of pair and of its reverse, since a
// placement changes both listings.
func (h *Hub) PublishBookChange(_ context.Context, pair domain.CurrencyPair, sequenceNumber int64) {
	h.Broadcast(OrderBookChannel(pair), BookChange{Pair: pair.String(), SequenceNumber: sequenceNumber})
	if reverse := pair.Reverse(); reverse != pair {
		h.Broadcast(OrderBookChannel(reverse), BookChange{Pair: reverse.String(), SequenceNumber: sequenceNumber})
	}
}

// ServeWS upgrades the request and starts the client's pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		hub:           h,
		conn:          conn,
		send:          make(chan []byte, sendBufferSize),
		id:            uuid.NewString(),
		subscriptions: make(map[string]bool),
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// Client is one websocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	id   string

	subscriptions map[string]bool
	subsMu        sync.RWMutex
}

// IsSubscribed checks if client is subscribed to a channel
func (c *Client) IsSubscribed(channel string) bool {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	return c.subscriptions[channel]
}

func (c *Client) setSubscribed(channel string, on bool) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	if on {
		c.subscriptions[channel] = true
		return
	}
	delete(c.subscriptions, channel)
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("Websocket read error", slog.String("client_id", c.id), slog.String("error", err.Error()))
			}
			return
		}

		var req SubscribeRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			c.hub.logger.Debug("Invalid websocket message", slog.String("client_id", c.id), slog.String("error", err.Error()))
			continue
		}

		switch req.Op {
		case "subscribe":
			for _, channel := range req.Channels {
				c.setSubscribed(channel, true)
			}
		case "unsubscribe":
			for _, channel := range req.Channels {
				c.setSubscribed(channel, false)
			}
		default:
			c.hub.logger.Debug("Unknown websocket op", slog.String("client_id", c.id), slog.String("op", req.Op))
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
