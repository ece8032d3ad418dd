package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StreamServer upgrades requests to live event streams.
type StreamServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}

// registerStreamRoutes exposes the websocket feed when a stream server is configured.
func registerStreamRoutes(rg *gin.RouterGroup, stream StreamServer) {
	if stream == nil {
		return
	}

	// Clients send {"op":"subscribe","channels":["trades:BTCZAR","orderbook:BTCZAR"]}.
	rg.GET("/stream", func(c *gin.Context) {
		stream.ServeWS(c.Writer, c.Request)
	})
}
