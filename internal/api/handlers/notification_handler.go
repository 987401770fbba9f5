package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/agrisetu/registry-go/internal/notify"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Auth happens on the token, not the Origin header.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type NotificationHandler struct {
	publisher *notify.Publisher
}

func NewNotificationHandler(publisher *notify.Publisher) *NotificationHandler {
	return &NotificationHandler{publisher: publisher}
}

// Stream upgrades the connection and forwards workflow events until
// the client goes away.
func (h *NotificationHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	events := h.publisher.Subscribe()
	defer h.publisher.Unsubscribe(events)

	// Drain reads so close frames and pongs are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
