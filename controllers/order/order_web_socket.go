package orderControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/notify"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderFeed pushes newly placed orders to connected back-office clients. It
// plugs into the checkout coordinator as one of its notifiers, so the feed is
// fire-and-forget like the confirmation email.
type OrderFeed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{clients: map[*websocket.Conn]bool{}}
}

// Handler upgrades the connection and keeps it registered until it drops.
func (f *OrderFeed) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.mu.Lock()
			delete(f.clients, conn)
			f.mu.Unlock()
			break
		}
	}
}

// Send broadcasts the confirmation to every connected client. Implements the
// coordinator's Notifier; a dead connection is dropped, never an error.
func (f *OrderFeed) Send(ctx context.Context, oc notify.OrderConfirmation) error {
	data, err := json.Marshal(oc)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(f.clients, conn)
		}
	}
	return nil
}
