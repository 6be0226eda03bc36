package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"luxadmin/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Client is one connected admin browser tab.
type Client struct {
	Conn   *websocket.Conn
	Send   chan []byte
	UserID string
}

// Hub fans admin events out to every connected client. Slow clients are
// dropped rather than allowed to stall the broadcast loop.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	stop       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.stop:
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			return

		case c := <-h.register:
			h.clients[c] = true

		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.Send <- msg:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}
		}
	}
}

// Stop disconnects every client and ends the run loop.
func (h *Hub) Stop() {
	close(h.stop)
}

// outboundEvent is what connected clients receive.
type outboundEvent struct {
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	Event      string `json:"event"`
	Timestamp  int64  `json:"timestamp"`
}

// Publish is wired as an event-worker sink; it forwards every admin event
// to connected clients.
func (h *Hub) Publish(event models.Index) {
	out := outboundEvent{
		EntityType: event.EntityType,
		EntityID:   event.EntityId,
		Event:      event.Message,
		Timestamp:  time.Now().Unix(),
	}
	data, err := json.Marshal(out)
	if err != nil {
		return
	}
	// nobody drains broadcast once the run loop has returned
	select {
	case h.broadcast <- data:
	case <-h.stop:
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WebSocketHandler upgrades the connection and keeps it registered until
// the client goes away.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 64),
		}
		hub.register <- client
		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump only watches for the close; clients never send anything we act
// on.
func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
