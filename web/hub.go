package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"iris-go/iris"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Reading is what a client sends: one voltage and an optional label.
type Reading struct {
	Label   string  `json:"label,omitempty"`
	Voltage float64 `json:"voltage"`
}

// Message is what the hub sends back. Results are broadcast to every client;
// errors only go to the client that sent the reading.
type Message struct {
	Label  string       `json:"label,omitempty"`
	Result *iris.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub converts readings received on any connection with one session and fans
// the results out to all connections.
type Hub struct {
	session    *iris.Session
	clients    map[*client]bool
	broadcast  chan []byte
	unicast    chan envelope
	register   chan *client
	unregister chan *client
	done       chan struct{}
}

func NewHub(s *iris.Session) *Hub {
	return &Hub{
		session:    s,
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, sendBuffer),
		unicast:    make(chan envelope, sendBuffer),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Run serves register/unregister/broadcast until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// slow client
					delete(h.clients, c)
					close(c.send)
				}
			}
		case e := <-h.unicast:
			if _, ok := h.clients[e.to]; ok {
				select {
				case e.to.send <- e.msg:
				default:
				}
			}
		case <-h.done:
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast queues msg for every connected client.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

type envelope struct {
	to  *client
	msg []byte
}

// send queues msg for one client; it is dropped if that client is gone or
// its buffer is full.
func (h *Hub) send(to *client, msg []byte) {
	select {
	case h.unicast <- envelope{to: to, msg: msg}:
	case <-h.done:
	}
}

// Convert runs one reading through the session.
func (h *Hub) Convert(r Reading) Message {
	res, err := h.session.Process(r.Voltage)
	if err != nil {
		return Message{Label: r.Label, Error: err.Error()}
	}
	return Message{Label: r.Label, Result: &res}
}

func serveWs(h *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}
	go c.writePump()
	go c.readPump()
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		var rd Reading
		if err := c.conn.ReadJSON(&rd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read: %v", err)
			}
			return
		}
		msg := c.hub.Convert(rd)
		b, err := json.Marshal(msg)
		if err != nil {
			log.Printf("marshal result: %v", err)
			continue
		}
		if msg.Error != "" {
			c.hub.send(c, b)
			continue
		}
		c.hub.Broadcast(b)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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
