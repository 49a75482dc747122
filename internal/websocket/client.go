package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Events on the wire.
const (
	// EventConnection is the greeting sent once to each new subscriber.
	EventConnection = "connection"
	// EventEcho is the request/response channel: a subscriber sends a
	// named message and receives a correlated reply with the same data.
	EventEcho = "events"
)

// Message is the wire envelope in both directions.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type inboundMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	id      uuid.UUID
	subject string

	closeOnce sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, subject string) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, 256),
		id:      uuid.New(),
		subject: subject,
	}
}

func (c *Client) ID() uuid.UUID { return c.id }

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			break
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("failed to unmarshal message from %s: %v", c.id, err)
			continue
		}

		c.handleMessage(&msg)
	}
}

func (c *Client) WritePump() {
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

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
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

// handleMessage serves the request/response channel: the reply carries the
// inbound event name and echoes the data back to the sender only.
func (c *Client) handleMessage(msg *inboundMessage) {
	switch msg.Event {
	case EventEcho:
		c.Send(&Message{Event: EventEcho, Data: msg.Data})
	default:
		log.Printf("unknown event %q from subscriber %s", msg.Event, c.id)
	}
}

func (c *Client) Send(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("failed to marshal message: %v", err)
		return
	}
	if !c.trySend(data) {
		log.Printf("dropped %s message for subscriber %s", msg.Event, c.id)
	}
}

// trySend queues data without blocking. A closed or full channel reports
// false; the caller decides whether that is worth logging.
func (c *Client) trySend(data []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// Close releases the outbound channel, which terminates WritePump.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}
