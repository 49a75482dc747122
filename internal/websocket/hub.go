package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/petwatch/petwatch/internal/domain"
	"github.com/petwatch/petwatch/internal/repository"
)

const recordTimeout = 5 * time.Second

// Hub owns the set of connected subscribers and fans events out to them.
// The subscriber map is the only shared mutable state: registration,
// removal, and broadcast snapshots all go through the hub mutex, so a
// disconnect during a broadcast never faults the delivery loop.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopped    bool

	eventRepo repository.EventRecordRepository

	mu sync.RWMutex
}

func NewHub(eventRepo repository.EventRecordRepository) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		eventRepo:  eventRepo,
	}
}

// Run processes subscribe/unsubscribe events until Stop is called.
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				h.clients[client] = true
			}
			h.mu.Unlock()
			// Greeting goes to the new subscriber only.
			client.Send(&Message{
				Event: EventConnection,
				Data:  "Successfully connected to server",
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if !h.stopped {
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					client.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Stop shuts the hub down and waits for Run to exit.
func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a subscriber. Removing one that is already gone is a
// no-op.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast delivers payload under event to every current subscriber.
// Delivery is best-effort: a full or closed client buffer is skipped so one
// slow subscriber cannot stall the others, and nothing propagates back to
// the caller.
func (h *Hub) Broadcast(event string, payload interface{}) {
	data, err := json.Marshal(&Message{Event: event, Data: payload})
	if err != nil {
		log.Printf("ERROR [websocket.Broadcast] failed to marshal %s event: %v", event, err)
		return
	}

	h.mu.RLock()
	snapshot := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		snapshot = append(snapshot, client)
	}
	h.mu.RUnlock()

	for _, client := range snapshot {
		if !client.trySend(data) {
			log.Printf("ERROR [websocket.Broadcast] dropped %s event for subscriber %s", event, client.id)
		}
	}

	go h.recordBroadcast(event, payload, len(snapshot))
}

// recordBroadcast writes the audit row for a fan-out. Failures are logged
// and dropped: the audit trail must never affect the write path.
func (h *Hub) recordBroadcast(event string, payload interface{}, subscribers int) {
	if h.eventRepo == nil {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ERROR [websocket.recordBroadcast] failed to marshal payload: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	record := &domain.EventRecord{
		Event:       event,
		Payload:     raw,
		Subscribers: subscribers,
		CreatedAt:   time.Now(),
	}
	if err := h.eventRepo.Record(ctx, record); err != nil {
		log.Printf("ERROR [websocket.recordBroadcast] failed to record %s event: %v", event, err)
	}
}

// ClientCount reports the current number of subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
