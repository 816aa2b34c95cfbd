package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Manager fans collection-change events out to every connected client. There
// is no per-user routing: the app has a single shared dataset, so every open
// tab gets every event.
type Manager struct {
	clients      map[string]*Client
	clientsMutex sync.RWMutex
	Register     chan *Client
	Unregister   chan *Client
	writeWait    time.Duration
	pongWait     time.Duration
	pingPeriod   time.Duration
	log          *logrus.Logger
}

func NewManager(writeWait, pongWait, pingPeriod time.Duration, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		writeWait:  writeWait,
		pongWait:   pongWait,
		pingPeriod: pingPeriod,
		log:        log,
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.Register:
			m.registerClient(client)

		case client := <-m.Unregister:
			m.unregisterClient(client)
		}
	}
}

func (m *Manager) registerClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	m.clients[client.ID] = client
	m.log.WithField("client_id", client.ID).Debug("websocket client registered")
}

func (m *Manager) unregisterClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		close(client.Send)
		m.log.WithField("client_id", client.ID).Debug("websocket client unregistered")
	}
}

// Broadcast pushes an event to every connected client. Clients with a full
// send buffer are dropped rather than blocking the caller.
func (m *Manager) Broadcast(event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		m.log.WithError(err).Warn("failed to encode broadcast payload")
		return
	}

	messageBytes, err := json.Marshal(&Message{
		Type:      MessageType(event),
		Timestamp: time.Now(),
		Payload:   data,
	})
	if err != nil {
		m.log.WithError(err).Warn("failed to encode broadcast message")
		return
	}

	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	for id, client := range m.clients {
		select {
		case client.Send <- messageBytes:
		default:
			m.log.WithField("client_id", id).Warn("client send buffer full, dropping connection")
			go func(c *Client) { m.Unregister <- c }(client)
		}
	}
}

func (m *Manager) ConnectionCount() int {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()
	return len(m.clients)
}
