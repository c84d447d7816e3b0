package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/onegreenvn/autocontent-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// AllActivityTypes subscribes a client to every activity type
const AllActivityTypes = "all"

// SSEHub manages Server-Sent Events connections for the live activity feed
type SSEHub struct {
	// Key is an activity type or AllActivityTypes
	clients map[string]map[chan []byte]bool
	mu      sync.RWMutex
}

// NewSSEHub creates a new SSE hub
func NewSSEHub() *SSEHub {
	return &SSEHub{
		clients: make(map[string]map[chan []byte]bool),
	}
}

// RegisterClient registers a new SSE client for one activity type or all of them
func (h *SSEHub) RegisterClient(activityType string) chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := subscriptionKey(activityType)
	clientChan := make(chan []byte, 10)

	if h.clients[key] == nil {
		h.clients[key] = make(map[chan []byte]bool)
	}
	h.clients[key][clientChan] = true

	logrus.Infof("SSE client registered for %s (total clients: %d)", key, len(h.clients[key]))
	return clientChan
}

// UnregisterClient unregisters an SSE client
func (h *SSEHub) UnregisterClient(activityType string, clientChan chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := subscriptionKey(activityType)
	if h.clients[key] != nil {
		if _, ok := h.clients[key][clientChan]; ok {
			delete(h.clients[key], clientChan)
			close(clientChan)
		}
		if len(h.clients[key]) == 0 {
			delete(h.clients, key)
		}
	}

	logrus.Infof("SSE client unregistered for %s (remaining clients: %d)", key, len(h.clients[key]))
}

// BroadcastActivity sends an activity to clients of its type and to "all" clients
func (h *SSEHub) BroadcastActivity(activity *models.ActivityLog) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients[activity.Type]) == 0 && len(h.clients[AllActivityTypes]) == 0 {
		return
	}

	message, err := FormatActivityEvent(activity)
	if err != nil {
		logrus.Errorf("Failed to marshal activity for SSE: %v", err)
		return
	}

	h.broadcastLocked(activity.Type, message)
	h.broadcastLocked(AllActivityTypes, message)
}

// FormatActivityEvent renders an activity as an SSE "activity" event
func FormatActivityEvent(activity *models.ActivityLog) ([]byte, error) {
	data, err := json.Marshal(activity)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("event: activity\ndata: %s\n\n", data)), nil
}

// broadcastLocked sends to every client of key; the caller holds the lock
func (h *SSEHub) broadcastLocked(key string, message []byte) {
	for clientChan := range h.clients[key] {
		select {
		case clientChan <- message:
		default:
			// Slow client, drop the event
			logrus.Warnf("SSE client channel full, skipping: %s", key)
		}
	}
}

// GetClientCount returns the number of clients for one subscription key
func (h *SSEHub) GetClientCount(activityType string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[subscriptionKey(activityType)])
}

// SendHeartbeat sends a comment line to every client to keep connections alive
func (h *SSEHub) SendHeartbeat() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	heartbeat := []byte(fmt.Sprintf(": heartbeat %s\n\n", time.Now().Format(time.RFC3339)))
	for key := range h.clients {
		for clientChan := range h.clients[key] {
			select {
			case clientChan <- heartbeat:
			default:
			}
		}
	}
}

func subscriptionKey(activityType string) string {
	if activityType == "" {
		return AllActivityTypes
	}
	return activityType
}
