package handler

import (
	"context"
	"encoding/json"
	"log"
	"restaurant_pos/config"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379")})

	clients = make(map[string]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

// Topics carried over the realtime feed. Every connected screen subscribes
// to one of them.
const (
	TopicMesas   = "mesas"
	TopicOrdenes = "ordenes"
	TopicCaja    = "caja"
)

func validTopic(t string) bool {
	return t == TopicMesas || t == TopicOrdenes || t == TopicCaja
}

// PublishEvent pushes a change notification to every subscriber of a topic.
// Events go through Redis so multiple server instances stay in sync.
func PublishEvent(topic, event string, payload any) {
	msg, err := json.Marshal(fiber.Map{"event": event, "data": payload})
	if err != nil {
		log.Printf("failed to marshal ws event %s: %v", event, err)
		return
	}
	if err := redisClient.Publish(context.Background(), "pos:"+topic, msg).Err(); err != nil {
		log.Printf("failed to publish ws event %s: %v", event, err)
	}
}

// WebSocketConnection subscribes a client to a topic room and relays the
// Redis feed for that topic.
func WebSocketConnection(c *websocket.Conn) {
	topic := c.Params("topic")
	if !validTopic(topic) {
		c.Close()
		return
	}

	defer func() {
		mu.Lock()
		if clients[topic] != nil {
			delete(clients[topic], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[topic] == nil {
		clients[topic] = make(map[*websocket.Conn]bool)
	}
	clients[topic][c] = true
	mu.Unlock()

	// Initial snapshot so a reconnecting screen never shows stale state.
	if topic == TopicMesas {
		tables, err := FetchTablesSnapshot()
		if err == nil {
			c.WriteJSON(fiber.Map{"event": "snapshot", "data": tables})
		}
	}

	pubsub := redisClient.Subscribe(context.Background(), "pos:"+topic)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[topic] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[topic], conn)
			}
		}
		mu.Unlock()
	}
}
