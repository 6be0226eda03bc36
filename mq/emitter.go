package mq

import (
	"context"
	"encoding/json"
	"log"

	"luxadmin/models"
	"luxadmin/rdx"
)

// Channel carrying admin submit/delete events for the cache-invalidation
// worker and the websocket notifier.
const EventsChannel = "admin-events"

// Emit publishes an admin event to Redis.
func Emit(ctx context.Context, eventName string, content models.Index) {
	content.Message = eventName
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, EventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// StartEventWorker invalidates cached upstream lists whenever an entity is
// submitted or deleted, and forwards the event to sinks (the notifier hub).
func StartEventWorker(sinks ...func(models.Index)) {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, EventsChannel)
	ch := sub.Channel()

	log.Println("[EventWorker] Listening for admin events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[EventWorker] Failed to parse event: %v", err)
			continue
		}
		rdx.CacheInvalidate("list:" + event.EntityType + ":")
		for _, sink := range sinks {
			sink(event)
		}
	}
}
