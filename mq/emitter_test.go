package mq

import (
	"context"
	"testing"
	"time"

	"luxadmin/models"
	"luxadmin/rdx"

	"github.com/redis/go-redis/v9"
)

func TestEmitHonorsCanceledContext(t *testing.T) {
	// a blackhole address would stall a dial that ignores the context
	old := rdx.Conn
	rdx.Conn = redis.NewClient(&redis.Options{Addr: "10.255.255.1:6379"})
	defer func() { rdx.Conn = old }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		Emit(ctx, "tour-submitted", models.Index{EntityType: "tour", EntityId: "t1"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("emit ignored the canceled context")
	}
}
