package globals

import (
	"context"
	"os"
)

var (
	JwtSecret = []byte(getenv("JWT_SECRET", "luxadmin_dev_secret"))
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const UpstreamTokenKey ContextKey = "upstreamToken"

var Ctx = context.Background()
