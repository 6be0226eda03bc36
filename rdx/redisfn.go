package rdx

import (
	"os"
	"time"

	"luxadmin/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

// --- Session token store (logout revocation) ---

func StoreToken(userID, token string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, "session:"+userID, token, ttl).Err()
}

func TokenValid(userID, token string) bool {
	stored, err := Conn.Get(globals.Ctx, "session:"+userID).Result()
	return err == nil && stored == token
}

func RevokeToken(userID string) error {
	return Conn.Del(globals.Ctx, "session:"+userID).Err()
}

// --- Upstream list cache ---

func CacheGet(key string) (string, bool) {
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func CacheSet(key, val string, ttl time.Duration) {
	Conn.Set(globals.Ctx, key, val, ttl)
}

// CacheInvalidate drops every cached list page for one entity type.
func CacheInvalidate(prefix string) {
	iter := Conn.Scan(globals.Ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(globals.Ctx) {
		Conn.Del(globals.Ctx, iter.Val())
	}
}

// --- Reset OTP store ---

func StoreOTP(email, hash string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, "otp:"+email, hash, ttl).Err()
}

func GetOTP(email string) (string, error) {
	return Conn.Get(globals.Ctx, "otp:"+email).Result()
}

func DeleteOTP(email string) {
	Conn.Del(globals.Ctx, "otp:"+email)
}
