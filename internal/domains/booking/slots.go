package booking

import (
	"time"

	"github.com/go-redis/redis"
)

// redisSlots implements SlotGuard with SETNX. The slot key expires on its
// own, so a crashed booking never wedges the window permanently.
type redisSlots struct {
	client *redis.Client
}

func NewRedisSlotGuard(client *redis.Client) SlotGuard {
	return &redisSlots{client: client}
}

func (r *redisSlots) Reserve(slot string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(slot, "reserved", ttl).Result()
}

func (r *redisSlots) Release(slot string) error {
	return r.client.Del(slot).Err()
}
