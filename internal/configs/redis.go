package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects to the Redis backing the shared rate
// limiter. Redis is optional; callers only reach here when an address
// is configured.
func NewRedisClient(addr string) rueidis.Client {
	client, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return client
}
