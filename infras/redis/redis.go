package redis

import (
	"context"
	"frontdesk/config"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New connects the queue cache and the rate limiter store. The API cannot serve
// queues without it, so an unreachable server stops the process.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary
	timeout := time.Duration(config.Cache.Redis.DialTimeoutSeconds) * time.Second

	client := goRedis.NewClient(&goRedis.Options{
		Addr:        net.JoinHostPort(primary.Host, primary.Port),
		Password:    primary.Password,
		DB:          primary.DB,
		DialTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), max(timeout, time.Second))
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", client.Options().Addr).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", primary.DB).
		Str("addr", client.Options().Addr).
		Msg("Connected to Redis")

	return client
}
