package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/config"

	"github.com/redis/go-redis/v9"
)

// Cache guarda resultados de geocodificação (cidade+país -> lat/lon).
// Redis fora do ar não derruba nada: o client fica nil e tudo vira miss.
type Cache struct {
	client *redis.Client
}

func New(cfg *config.Config) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[cache] ⚠️ Redis indisponível (%v), seguindo sem cache", err)
		return &Cache{}
	}

	log.Println("[cache] ✅ Redis OK.")
	return &Cache{client: client}
}

// GetJSON lê uma key do Redis e, se existir, desserializa o JSON em `dest`.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		// key não existe
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa `value` em JSON e grava no Redis com TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, b, ttl).Err()
}
