package reqlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Entry é o registro gravado para cada requisição atendida.
type Entry struct {
	Method    string    `json:"method"`
	URL       string    `json:"url"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type Store interface {
	Save(ctx context.Context, e Entry) error
}

// RedisStore guarda as entradas numa lista do Redis.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{
		rdb: rdb,
		key: "requests:log",
	}
}

func (s *RedisStore) Save(ctx context.Context, e Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.rdb.RPush(ctx, s.key, b).Err()
}
