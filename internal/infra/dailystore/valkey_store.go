package dailystore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/astriva/astroday/internal/domain/horoscope"
)

// ValkeyStore persists daily records in a Valkey-compatible database. SET is
// the upsert: a concurrent duplicate computation simply overwrites.
type ValkeyStore struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyStore constructs a new store backed by Valkey. A zero TTL keeps
// records until overwritten.
func NewValkeyStore(client valkey.Client, prefix string, ttl time.Duration) *ValkeyStore {
	if prefix == "" {
		prefix = "daily"
	}
	return &ValkeyStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *ValkeyStore) Get(ctx context.Context, key horoscope.CacheKey) (horoscope.Record, bool, error) {
	cmd := s.client.B().Get().Key(s.recordKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return horoscope.Record{}, false, nil
		}
		return horoscope.Record{}, false, err
	}
	var record horoscope.Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return horoscope.Record{}, false, err
	}
	return record, true, nil
}

func (s *ValkeyStore) Upsert(ctx context.Context, record horoscope.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.recordKey(record.Key)).Value(string(payload))
	var cmd valkey.Completed
	if s.ttl > 0 {
		ttl := s.ttl
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) recordKey(key horoscope.CacheKey) string {
	return fmt.Sprintf("%s:%s:%s:%s", s.prefix, key.UserID, key.LocalDate, key.Tz)
}

var _ horoscope.DailyStore = (*ValkeyStore)(nil)
