// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package access

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mehmetakif-git/forfit-api/internal/platform/constants"
)

// RedisSessionSlot implements [SessionSlot] on Redis.
//
// The dashboard drives exactly one interactive session, so a single fixed
// key is sufficient; each Save is a whole-value replacement.
type RedisSessionSlot struct {
	client *redis.Client
	key    string
}

// NewRedisSessionSlot creates a Redis-backed durable session slot.
func NewRedisSessionSlot(client *redis.Client) *RedisSessionSlot {
	return &RedisSessionSlot{
		client: client,
		key:    constants.RedisPrefixSession + "current",
	}
}

/*
Load reads and decodes the persisted session.

Returns:
  - Session: The persisted value
  - error: ErrSlotEmpty if the key is absent, decode/connectivity errors otherwise
*/
func (slot *RedisSessionSlot) Load(context context.Context) (Session, error) {

	// Fetch the raw JSON payload
	payload, err := slot.client.Get(context, slot.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return AnonymousSession(), ErrSlotEmpty
		}
		return AnonymousSession(), fmt.Errorf("redis_session_slot_load_failed: %w", err)
	}

	// Decode; a corrupt payload is reported so the store can fail soft
	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return AnonymousSession(), fmt.Errorf("redis_session_slot_decode_failed: %w", err)
	}

	return session, nil
}

/*
Save serializes and overwrites the persisted session with a TTL.

Returns:
  - error: Encoding or connectivity failures
*/
func (slot *RedisSessionSlot) Save(context context.Context, session Session, ttl time.Duration) error {

	// Serialize the whole session value
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_slot_encode_failed: %w", err)
	}

	// Whole-value replacement with expiry
	if err := slot.client.Set(context, slot.key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_slot_save_failed: %w", err)
	}

	return nil
}

/*
Delete removes the persisted session key.

Returns:
  - error: Connectivity failures
*/
func (slot *RedisSessionSlot) Delete(context context.Context) error {
	if err := slot.client.Del(context, slot.key).Err(); err != nil {
		return fmt.Errorf("redis_session_slot_delete_failed: %w", err)
	}
	return nil
}
