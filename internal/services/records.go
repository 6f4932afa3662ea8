package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/cakeshop/internal/logging"
	"github.com/dmitrijs2005/cakeshop/internal/repositories/kv"
)

const (
	keyUsers         = "users"
	keyUser          = "user"
	keyRatings       = "cakeRatings"
	keyColor         = "cakeColor"
	catalogPrefix    = "cakes_"
	profileKeyPrefix = "ownerProfile_"
)

func catalogKey(vendor string) string { return catalogPrefix + vendor }

func profileKey(vendor string) string { return profileKeyPrefix + vendor }

// loadJSON decodes the value under key into v. It reports false when the key
// is absent or holds something that does not decode; v is left untouched then.
func loadJSON(ctx context.Context, s kv.Store, log logging.Logger, key string, v any) (bool, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warn(ctx, "ignoring unreadable record", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func saveJSON(ctx context.Context, s kv.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Put(ctx, key, data)
}
