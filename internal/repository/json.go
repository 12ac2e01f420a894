package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sliceandcode/storefront-api/internal/storage"
)

// readJSON decodes the blob at key into v. A missing key leaves v at its
// zero value and reports found=false; absence is the empty/default case,
// never an error.
func readJSON(ctx context.Context, store storage.Store, key string, v any) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// writeJSON encodes v and stores the whole blob at key.
func writeJSON(ctx context.Context, store storage.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
