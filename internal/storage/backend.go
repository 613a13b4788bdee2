package storage

import "context"

// Backend is the raw string key-value medium the store sits on. A record is
// either present with a value or entirely absent; the two are distinct so the
// seeder can tell "never written" apart from "written as empty".
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
