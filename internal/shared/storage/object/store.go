package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary objects
// by storage key. Open reports missing objects with an error satisfying
// errors.Is(err, fs.ErrNotExist).
type ObjectStore interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Save(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
	Exists(ctx context.Context, key string) (bool, error)
}
