package service

import "context"

// ObjectStorage uploads binary payloads (photos, audio) to the content store.
// The returned public URL is deterministic from the key and is persisted, so
// its construction must remain stable.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
