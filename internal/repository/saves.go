package repository

import "context"

// Durable store namespaces and keys. Catalog and progress debounce on
// different windows, so they live in separate namespaces.
const (
	NamespaceConfig   = "config"
	NamespaceProgress = "progress"

	SaveKeyMain = "main"
)

// Saves defines the interface for snapshot persistence. Payloads are opaque
// JSON documents keyed by (namespace, key).
type Saves interface {
	Put(ctx context.Context, namespace, key string, payload []byte) error
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	Clear(ctx context.Context, namespace string) error
}
