// Package blob stores ticket attachments and hands back durable public
// URLs. Providers are selected by configuration; the Google Cloud Storage
// provider is the production path, the filesystem provider covers local
// development and tests.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ProviderGCS   = "gcs"
	ProviderLocal = "local"
)

// Storage uploads a named binary object and returns a retrievable URL.
type Storage interface {
	Upload(ctx context.Context, objectName, contentType string, data io.Reader) (string, error)
}

// ProviderFromEnv picks the configured provider name, defaulting to GCS.
func ProviderFromEnv() string {
	provider := strings.TrimSpace(strings.ToLower(os.Getenv("STORAGE_PROVIDER")))
	if provider == "" {
		return ProviderGCS
	}
	return provider
}

func Open(ctx context.Context, provider string) (Storage, error) {
	switch provider {
	case ProviderGCS:
		return NewGCSStorage(ctx)
	case ProviderLocal:
		return NewLocalStorage(os.Getenv("STORAGE_LOCAL_DIR"), os.Getenv("STORAGE_LOCAL_BASE_URL"))
	default:
		return nil, fmt.Errorf("unknown storage provider %q", provider)
	}
}
