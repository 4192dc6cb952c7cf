package blob

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if dir == "" {
		return nil, errors.New("STORAGE_LOCAL_DIR is required for the local provider")
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *LocalStorage) Upload(ctx context.Context, objectName, contentType string, data io.Reader) (string, error) {
	// Object names are generated server-side, but reject separators anyway.
	if objectName == "" || strings.ContainsAny(objectName, "/\\") {
		return "", errors.New("invalid object name")
	}
	path := filepath.Join(l.dir, objectName)
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(file, data); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return l.baseURL + "/" + objectName, nil
}

// Dir exposes the backing directory so the HTTP layer can serve it.
func (l *LocalStorage) Dir() string {
	return l.dir
}
