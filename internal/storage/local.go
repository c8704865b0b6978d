package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes files under a directory served statically at baseURL.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Put(ctx context.Context, prefix string, u Upload) (Object, error) {
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}
	key := NewKey(prefix, u.NamaFile)
	dst := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return Object{}, fmt.Errorf("failed to create upload dir: %w", err)
	}

	src, err := u.Open()
	if err != nil {
		return Object{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	f, err := os.Create(dst)
	if err != nil {
		return Object{}, fmt.Errorf("failed to create file: %w", err)
	}
	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return Object{}, fmt.Errorf("failed to write file: %w", err)
	}

	return Object{
		Key:      key,
		URL:      s.baseURL + "/" + key,
		NamaFile: u.NamaFile,
		MimeType: u.MimeType,
		Ukuran:   n,
	}, nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", key, err)
	}
	return nil
}
