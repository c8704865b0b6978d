package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"e-disposisi/config"

	"github.com/google/uuid"
)

//go:generate mockgen -source=./storage.go -package=storagemocks -destination=./mocks/storage.mock.go AttachmentStore

// AttachmentStore keeps uploaded files. The core only stores the returned
// references.
type AttachmentStore interface {
	Put(ctx context.Context, prefix string, u Upload) (Object, error)
	Delete(ctx context.Context, key string) error
}

// Upload is one incoming file.
type Upload struct {
	NamaFile string
	MimeType string
	Ukuran   int64
	Open     func() (io.ReadCloser, error)
}

type Object struct {
	Key      string
	URL      string
	NamaFile string
	MimeType string
	Ukuran   int64
}

func FromFileHeader(fh *multipart.FileHeader) Upload {
	return Upload{
		NamaFile: filepath.Base(fh.Filename),
		MimeType: fh.Header.Get("Content-Type"),
		Ukuran:   fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func FromFileHeaders(fhs []*multipart.FileHeader) []Upload {
	out := make([]Upload, 0, len(fhs))
	for _, fh := range fhs {
		out = append(out, FromFileHeader(fh))
	}
	return out
}

var allowedMime = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
}

func AllowedMime(m string) bool {
	_, ok := allowedMime[strings.ToLower(strings.TrimSpace(m))]
	return ok
}

// NewKey builds prefix/2006/01/<uuid><ext>.
func NewKey(prefix, namaFile string) string {
	ext := strings.ToLower(filepath.Ext(namaFile))
	return path.Join(prefix, time.Now().Format("2006/01"), uuid.NewString()+ext)
}

func New(ctx context.Context, cfg config.StorageConfig) (AttachmentStore, error) {
	switch cfg.Driver {
	case config.StorageS3:
		return NewS3Store(ctx, cfg)
	case config.StorageLocal, "":
		return NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
