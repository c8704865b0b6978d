package usecase

import (
	"context"

	"e-disposisi/internal/errs"
	"e-disposisi/internal/model"
	"e-disposisi/internal/storage"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"
)

func checkFiles(files []storage.Upload) error {
	if len(files) > model.MaxLampiran {
		return errs.Invalidf("lampiran maksimal %d file", model.MaxLampiran)
	}
	for _, f := range files {
		if !storage.AllowedMime(f.MimeType) {
			return errs.Invalidf("tipe file %s tidak didukung, gunakan PDF/JPG/PNG", f.NamaFile)
		}
	}
	return nil
}

// uploadAll stores files in parallel. Either every file ends up in the store
// or none does.
func uploadAll(ctx context.Context, store storage.AttachmentStore, prefix string, files []storage.Upload) ([]model.Lampiran, error) {
	if len(files) == 0 {
		return nil, nil
	}
	objs := make([]storage.Object, len(files))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, f := range files {
		eg.Go(func() error {
			obj, err := store.Put(egCtx, prefix, f)
			if err != nil {
				return err
			}
			objs[i] = obj
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		var uploaded []string
		for _, o := range objs {
			if o.Key != "" {
				uploaded = append(uploaded, o.Key)
			}
		}
		discardKeys(ctx, store, uploaded)
		return nil, errs.Upstream("gagal mengunggah lampiran", err)
	}
	return slice.Map(objs, func(_ int, o storage.Object) model.Lampiran {
		return model.Lampiran{Key: o.Key, URL: o.URL, NamaFile: o.NamaFile, MimeType: o.MimeType, Ukuran: o.Ukuran}
	}), nil
}

// discard removes blobs of a request that will not be persisted.
func discard(ctx context.Context, store storage.AttachmentStore, lampiran []model.Lampiran) {
	discardKeys(ctx, store, slice.Map(lampiran, func(_ int, l model.Lampiran) string { return l.Key }))
}

func discardKeys(ctx context.Context, store storage.AttachmentStore, keys []string) {
	ctx = context.WithoutCancel(ctx)
	for _, k := range keys {
		if err := store.Delete(ctx, k); err != nil {
			log.Warnw("gagal menghapus lampiran yatim", "key", k, "error", err)
		}
	}
}
