package admincli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/newsroom/internal/netx"
)

// sniffLen is how much of a file http.DetectContentType looks at.
const sniffLen = 512

func (a *App) uploadPhoto(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read %s: %w", path, err)
	}
	contentType := http.DetectContentType(head[:n])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek %s: %w", path, err)
	}

	up, err := newPhotoService(a.config).PresignUpload(ctx, contentType)
	if err != nil {
		return err
	}

	if err := netx.UploadToPresignedURL(ctx, up.UploadURL, contentType, f, st.Size()); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Uploaded %s (%s)\nkey: %s\nurl: %s\n", path, contentType, up.Key, up.DownloadURL)
	return nil
}
