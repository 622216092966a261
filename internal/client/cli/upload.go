package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Upload sends a local file to the image endpoint and prints the URL it
// is served under. Progress is rendered as a coarse percentage.
func (a *App) Upload(ctx context.Context, path string) error {
	if path == "" {
		printlnFn("Usage: upload <path>")
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		printlnFn("Cannot open file:", err)
		return err
	}
	defer f.Close()

	last := -1
	progress := func(sent, total int64) {
		if total <= 0 {
			return
		}
		pct := int(sent * 100 / total)
		if pct != last {
			last = pct
			printlnFn(fmt.Sprintf("uploading... %d%%", pct))
		}
	}

	res, err := a.api.Uploads.Upload(ctx, filepath.Base(path), f, progress)
	if err != nil {
		printlnFn("Upload failed:", err)
		return err
	}
	printlnFn("Uploaded:", res.URL)
	return nil
}
