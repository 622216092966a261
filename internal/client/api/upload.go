package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

// ProgressFunc receives the number of request-body bytes sent so far and
// the total body size. It is called from the uploading goroutine.
type ProgressFunc func(sent, total int64)

// UploadFile is one file of a batch upload.
type UploadFile struct {
	Name   string
	Reader io.Reader
}

// UploadAPI covers the multipart /upload endpoints.
type UploadAPI struct {
	c *Client
}

// Upload sends one file to POST /upload and returns the stored resource
// URL. progress may be nil.
func (u *UploadAPI) Upload(ctx context.Context, name string, r io.Reader, progress ProgressFunc) (*models.UploadResult, error) {
	body, contentType, err := buildMultipart("file", []UploadFile{{Name: name, Reader: r}})
	if err != nil {
		return nil, err
	}
	var result models.UploadResult
	if err := u.send(ctx, "/upload", body, contentType, progress, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadBatch sends several files to POST /upload/batch. Progress covers
// the combined request body.
func (u *UploadAPI) UploadBatch(ctx context.Context, files []UploadFile, progress ProgressFunc) ([]models.UploadResult, error) {
	body, contentType, err := buildMultipart("files", files)
	if err != nil {
		return nil, err
	}
	var results []models.UploadResult
	if err := u.send(ctx, "/upload/batch", body, contentType, progress, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (u *UploadAPI) send(ctx context.Context, path string, body *bytes.Buffer, contentType string, progress ProgressFunc, out any) error {
	total := int64(body.Len())
	var reader io.Reader = body
	if progress != nil {
		reader = &progressReader{r: body, total: total, fn: progress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.ContentLength = total

	return u.c.send(req, out)
}

// buildMultipart assembles the whole multipart body up front so the total
// size is known and progress can be reported against it.
func buildMultipart(field string, files []UploadFile) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile(field, f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file %q: %w", f.Name, err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, "", fmt.Errorf("failed to read %q: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

type progressReader struct {
	r     io.Reader
	sent  int64
	total int64
	fn    ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.fn(p.sent, p.total)
	}
	return n, err
}
