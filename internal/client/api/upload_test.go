package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

func TestUpload_SingleFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "topo.png", header.Filename)

		respond(t, w, http.StatusOK, okEnvelope(models.UploadResult{URL: "/static/topo.png"}))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	result, err := c.Uploads.Upload(context.Background(), "topo.png", strings.NewReader("png-bytes"), nil)
	require.NoError(t, err)
	assert.Equal(t, "/static/topo.png", result.URL)
}

func TestUpload_ProgressReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusOK, okEnvelope(models.UploadResult{URL: "/static/x"}))
	}))
	defer srv.Close()

	var lastSent, total int64
	c := New(Options{BaseURL: srv.URL})
	_, err := c.Uploads.Upload(context.Background(), "x.bin", strings.NewReader(strings.Repeat("a", 4096)),
		func(sent, tot int64) {
			lastSent = sent
			total = tot
		})
	require.NoError(t, err)

	assert.Positive(t, total)
	assert.Equal(t, total, lastSent, "final callback must report the full body sent")
}

func TestUploadBatch_MultipleFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Len(t, r.MultipartForm.File["files"], 2)

		respond(t, w, http.StatusOK, okEnvelope([]models.UploadResult{
			{URL: "/static/a.jpg"}, {URL: "/static/b.jpg"},
		}))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	results, err := c.Uploads.UploadBatch(context.Background(), []UploadFile{
		{Name: "a.jpg", Reader: strings.NewReader("aaa")},
		{Name: "b.jpg", Reader: strings.NewReader("bbb")},
	}, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "/static/a.jpg", results[0].URL)
}
