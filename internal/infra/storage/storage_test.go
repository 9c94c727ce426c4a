package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/academy-scheduler/internal/config"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizePhotoDownscales(t *testing.T) {
	out, err := NormalizePhoto(pngOf(t, 2560, 1440))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, MaxPhotoWidth, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
}

func TestNormalizePhotoKeepsSmallImages(t *testing.T) {
	out, err := NormalizePhoto(pngOf(t, 640, 480))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
}

func TestNormalizePhotoRejectsGarbage(t *testing.T) {
	_, err := NormalizePhoto([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestS3StorePutUsesPathStyleEndpoint(t *testing.T) {
	var (
		mu     sync.Mutex
		method string
		path   string
		ctype  string
		body   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		method, path, ctype = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewS3Store(&config.Config{
		S3Bucket:       "academy-photos",
		S3Region:       "us-east-1",
		S3Endpoint:     srv.URL,
		AWSAccessKeyID: "test",
		AWSSecretKey:   "test",
	})

	url, err := store.Put(context.Background(), "studios/3/a.webp", "image/webp", []byte("RIFF"))
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/academy-photos/studios/3/a.webp", url)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/academy-photos/studios/3/a.webp", path)
	assert.Equal(t, "image/webp", ctype)
	assert.Contains(t, string(body), "RIFF")
}
