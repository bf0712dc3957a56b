package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adwatch/internal/adapter/phash"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x*5 + y*9) % 256)})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func cardPage(imageURL string) string {
	return fmt.Sprintf(`<html><body>
<div><div>Ідентифікатор бібліотеки: 1</div><div>Початок показу: 1 січ. 2024 р.</div><hr>
<img src="avatar.jpg"><img src="%[1]s/ok.png"><p>використовуються в 3 оголошеннях</p></div>
<div><div>Ідентифікатор бібліотеки: 2</div><hr><img src="avatar.jpg"><img src="%[1]s/missing.png"></div>
<div><div>Ідентифікатор бібліотеки: 3</div><hr><img src="avatar.jpg"><img src="%[1]s/garbage.png"></div>
<div><div>Ідентифікатор бібліотеки: 4</div><hr><img src="avatar.jpg"></div>
</body></html>`, imageURL)
}

func TestObserve(t *testing.T) {
	data := pngBytes(t)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/ok.png":
			_, _ = w.Write(data)
		case "/garbage.png":
			_, _ = w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	s := newScraper(Config{ImagesDir: dir}, nil, nil, discard)

	snap, err := s.observe(context.Background(), discard, cardPage(srv.URL))
	require.NoError(t, err)
	require.Len(t, snap, 4)

	ok := snap[0]
	assert.Equal(t, "1", ok.AdID)
	assert.Equal(t, 3, ok.SimilarityHint)
	assert.Equal(t, filepath.Join(dir, "1.jpg"), ok.LocalPath)
	require.NotNil(t, ok.Fingerprint)
	want, err := phash.FromReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, want, *ok.Fingerprint)

	assert.Empty(t, snap[1].LocalPath)
	assert.Nil(t, snap[1].Fingerprint)
	assert.NotEmpty(t, snap[1].ImageURL)

	// Downloaded but not decodable: the path is kept, the fingerprint is not.
	assert.Equal(t, filepath.Join(dir, "3.jpg"), snap[2].LocalPath)
	assert.Nil(t, snap[2].Fingerprint)

	assert.Empty(t, snap[3].ImageURL)
	assert.Nil(t, snap[3].Fingerprint)

	before := hits.Load()
	_, err = s.observe(context.Background(), discard, cardPage(srv.URL))
	require.NoError(t, err)
	// Only the failed download is retried.
	assert.Equal(t, before+1, hits.Load())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

type knownIDs struct {
	ids map[string]bool
	err error
}

func (k knownIDs) KnownAdIDs(context.Context, []string) (map[string]bool, error) {
	return k.ids, k.err
}

func TestObserveSkipsImagesOfKnownAds(t *testing.T) {
	data := pngBytes(t)
	var (
		mu    sync.Mutex
		paths []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	dir := t.TempDir()
	s := newScraper(Config{ImagesDir: dir}, nil, knownIDs{ids: map[string]bool{"1": true, "3": true}}, discard)

	snap, err := s.observe(context.Background(), discard, cardPage(srv.URL))
	require.NoError(t, err)
	require.Len(t, snap, 4)

	mu.Lock()
	assert.Equal(t, []string{"/missing.png"}, paths)
	mu.Unlock()
	for _, o := range []int{0, 2} {
		assert.NotEmpty(t, snap[o].ImageURL)
		assert.Empty(t, snap[o].LocalPath)
		assert.Nil(t, snap[o].Fingerprint)
	}
	assert.Equal(t, filepath.Join(dir, "2.jpg"), snap[1].LocalPath)
	assert.NotNil(t, snap[1].Fingerprint)
}

func TestObserveKnownLookupFailure(t *testing.T) {
	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	s := newScraper(Config{ImagesDir: t.TempDir()}, nil, knownIDs{err: errors.New("db down")}, discard)
	snap, err := s.observe(context.Background(), discard, cardPage(srv.URL))
	require.NoError(t, err)
	require.Len(t, snap, 4)
	for _, o := range snap[:3] {
		assert.NotNil(t, o.Fingerprint, o.AdID)
	}
}

func TestObserveStopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newScraper(Config{ImagesDir: t.TempDir()}, nil, nil, discard)
	_, err := s.observe(ctx, discard, cardPage(srv.URL))
	assert.ErrorIs(t, err, context.Canceled)
}
