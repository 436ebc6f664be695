package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

// ErrAllSourcesFailed means the whole fallback chain was exhausted. Callers
// degrade to a programmatic background; this never reaches the user.
var ErrAllSourcesFailed = errors.New("all image sources failed")

// Fetcher loads the first decodable image from an ordered source list.
// Sources are tried strictly in order; a later source is attempted only
// after the previous one failed, and nothing after the first success.
type Fetcher struct {
	client *http.Client
	// base resolves root-relative source paths ("/images/x.png").
	base string
	log  zerolog.Logger
}

func NewFetcher(client *http.Client, baseURL string, log zerolog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Fetcher{client: client, base: strings.TrimSuffix(baseURL, "/"), log: log}
}

// Resolve maps a source path to an absolute URL. Absolute URLs pass
// through untouched.
func (f *Fetcher) Resolve(src string) string {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") || strings.HasPrefix(src, "//") {
		return src
	}
	return f.base + "/" + strings.TrimPrefix(src, "/")
}

// FirstImage walks the fallback chain and returns the first image that
// downloads and decodes.
func (f *Fetcher) FirstImage(ctx context.Context, sources []string) (image.Image, error) {
	for _, src := range sources {
		img, err := f.fetchOne(ctx, f.Resolve(src))
		if err != nil {
			f.log.Debug().Str("source", src).Err(err).Msg("image source failed, trying next")
			continue
		}
		return img, nil
	}
	return nil, ErrAllSourcesFailed
}

func (f *Fetcher) fetchOne(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}
