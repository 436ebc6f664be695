// Package snapshot renders markup to rasters with headless Chrome. It
// backs both export paths: preview capture for the snapshot composition
// and native-size rasterization of the vector card.
package snapshot

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

// Browser drives a headless Chrome via chromedp. Zero value is not usable;
// call NewBrowser.
type Browser struct {
	log zerolog.Logger
}

func NewBrowser(log zerolog.Logger) *Browser {
	return &Browser{log: log}
}

// Capture renders the markup at width x height CSS pixels scaled by scale
// and returns the decoded raster.
func (b *Browser) Capture(ctx context.Context, markup string, width, height int, scale float64) (image.Image, error) {
	if scale < 2 {
		scale = 2
	}
	buf, err := b.screenshot(ctx, markup, width, height, scale)
	if err != nil {
		return nil, fmt.Errorf("capture preview: %w", err)
	}
	return decodePNG(buf)
}

// Rasterize renders a vector document at its native size (scale 1; the
// document is already full resolution).
func (b *Browser) Rasterize(ctx context.Context, doc string, width, height int) (image.Image, error) {
	buf, err := b.screenshot(ctx, doc, width, height, 1)
	if err != nil {
		return nil, fmt.Errorf("rasterize vector card: %w", err)
	}
	return decodePNG(buf)
}

func (b *Browser) screenshot(ctx context.Context, markup string, width, height int, scale float64) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.DisableGPU,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	// Data URI load avoids temp files; the URI dies with this function.
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(markup))

	var shot []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(width), int64(height), chromedp.EmulateScale(scale)),
		chromedp.Navigate(dataURI),
		// The document root is the svg element; there is no body to wait on.
		chromedp.WaitVisible("svg", chromedp.ByQuery),
		chromedp.CaptureScreenshot(&shot),
	}
	b.log.Debug().Int("width", width).Int("height", height).Float64("scale", scale).Msg("rendering markup in headless chrome")
	if err := chromedp.Run(tabCtx, tasks); err != nil {
		return nil, fmt.Errorf("chromedp: %w", err)
	}
	if len(shot) == 0 {
		return nil, fmt.Errorf("chromedp: empty screenshot")
	}
	return shot, nil
}

func decodePNG(buf []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	return img, nil
}
