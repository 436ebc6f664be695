// Package export is the raster export pipeline: it turns a share payload
// (plus, when available, a live preview snapshot) into the final fixed-size
// 1080x1920 PNG.
package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/youruser/fortunecard/internal/card"
	"github.com/youruser/fortunecard/internal/svg"
)

var (
	// ErrExportFailed is the single terminal failure signal. Everything
	// before it degrades internally; the caller only ever sees this.
	ErrExportFailed = errors.New("export failed")

	// ErrExportInFlight rejects overlapping export calls; the canvas
	// composition is not reentrant.
	ErrExportInFlight = errors.New("an export is already in flight")
)

// PreviewSource is the live preview to snapshot for Path A. Markup is a
// self-contained document; Width/Height are its CSS pixel dimensions.
type PreviewSource struct {
	Markup string
	Width  int
	Height int
}

// Snapshotter captures a preview document as a raster at the given scale
// (2 minimum, device-native preferred).
type Snapshotter interface {
	Capture(ctx context.Context, markup string, width, height int, scale float64) (image.Image, error)
}

// Rasterizer renders a vector document at its native size.
type Rasterizer interface {
	Rasterize(ctx context.Context, doc string, width, height int) (image.Image, error)
}

// Exporter runs the two-path export algorithm. Construct once and reuse;
// it carries the one-export-in-flight guard.
type Exporter struct {
	fetcher    *Fetcher
	snapshot   Snapshotter
	rasterizer Rasterizer
	faces      FaceSet
	qrURL      string
	log        zerolog.Logger

	inFlight atomic.Bool
}

// Options configures an Exporter. Snapshot and Rasterizer are optional:
// without a Snapshotter Path A is skipped, without a Rasterizer Path B
// degrades to the direct canvas rendition.
type Options struct {
	Fetcher    *Fetcher
	Snapshot   Snapshotter
	Rasterizer Rasterizer
	Faces      FaceSet
	QRURL      string
	Log        zerolog.Logger
}

func New(opts Options) *Exporter {
	return &Exporter{
		fetcher:    opts.Fetcher,
		snapshot:   opts.Snapshot,
		rasterizer: opts.Rasterizer,
		faces:      opts.Faces,
		qrURL:      opts.QRURL,
		log:        opts.Log,
	}
}

// Request describes one export call.
type Request struct {
	Payload card.SharePayload
	Skin    card.Skin
	// Preview, when non-nil, enables Path A (snapshot composition).
	Preview *PreviewSource
	// WithReadyArt stacks the track's ready artwork under the snapshot
	// using the dual-block layout.
	WithReadyArt bool
}

// Export produces the final PNG bytes. Stage order is fixed; every asset
// failure degrades to a simpler visual, and only full exhaustion surfaces
// as ErrExportFailed.
func (e *Exporter) Export(ctx context.Context, req Request) ([]byte, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, ErrExportInFlight
	}
	defer e.inFlight.Store(false)

	log := e.log.With().Str("export_id", uuid.NewString()).Str("skin", req.Skin.String()).Logger()

	if req.Preview != nil && e.snapshot != nil {
		blob, err := e.exportSnapshotPath(ctx, req, log)
		if err == nil {
			return blob, nil
		}
		// Path A failures are never terminal.
		log.Warn().Err(err).Msg("snapshot path failed, falling back to vector path")
	}

	return e.exportVectorPath(ctx, req, log)
}

// exportSnapshotPath is Path A: snapshot the preview, then recompose the
// decorative layers around it programmatically.
func (e *Exporter) exportSnapshotPath(ctx context.Context, req Request, log zerolog.Logger) ([]byte, error) {
	snap, err := e.snapshot.Capture(ctx, req.Preview.Markup, req.Preview.Width, req.Preview.Height, snapshotScale())
	if err != nil {
		return nil, err
	}

	// Background and ready artwork degrade silently: the gradient
	// fallback and the single-block layout cover their absence.
	var background image.Image
	if e.fetcher != nil {
		if img, err := e.fetcher.FirstImage(ctx, req.Payload.ImageSources); err == nil {
			background = img
		} else {
			log.Debug().Err(err).Msg("background chain exhausted, using gradient")
		}
	}

	// The ready artwork is the same chain's winner; no second fetch.
	var readyArt image.Image
	if req.WithReadyArt {
		readyArt = background
	}

	out := composeSnapshotCard(req.Payload, snap, readyArt, background, e.faces, e.qrImage(log))
	return encodePNG(out)
}

// exportVectorPath is Path B: rasterize the vector document at native
// size, or fall back to the direct canvas rendition when no rasterizer is
// available or it fails.
func (e *Exporter) exportVectorPath(ctx context.Context, req Request, log zerolog.Logger) ([]byte, error) {
	doc := svg.BuildVectorCard(req.Payload, req.Skin)

	if e.rasterizer != nil {
		img, err := e.rasterizer.Rasterize(ctx, doc, svg.CanvasWidth, svg.CanvasHeight)
		if err == nil {
			return encodePNG(frameToCanvas(img))
		}
		log.Warn().Err(err).Msg("vector rasterization failed, drawing directly")
	}

	blob, err := encodePNG(drawDirectCard(req.Payload, req.Skin, e.faces))
	if err != nil {
		return nil, ErrExportFailed
	}
	return blob, nil
}

// frameToCanvas pins the rasterized document to the exact output size,
// with smoothing off: the terminal skin's crisp edges must survive.
func frameToCanvas(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() == svg.CanvasWidth && b.Dy() == svg.CanvasHeight {
		return img
	}
	return nearestResize(img, svg.CanvasWidth, svg.CanvasHeight)
}

func (e *Exporter) qrImage(log zerolog.Logger) image.Image {
	if e.qrURL == "" {
		return nil
	}
	img, err := qrStamp(e.qrURL, 240)
	if err != nil {
		log.Debug().Err(err).Msg("qr stamp failed, omitting")
		return nil
	}
	return img
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, ErrExportFailed
	}
	if buf.Len() == 0 {
		return nil, ErrExportFailed
	}
	return buf.Bytes(), nil
}

// snapshotScale is the capture resolution multiplier: never below 2.
func snapshotScale() float64 {
	return 2
}
