package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/youruser/fortunecard/internal/card"
	"github.com/youruser/fortunecard/internal/config"
	"github.com/youruser/fortunecard/internal/delivery"
	"github.com/youruser/fortunecard/internal/export"
	"github.com/youruser/fortunecard/internal/fortune"
	"github.com/youruser/fortunecard/internal/snapshot"
	"github.com/youruser/fortunecard/internal/svg"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

// seededRNG makes -seed reproduce a draw exactly.
type seededRNG struct{ r *rand.Rand }

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

func main() {
	trackFlag := flag.String("track", "traditional", "draw track: traditional|freeform|decision (aliases: trad, mmm, yesno)")
	themeFlag := flag.String("theme", "paper", "card skin: paper|terminal")
	outFlag := flag.String("out", "", "output directory (overrides FORTUNE_OUT_DIR)")
	seedFlag := flag.Int64("seed", 0, "fixed RNG seed for a reproducible draw (0 = random)")
	readyArt := flag.Bool("with-ready-art", false, "stack the track's ready artwork under the card")
	noSnapshot := flag.Bool("no-snapshot", false, "skip the preview snapshot path, export from the vector card")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	if *outFlag != "" {
		cfg.OutDir = *outFlag
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()

	track, err := fortune.ParseTrack(*trackFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unknown track %q\n", *trackFlag)
		os.Exit(2)
	}

	skin := card.SkinPaper
	switch *themeFlag {
	case "paper":
	case "terminal":
		skin = card.SkinTerminal
	default:
		fmt.Fprintf(os.Stderr, "unknown theme %q\n", *themeFlag)
		os.Exit(2)
	}

	var rng fortune.RNG = stdRNG{}
	if *seedFlag != 0 {
		rng = seededRNG{r: rand.New(rand.NewPCG(uint64(*seedFlag), 0))}
	}

	result, err := fortune.Draw(track, rng)
	if err != nil {
		log.Error().Err(err).Msg("draw failed")
		os.Exit(1)
	}

	counter := delivery.Counter{Path: cfg.CounterFile}
	count, err := counter.Increment()
	if err != nil {
		// Non-fatal: the card still renders with the in-memory count.
		log.Warn().Err(err).Msg("could not persist draw counter")
	}

	payload := card.BuildPayload(result, time.Now(), count, nil)
	log.Info().
		Str("track", track.String()).
		Str("title", payload.Title).
		Int("draw_count", count).
		Msg("drew a fortune")

	opts := export.Options{
		Faces: export.LoadFaceSet(cfg.FontPath),
		QRURL: cfg.QRURL,
		Log:   log,
	}
	if cfg.AssetBaseURL != "" {
		opts.Fetcher = export.NewFetcher(&http.Client{Timeout: 10 * time.Second}, cfg.AssetBaseURL, log)
	}
	if !cfg.DisableBrowser {
		browser := snapshot.NewBrowser(log)
		opts.Snapshot = browser
		opts.Rasterizer = browser
	}
	exporter := export.New(opts)

	req := export.Request{
		Payload:      payload,
		Skin:         skin,
		WithReadyArt: *readyArt,
	}
	if !*noSnapshot {
		req.Preview = &export.PreviewSource{
			Markup: svg.BuildVectorCard(payload, skin),
			Width:  svg.CanvasWidth,
			Height: svg.CanvasHeight,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	blob, err := exporter.Export(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(1)
	}

	path, err := delivery.Save(cfg.OutDir, blob, payload.SolarDate)
	if err != nil {
		log.Error().Err(err).Msg("save failed")
		os.Exit(1)
	}

	log.Info().Str("path", path).Int("bytes", len(blob)).Msg("card saved")
	fmt.Println(path)
}
