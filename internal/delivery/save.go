// Package delivery writes export blobs to disk and owns the persisted
// draw counter, keeping both concerns out of the rendering core.
package delivery

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the PNG blob under dir as card-<solarDate>.png. The write
// goes through a temp file so a failed export never leaves a truncated
// card behind; the temp file is removed on any failure.
func Save(dir string, blob []byte, solarDate string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	final := filepath.Join(dir, fmt.Sprintf("card-%s.png", solarDate))

	tmp, err := os.CreateTemp(dir, "card-*.png.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write card: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, final); err != nil {
		return "", fmt.Errorf("finalize card: %w", err)
	}
	return final, nil
}
