package delivery

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Counter persists the monotonic draw count as a single integer in a text
// file. The rendering core never touches it: it takes the count as a
// plain parameter, and the caller increments here after a successful draw.
type Counter struct {
	Path string
}

// Load returns the persisted count. A missing or unreadable file counts
// as zero; the payload builder clamps to 1 on its side.
func (c Counter) Load() int {
	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Increment bumps and persists the count, returning the new value.
func (c Counter) Increment() (int, error) {
	n := c.Load() + 1
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return n, err
	}
	if err := os.WriteFile(c.Path, []byte(strconv.Itoa(n)+"\n"), 0o644); err != nil {
		return n, err
	}
	return n, nil
}
