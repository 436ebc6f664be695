package fortune

import "errors"

var (
	ErrTrackUnknown = errors.New("unknown track")
	ErrEmptyLibrary = errors.New("track library is empty")
)

// Track is the top-level draw category. The set is closed: adding a track
// means touching every exhaustive switch below, which is intentional.
type Track uint8

const (
	TrackTraditional Track = iota
	TrackFreeform
	TrackDecision
)

func (t Track) String() string {
	switch t {
	case TrackTraditional:
		return "traditional"
	case TrackFreeform:
		return "freeform"
	case TrackDecision:
		return "decision"
	}
	return "unknown"
}

// ParseTrack accepts the canonical names and the short aliases
// ("trad", "mmm", "yesno").
func ParseTrack(s string) (Track, error) {
	switch s {
	case "traditional", "trad":
		return TrackTraditional, nil
	case "freeform", "mmm":
		return TrackFreeform, nil
	case "decision", "yesno":
		return TrackDecision, nil
	}
	return 0, ErrTrackUnknown
}

// Decision is the verdict carried by decision-track entries.
type Decision string

const (
	DecisionNone Decision = ""
	DecisionYes  Decision = "yes"
	DecisionNo   Decision = "no"
	DecisionWait Decision = "wait"
)

// Entry is one authored piece of fortune content. IDs are ordinal within a
// track and not globally unique. Entries are never mutated at runtime.
type Entry struct {
	ID          int      `json:"id"`
	TopLine     string   `json:"top_line"`
	ThemeWord   string   `json:"theme_word"`
	Favorable   []string `json:"favorable"`
	Unfavorable []string `json:"unfavorable"`
	DetailText  string   `json:"detail_text"`
	// Decision is set only on decision-track entries.
	Decision Decision `json:"decision,omitempty"`
}

// DrawResult pairs a track with the entry drawn from it.
type DrawResult struct {
	Track Track
	Entry Entry
}

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}
