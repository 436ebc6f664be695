package fortune_test

import (
	"testing"

	"github.com/youruser/fortunecard/internal/fortune"
)

// deterministicRNG returns values from a pre-set sequence.
type deterministicRNG struct {
	values []int
	idx    int
}

func (r *deterministicRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func TestDraw_SelectsFromTrackLibrary(t *testing.T) {
	for _, track := range []fortune.Track{fortune.TrackTraditional, fortune.TrackFreeform, fortune.TrackDecision} {
		rng := &deterministicRNG{values: []int{0}}
		res, err := fortune.Draw(track, rng)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", track, err)
		}
		if res.Track != track {
			t.Errorf("%s: result track mismatch: %s", track, res.Track)
		}
		if res.Entry.ID != fortune.Library(track)[0].ID {
			t.Errorf("%s: expected first entry with rng=0, got id %d", track, res.Entry.ID)
		}
	}
}

func TestDraw_DecisionEntriesCarryVerdict(t *testing.T) {
	for _, e := range fortune.Library(fortune.TrackDecision) {
		switch e.Decision {
		case fortune.DecisionYes, fortune.DecisionNo, fortune.DecisionWait:
		default:
			t.Errorf("decision entry %d has no verdict", e.ID)
		}
	}
}

func TestDraw_UnknownTrack(t *testing.T) {
	_, err := fortune.Draw(fortune.Track(99), &deterministicRNG{values: []int{0}})
	if err != fortune.ErrTrackUnknown {
		t.Fatalf("expected ErrTrackUnknown, got %v", err)
	}
}

func TestParseTrack(t *testing.T) {
	cases := []struct {
		in   string
		want fortune.Track
		ok   bool
	}{
		{"traditional", fortune.TrackTraditional, true},
		{"trad", fortune.TrackTraditional, true},
		{"freeform", fortune.TrackFreeform, true},
		{"mmm", fortune.TrackFreeform, true},
		{"decision", fortune.TrackDecision, true},
		{"yesno", fortune.TrackDecision, true},
		{"tarot", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := fortune.ParseTrack(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseTrack(%q) = %v, %v; want %v", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseTrack(%q): expected error", c.in)
		}
	}
}

func TestCopyTypeByEntryID_LastMatchWins(t *testing.T) {
	// 37 appears in both "stuck" and "pause"; the later list wins.
	ct, ok := fortune.CopyTypeByEntryID(37)
	if !ok {
		t.Fatal("expected a category for id 37")
	}
	if ct.ID != "pause" {
		t.Errorf("id 37: expected pause, got %s", ct.ID)
	}
}

func TestCopyTypeByEntryID_Unmatched(t *testing.T) {
	if _, ok := fortune.CopyTypeByEntryID(999); ok {
		t.Error("expected no category for id 999")
	}
}

func TestCopyTypeByEntryID_SingleList(t *testing.T) {
	ct, ok := fortune.CopyTypeByEntryID(11)
	if !ok || ct.ID != "noExplain" {
		t.Errorf("id 11: expected noExplain, got %v (ok=%v)", ct.ID, ok)
	}
}
