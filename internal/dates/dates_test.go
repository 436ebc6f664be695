package dates_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/youruser/fortunecard/internal/dates"
)

// stubConverter returns a fixed Lunar or a fixed error.
type stubConverter struct {
	lunar dates.Lunar
	err   error
}

func (s stubConverter) Lunar(time.Time) (dates.Lunar, error) {
	return s.lunar, s.err
}

func TestFormatSolar_FixedWidth(t *testing.T) {
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	cases := []time.Time{
		time.Date(2024, 2, 10, 8, 30, 0, 0, time.Local),
		time.Date(999, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, c := range cases {
		got := dates.FormatSolar(c)
		if !re.MatchString(got) {
			t.Errorf("FormatSolar(%v) = %q, not zero-padded YYYY-MM-DD", c, got)
		}
	}
	if got := dates.FormatSolar(cases[0]); got != "2024-02-10" {
		t.Errorf("expected 2024-02-10, got %q", got)
	}
}

func TestFormatTimestamp_FixedWidth(t *testing.T) {
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	tm := time.Date(2024, 2, 10, 8, 3, 7, 0, time.Local)
	got := dates.FormatTimestamp(tm)
	if !re.MatchString(got) {
		t.Fatalf("FormatTimestamp = %q, bad shape", got)
	}
	if got != "2024-02-10 08:03:07" {
		t.Errorf("expected 2024-02-10 08:03:07, got %q", got)
	}
}

func TestFormatLunar_Vocabulary(t *testing.T) {
	cases := []struct {
		name  string
		lunar dates.Lunar
		want  string
	}{
		{"first month first day", dates.Lunar{Month: 1, Day: 1}, "大年初一"},
		{"decade prefix 十", dates.Lunar{Month: 8, Day: 15}, "八月十五"},
		{"decade prefix 廿", dates.Lunar{Month: 3, Day: 21}, "三月廿一"},
		{"day thirty", dates.Lunar{Month: 12, Day: 30}, "腊月三十"},
		{"eleventh month", dates.Lunar{Month: 11, Day: 20}, "冬月二十"},
		{"leap month", dates.Lunar{Month: 4, Day: 2, Leap: true}, "闰四月初二"},
	}
	for _, c := range cases {
		got := dates.FormatLunar(time.Now(), stubConverter{lunar: c.lunar})
		if got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestFormatLunar_ConversionFailure(t *testing.T) {
	got := dates.FormatLunar(time.Now(), stubConverter{err: errors.New("no calendar")})
	if got != "农历日期" {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestFormatLunar_UnparseableTokens(t *testing.T) {
	got := dates.FormatLunar(time.Now(), stubConverter{
		lunar: dates.Lunar{Month: 0, Day: 0, MonthToken: "腊月", DayToken: "廿九"},
	})
	if got != "腊月廿九" {
		t.Fatalf("expected raw token concatenation, got %q", got)
	}
}

func TestFormatLunar_NothingUsable(t *testing.T) {
	got := dates.FormatLunar(time.Now(), stubConverter{lunar: dates.Lunar{Month: 99, Day: 99}})
	if got != "农历日期" {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestChineseCalendar_KnownDate(t *testing.T) {
	// 2024-02-10 is the first day of the lunar new year.
	l, err := dates.ChineseCalendar{}.Lunar(time.Date(2024, 2, 10, 8, 30, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Month != 1 || l.Day != 1 || l.Leap {
		t.Errorf("expected month 1 day 1, got %+v", l)
	}
	if got := dates.FormatLunar(time.Date(2024, 2, 10, 8, 30, 0, 0, time.Local), dates.ChineseCalendar{}); got != "大年初一" {
		t.Errorf("expected 大年初一, got %q", got)
	}
}
