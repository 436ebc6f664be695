// Package dates formats draw timestamps for card captions: zero-padded
// solar date, wall-clock timestamp, and a traditional lunar date rendered
// in a fixed vocabulary.
package dates

import "time"

// lunarPlaceholder is returned whenever the calendar conversion cannot
// produce a usable date. It must never be replaced by an error.
const lunarPlaceholder = "农历日期"

// Lunar is the result of a solar-to-lunar calendar conversion. Month and
// Day are 1-based; Leap marks a leap month. MonthToken/DayToken carry the
// converter's raw rendering and are used verbatim when the numeric fields
// are out of range.
type Lunar struct {
	Month      int
	Day        int
	Leap       bool
	MonthToken string
	DayToken   string
}

// Converter turns a point in time into its lunar calendar date. The
// formatter treats it as fallible: any error degrades to a placeholder.
type Converter interface {
	Lunar(t time.Time) (Lunar, error)
}

var lunarMonths = [12]string{
	"大年", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "冬月", "腊月",
}

var lunarDays = [30]string{
	"初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
	"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
	"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十",
}

// FormatSolar renders t as YYYY-MM-DD, zero-padded.
func FormatSolar(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTimestamp renders t as YYYY-MM-DD HH:MM:SS in t's own location.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// FormatLunar renders t's lunar date using conv. Conversion failure yields
// the literal placeholder; unparseable month/day fall back to the raw
// tokens joined together.
func FormatLunar(t time.Time, conv Converter) string {
	if conv == nil {
		conv = defaultConverter
	}
	l, err := conv.Lunar(t)
	if err != nil {
		return lunarPlaceholder
	}

	if l.Month >= 1 && l.Month <= 12 && l.Day >= 1 && l.Day <= 30 {
		s := lunarMonths[l.Month-1] + lunarDays[l.Day-1]
		if l.Leap {
			s = "闰" + s
		}
		return s
	}

	raw := l.MonthToken + l.DayToken
	if raw == "" {
		return lunarPlaceholder
	}
	return raw
}
