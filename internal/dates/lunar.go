package dates

import (
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// ChineseCalendar converts via the lunar-go library. lunar-go reports leap
// months as negative month numbers.
type ChineseCalendar struct{}

var defaultConverter Converter = ChineseCalendar{}

func (ChineseCalendar) Lunar(t time.Time) (Lunar, error) {
	lunar := calendar.NewSolarFromDate(t).GetLunar()

	month := lunar.GetMonth()
	leap := false
	if month < 0 {
		month = -month
		leap = true
	}

	return Lunar{
		Month:      month,
		Day:        lunar.GetDay(),
		Leap:       leap,
		MonthToken: lunar.GetMonthInChinese() + "月",
		DayToken:   lunar.GetDayInChinese(),
	}, nil
}
