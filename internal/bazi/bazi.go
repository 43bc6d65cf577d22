// Package bazi computes 生辰八字 birth charts. Lunar calendar arithmetic is
// delegated to lunar-go.
package bazi

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// Errors reported to the user verbatim.
var (
	ErrNoDate  = errors.New("请输入日期时间")
	ErrBadDate = errors.New("日期时间格式应为 YYYY-MM-DD HH:MM")
)

// Layouts accepted by Parse, tried in order.
var layouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Pillars holds one value per pillar: year, month, day and hour.
type Pillars struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
	Hour  string `json:"hour"`
}

// Slice returns the pillars in year, month, day, hour order.
func (p Pillars) Slice() []string {
	return []string{p.Year, p.Month, p.Day, p.Hour}
}

// LunarDate is a date in the Chinese calendar, written in Chinese numerals.
type LunarDate struct {
	Year  string `json:"year"`  // e.g. 二〇一六
	Month string `json:"month"` // e.g. 八
	Day   string `json:"day"`   // e.g. 十八
	Hour  string `json:"hour"`  // earthly branch of the hour, e.g. 巳
}

// Chart is a birth chart for one moment.
type Chart struct {
	Solar     time.Time `json:"solar"`
	Lunar     LunarDate `json:"lunar"`
	GanZhi    Pillars   `json:"ganzhi"`     // 生辰八字
	WuXing    Pillars   `json:"wuxing"`     // 八字五行
	NaYin     Pillars   `json:"nayin"`      // 纳音五行
	ShengXiao Pillars   `json:"shengxiao"`  // zodiac animal of each pillar
	Animal    string    `json:"animal"`     // 生肖
	StarSign  string    `json:"star_sign"`  // 星座
}

// DayMaster returns the day stem followed by its element, e.g. 癸水.
func (c *Chart) DayMaster() string {
	stem := []rune(c.GanZhi.Day)
	element := []rune(c.WuXing.Day)
	if len(stem) == 0 || len(element) == 0 {
		return ""
	}
	return string(stem[0]) + string(element[0])
}

// Validate reports ErrNoDate when no moment was chosen.
func Validate(t *time.Time) error {
	if t == nil || t.IsZero() {
		return ErrNoDate
	}
	return nil
}

// Parse reads a local date and time. Blank input yields a nil time so that
// Validate can report ErrNoDate; malformed input yields ErrBadDate.
func Parse(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrBadDate, s)
}

// Compute builds the chart for t. The wall clock of t is used as is.
func Compute(t time.Time) *Chart {
	solar := calendar.NewSolar(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
	lunar := solar.GetLunar()
	ec := lunar.GetEightChar()

	hour := []rune(lunar.GetTimeInGanZhi())
	var branch string
	if len(hour) > 1 {
		branch = string(hour[1:])
	}

	return &Chart{
		Solar: t,
		Lunar: LunarDate{
			Year:  lunar.GetYearInChinese(),
			Month: lunar.GetMonthInChinese(),
			Day:   lunar.GetDayInChinese(),
			Hour:  branch,
		},
		GanZhi: Pillars{
			Year:  ec.GetYear(),
			Month: ec.GetMonth(),
			Day:   ec.GetDay(),
			Hour:  ec.GetTime(),
		},
		WuXing: Pillars{
			Year:  ec.GetYearWuXing(),
			Month: ec.GetMonthWuXing(),
			Day:   ec.GetDayWuXing(),
			Hour:  ec.GetTimeWuXing(),
		},
		NaYin: Pillars{
			Year:  ec.GetYearNaYin(),
			Month: ec.GetMonthNaYin(),
			Day:   ec.GetDayNaYin(),
			Hour:  ec.GetTimeNaYin(),
		},
		ShengXiao: Pillars{
			Year:  lunar.GetYearShengXiao(),
			Month: lunar.GetMonthShengXiao(),
			Day:   lunar.GetDayShengXiao(),
			Hour:  lunar.GetTimeShengXiao(),
		},
		Animal:   lunar.GetYearShengXiao(),
		StarSign: solar.GetXingZuo(),
	}
}

// Calculate validates t and computes its chart.
func Calculate(t *time.Time) (*Chart, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	return Compute(*t), nil
}
