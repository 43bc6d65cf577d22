package bazi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	birth := time.Date(2016, time.September, 18, 10, 0, 0, 0, time.Local)
	c := Compute(birth)

	assert.Equal(t, Pillars{Year: "丙申", Month: "丁酉", Day: "癸卯", Hour: "丁巳"}, c.GanZhi)
	assert.Equal(t, Pillars{Year: "火金", Month: "火金", Day: "水木", Hour: "火火"}, c.WuXing)
	assert.Equal(t, Pillars{Year: "山下火", Month: "山下火", Day: "金箔金", Hour: "沙中土"}, c.NaYin)
	assert.Equal(t, "猴", c.Animal)
	assert.Equal(t, "猴", c.ShengXiao.Year)
	assert.Equal(t, "八", c.Lunar.Month)
	assert.Equal(t, "十八", c.Lunar.Day)
	assert.Equal(t, "巳", c.Lunar.Hour)
	assert.Equal(t, "癸水", c.DayMaster())
	assert.Equal(t, birth, c.Solar)
	assert.NotEmpty(t, c.StarSign)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrNoDate)
	assert.ErrorIs(t, Validate(&time.Time{}), ErrNoDate)

	now := time.Now()
	assert.NoError(t, Validate(&now))
}

func TestCalculate(t *testing.T) {
	_, err := Calculate(nil)
	assert.ErrorIs(t, err, ErrNoDate)

	birth := time.Date(2016, time.September, 18, 10, 0, 0, 0, time.Local)
	c, err := Calculate(&birth)
	require.NoError(t, err)
	assert.Equal(t, "癸卯", c.GanZhi.Day)
}

func TestParse(t *testing.T) {
	got, err := Parse(" 2016-09-18 10:00 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2016, time.September, 18, 10, 0, 0, 0, time.Local), *got)

	got, err = Parse("2016-09-18")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Hour())

	got, err = Parse("")
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = Parse("yesterday")
	assert.ErrorIs(t, err, ErrBadDate)
}

func TestPillarsSlice(t *testing.T) {
	p := Pillars{Year: "a", Month: "b", Day: "c", Hour: "d"}
	assert.Equal(t, []string{"a", "b", "c", "d"}, p.Slice())
}

func TestDayMaster_Empty(t *testing.T) {
	assert.Empty(t, (&Chart{}).DayMaster())
}
