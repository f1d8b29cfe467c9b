package simulated

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"akwana/internal/domain"
)

type dayPattern struct {
	condition  string
	min, max   float64
	rainfallMM float64
}

// A week of typical long-rains weather. Each district starts at its own
// offset so neighbouring districts do not read identically.
var week = []dayPattern{
	{"Sunny", 18, 28, 0},
	{"Light Rain", 19, 27, 15},
	{"Heavy Rain", 18, 26, 35},
	{"Cloudy", 17, 25, 5},
	{"Sunny", 18, 28, 0},
	{"Partly Cloudy", 18, 27, 3},
	{"Light Rain", 17, 26, 12},
}

// Forecast answers from the fixed weekly pattern.
type Forecast struct {
	now func() time.Time
}

func NewForecast(now func() time.Time) *Forecast {
	if now == nil {
		now = time.Now
	}
	return &Forecast{now: now}
}

func (f *Forecast) Forecast(ctx context.Context, district string, days int) ([]domain.ForecastDay, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	district = strings.TrimSpace(district)
	if district == "" {
		return nil, fmt.Errorf("%w: district is empty", domain.ErrValidation)
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(district)))
	offset := int(h.Sum32() % uint32(len(week)))

	today := f.now().Truncate(24 * time.Hour)
	out := make([]domain.ForecastDay, days)
	for i := range out {
		p := week[(offset+i)%len(week)]
		date := today.AddDate(0, 0, i)
		out[i] = domain.ForecastDay{
			Date:       date,
			Label:      dayLabel(i, date),
			Condition:  p.condition,
			TempMinC:   p.min,
			TempMaxC:   p.max,
			RainfallMM: p.rainfallMM,
		}
	}
	return out, nil
}

func dayLabel(i int, date time.Time) string {
	switch i {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	}
	return date.Weekday().String()
}
