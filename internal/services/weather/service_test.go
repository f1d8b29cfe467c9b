package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akwana/internal/adapters/simulated"
	"akwana/internal/catalog"
	"akwana/internal/domain"
)

type fixedSource struct {
	rain []float64
	err  error
}

func (f fixedSource) Forecast(ctx context.Context, district string, days int) ([]domain.ForecastDay, error) {
	if f.err != nil {
		return nil, f.err
	}
	labels := []string{"Today", "Tomorrow", "Thursday", "Friday", "Saturday"}
	out := make([]domain.ForecastDay, 0, days)
	for i := 0; i < days && i < len(f.rain); i++ {
		out = append(out, domain.ForecastDay{Label: labels[i], RainfallMM: f.rain[i]})
	}
	return out, nil
}

func builtin(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Builtin()
	require.NoError(t, err)
	return c
}

func TestOutlook_PerDayAdvisories(t *testing.T) {
	svc := New(builtin(t), fixedSource{rain: []float64{0, 15, 35, 5, 0}}, nil)
	out, err := svc.Outlook(context.Background(), "Mukono", 5)
	require.NoError(t, err)
	require.Len(t, out.Days, 5)

	want := []struct {
		risk     domain.RainRisk
		rule     string
		advisory string
	}{
		{domain.RainLow, "fair-weather", "Good conditions for planting and transplanting"},
		{domain.RainMedium, "rain-outlook", "Delay irrigation, natural rain expected"},
		{domain.RainHigh, "heavy-rain", "Apply fungicide after rain stops"},
		{domain.RainLow, "fair-weather", "Good conditions for planting and transplanting"},
		{domain.RainLow, "fair-weather", "Good conditions for planting and transplanting"},
	}
	for i, w := range want {
		assert.Equal(t, w.risk, out.Days[i].Risk, "day %d", i)
		assert.Equal(t, w.rule, out.Days[i].RuleID, "day %d", i)
		assert.Equal(t, w.advisory, out.Days[i].Advisory, "day %d", i)
	}

	assert.Equal(t, []Alert{
		{Type: AlertRain, Severity: domain.RainHigh, Message: "Heavy rainfall expected Thursday", Timing: "In 2 days"},
		{Type: AlertPest, Severity: domain.RainMedium, Message: "Increased pest activity after rain", Timing: "This week"},
	}, out.Alerts)
}

func TestOutlook_DryWeekHasNoAlerts(t *testing.T) {
	svc := New(builtin(t), fixedSource{rain: []float64{0, 2, 10}}, nil)
	out, err := svc.Outlook(context.Background(), "Gulu", 3)
	require.NoError(t, err)
	assert.Empty(t, out.Alerts)
	assert.NotNil(t, out.Alerts)
}

func TestOutlook_Validation(t *testing.T) {
	svc := New(builtin(t), fixedSource{}, nil)
	_, err := svc.Outlook(context.Background(), "  ", 3)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.Outlook(context.Background(), "Mukono", MaxDays+1)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.Outlook(context.Background(), "Mukono", -1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOutlook_SourceFailures(t *testing.T) {
	svc := New(builtin(t), fixedSource{err: errors.New("upstream down")}, nil)
	_, err := svc.Outlook(context.Background(), "Mukono", 3)
	assert.ErrorIs(t, err, domain.ErrCapability)

	svc = New(builtin(t), fixedSource{err: context.DeadlineExceeded}, nil)
	_, err = svc.Outlook(context.Background(), "Mukono", 3)
	assert.ErrorIs(t, err, domain.ErrTimeout)
}

func TestOutlook_SimulatedForecast(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	svc := New(builtin(t), simulated.NewForecast(now), nil)

	out, err := svc.Outlook(context.Background(), "Mukono", 0)
	require.NoError(t, err)
	require.Len(t, out.Days, DefaultDays)
	assert.Equal(t, "Today", out.Days[0].Day.Label)
	assert.Equal(t, "Tomorrow", out.Days[1].Day.Label)
	for _, d := range out.Days {
		assert.NotEmpty(t, d.RuleID, d.Day.Label)
	}

	again, err := svc.Outlook(context.Background(), "mukono", 0)
	require.NoError(t, err)
	assert.Equal(t, out.Days, again.Days, "districts are case-insensitive")
}
