// Package weather turns a district forecast into per-day farming advisories
// and rain and pest alerts. Each day is matched against the catalog's
// weather rules by rainfall, first range holding the day's total wins.
package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"akwana/internal/domain"
	"akwana/internal/ports"
)

const (
	DefaultDays = 5
	MaxDays     = 7
)

type Catalog interface {
	Lookup(tag string) ([]domain.Rule, error)
}

type DayAdvisory struct {
	Day      domain.ForecastDay `json:"day"`
	Risk     domain.RainRisk    `json:"risk"`
	RuleID   string             `json:"rule_id,omitempty"`
	Status   domain.Status      `json:"status"`
	Advisory string             `json:"advisory"`
}

type AlertType string

const (
	AlertRain AlertType = "rain"
	AlertPest AlertType = "pest"
)

type Alert struct {
	Type     AlertType       `json:"type"`
	Severity domain.RainRisk `json:"severity"`
	Message  string          `json:"message"`
	Timing   string          `json:"timing"`
}

type Outlook struct {
	District string        `json:"district"`
	Days     []DayAdvisory `json:"days"`
	Alerts   []Alert       `json:"alerts"`
}

type Service struct {
	catalog Catalog
	source  ports.ForecastSource
	logger  *zap.Logger
}

func New(catalog Catalog, source ports.ForecastSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: catalog, source: source, logger: logger}
}

// Outlook forecasts days days (DefaultDays when zero) for district.
func (s *Service) Outlook(ctx context.Context, district string, days int) (Outlook, error) {
	district = strings.TrimSpace(district)
	if district == "" {
		return Outlook{}, fmt.Errorf("%w: district is required", domain.ErrValidation)
	}
	if days == 0 {
		days = DefaultDays
	}
	if days < 1 || days > MaxDays {
		return Outlook{}, fmt.Errorf("%w: days must be between 1 and %d", domain.ErrValidation, MaxDays)
	}

	rules, err := s.catalog.Lookup(domain.TagWeatherRisk)
	if err != nil {
		return Outlook{}, err
	}
	forecast, err := s.source.Forecast(ctx, district, days)
	if err != nil {
		return Outlook{}, sourceErr(err)
	}

	out := Outlook{District: district, Days: make([]DayAdvisory, 0, len(forecast)), Alerts: []Alert{}}
	wet := false
	for i, day := range forecast {
		adv := advise(rules, day)
		out.Days = append(out.Days, adv)
		if adv.Risk != domain.RainLow {
			wet = true
		}
		if adv.Risk == domain.RainHigh {
			out.Alerts = append(out.Alerts, Alert{
				Type:     AlertRain,
				Severity: domain.RainHigh,
				Message:  "Heavy rainfall expected " + day.Label,
				Timing:   timing(i),
			})
		}
	}
	if wet {
		out.Alerts = append(out.Alerts, Alert{
			Type:     AlertPest,
			Severity: domain.RainMedium,
			Message:  "Increased pest activity after rain",
			Timing:   "This week",
		})
	}
	s.logger.Debug("weather outlook",
		zap.String("district", district),
		zap.Int("days", len(out.Days)),
		zap.Int("alerts", len(out.Alerts)))
	return out, nil
}

func advise(rules []domain.Rule, day domain.ForecastDay) DayAdvisory {
	adv := DayAdvisory{Day: day, Risk: domain.RainRiskFor(day.RainfallMM), Status: domain.StatusHealthy}
	for _, r := range rules {
		if !r.MatchesRainfall(day.RainfallMM) {
			continue
		}
		adv.RuleID = r.ID
		adv.Status = r.Severity
		if len(r.Recommendations) > 0 {
			adv.Advisory = r.Recommendations[0]
		}
		return adv
	}
	adv.Advisory = "Monitor your crops regularly"
	return adv
}

func timing(i int) string {
	switch i {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	}
	return fmt.Sprintf("In %d days", i)
}

func sourceErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrCapability), errors.Is(err, domain.ErrTimeout):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("forecast: %w", domain.ErrTimeout)
	default:
		return fmt.Errorf("forecast: %w: %v", domain.ErrCapability, err)
	}
}
