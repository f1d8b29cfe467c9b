package httpadapter

import (
	"fmt"

	"akwana/internal/api"
	"akwana/internal/domain"
	"akwana/internal/services/advisor"
	"akwana/internal/services/scansession"
	"akwana/internal/services/weather"
)

// Conversions between domain values and the generated API shapes.

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func moneyView(m *domain.Money) *api.Money {
	if m == nil {
		return nil
	}
	return &api.Money{Amount: m.Amount.String(), Currency: m.Currency, Per: optString(m.Per)}
}

func artifactView(a domain.Artifact) api.Artifact {
	return api.Artifact{
		Id:              a.ID,
		InputRef:        a.InputRef,
		InputKind:       api.InputKind(a.InputKind),
		MatchedRuleId:   optString(a.MatchedRuleID),
		Fallback:        a.Fallback,
		Title:           a.Title,
		Status:          api.Status(a.Status),
		Confidence:      a.Confidence,
		Issues:          orEmpty(a.Issues),
		Recommendations: orEmpty(a.Recommendations),
		CostEstimate:    moneyView(a.CostEstimate),
		CreatedAt:       a.CreatedAt,
	}
}

func artifactPtr(a *domain.Artifact) *api.Artifact {
	if a == nil {
		return nil
	}
	v := artifactView(*a)
	return &v
}

func sessionView(snap scansession.Snapshot) api.Session {
	out := api.Session{
		Id:            snap.ID,
		State:         api.SessionState(snap.State),
		Artifact:      artifactPtr(snap.Artifact),
		LastCompleted: artifactPtr(snap.LastCompleted),
		Attempts:      snap.Attempts,
		UpdatedAt:     snap.UpdatedAt,
	}
	if snap.InputKind != "" {
		k := api.InputKind(snap.InputKind)
		out.InputKind = &k
	}
	if snap.Failure != nil {
		out.Failure = &api.Failure{Kind: api.FailureKind(snap.Failure.Kind), Reason: snap.Failure.Reason}
	}
	return out
}

func ruleView(r domain.Rule) api.CatalogRule {
	v := api.CatalogRule{
		Id:              r.ID,
		Title:           r.Title,
		Tags:            orEmpty(r.DomainTags),
		Keywords:        orEmpty(r.Keywords),
		Severity:        api.Status(r.Severity),
		Confidence:      r.ConfidenceBase,
		Recommendations: orEmpty(r.Recommendations),
	}
	if r.CostEstimate != nil {
		v.Cost = optString(r.CostEstimate.String())
	}
	if r.Rainfall != nil {
		v.Rainfall = &api.RainfallRange{Above: r.Rainfall.Above, AtMost: r.Rainfall.AtMost}
	}
	return v
}

func messageView(m advisor.Message) api.ChatMessage {
	v := api.ChatMessage{
		Id:         m.ID,
		Role:       api.Role(m.Role),
		Content:    m.Content,
		Language:   api.Language(m.Language),
		ArtifactId: optString(m.ArtifactID),
		At:         m.At,
	}
	if len(m.Suggestions) > 0 {
		s := m.Suggestions
		v.Suggestions = &s
	}
	return v
}

func outlookView(o weather.Outlook) api.WeatherOutlook {
	out := api.WeatherOutlook{
		District: o.District,
		Days:     make([]api.DayAdvisory, 0, len(o.Days)),
		Alerts:   make([]api.WeatherAlert, 0, len(o.Alerts)),
	}
	for _, d := range o.Days {
		out.Days = append(out.Days, api.DayAdvisory{
			Day: api.ForecastDay{
				Date:       d.Day.Date,
				Label:      d.Day.Label,
				Condition:  d.Day.Condition,
				TempMinC:   d.Day.TempMinC,
				TempMaxC:   d.Day.TempMaxC,
				RainfallMm: d.Day.RainfallMM,
			},
			Risk:     api.RainRisk(d.Risk),
			RuleId:   optString(d.RuleID),
			Status:   api.Status(d.Status),
			Advisory: d.Advisory,
		})
	}
	for _, a := range o.Alerts {
		out.Alerts = append(out.Alerts, api.WeatherAlert{
			Type:     api.AlertType(a.Type),
			Severity: api.RainRisk(a.Severity),
			Message:  a.Message,
			Timing:   a.Timing,
		})
	}
	return out
}

func captureInput(req api.CaptureRequest) (domain.Input, error) {
	switch req.Kind {
	case api.InputKindText:
		var text string
		if req.Text != nil {
			text = *req.Text
		}
		return domain.NewTextInput(text)
	case api.InputKindImage:
		desc := domain.ImageDescriptor{}
		if req.ImageBase64 != nil {
			desc.Data = *req.ImageBase64
		}
		if req.ContentType != nil {
			desc.ContentType = *req.ContentType
		}
		if req.ScanType != nil {
			desc.ScanType = domain.ScanType(*req.ScanType)
		}
		if req.Metadata != nil {
			desc.Metadata = *req.Metadata
		}
		return domain.NewImageInput(desc)
	default:
		return domain.Input{}, fmt.Errorf("%w: kind must be text or image", domain.ErrValidation)
	}
}
