package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"akwana/internal/adapters/memory"
	"akwana/internal/adapters/simulated"
	"akwana/internal/api"
	"akwana/internal/catalog"
	"akwana/internal/domain"
	"akwana/internal/metrics"
	"akwana/internal/services/advisor"
	"akwana/internal/services/advisory"
	"akwana/internal/services/classifier"
	"akwana/internal/services/recommend"
	"akwana/internal/services/scanner"
	"akwana/internal/services/weather"
	"akwana/internal/workers/scanrunner"
)

type testServer struct {
	*httptest.Server
	repo  *memory.Artifacts
	level zap.AtomicLevel
}

func newTestServer(t *testing.T, delay time.Duration) *testServer {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	cls := classifier.New(cat, simulated.New(delay))

	ctx, cancel := context.WithCancel(context.Background())
	runner := scanrunner.New(cls, scanrunner.Options{Workers: 2, Timeout: 2 * time.Second}, nil)
	runner.Start(ctx)

	sink := advisory.NewSink(10, nil)
	repo := memory.NewArtifacts(0)
	sink.Subscribe("repo", func(a domain.Artifact) { _ = repo.Save(context.Background(), a) })
	m := metrics.New()
	sink.Subscribe("metrics", m.Publish)
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	reg := scanner.New(runner, recommend.New(), sink, 16, nil)
	srv := New(Deps{
		Sessions:   reg,
		Advisories: sink,
		Artifacts:  repo,
		Catalog:    cat,
		Advisor:    advisor.New(reg, nil),
		Weather:    weather.New(cat, simulated.NewForecast(nil), nil),
		Metrics:    m.Handler(),
		LogLevel:   level,
	})
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(func() {
		ts.Close()
		cancel()
		runner.Wait()
	})
	return &testServer{Server: ts, repo: repo, level: level}
}

func (ts *testServer) do(t *testing.T, method, path string, body any, out any) int {
	t.Helper()
	var raw []byte
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		raw = b
	}
	return ts.doRaw(t, method, path, raw, out)
}

func (ts *testServer) doRaw(t *testing.T, method, path string, body []byte, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (ts *testServer) newSession(t *testing.T) string {
	t.Helper()
	var snap api.Session
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/sessions", nil, &snap))
	require.Equal(t, api.SessionStateIdle, snap.State)
	return snap.Id
}

func ptr[T any](v T) *T { return &v }

func textCapture(text string) api.CaptureRequest {
	return api.CaptureRequest{Kind: api.InputKindText, Text: ptr(text)}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, 0)
	var body api.Health
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/healthz", nil, &body))
	assert.Equal(t, "ok", body.Status)
}

func TestTextScan_WaitReturnsArtifact(t *testing.T) {
	ts := newTestServer(t, 0)
	id := ts.newSession(t)

	var snap api.Session
	code := ts.do(t, http.MethodPost, "/sessions/"+id+"/capture", textCapture("My tomatoes have blight"), &snap)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.SessionStateCapturing, snap.State)
	require.NotNil(t, snap.InputKind)
	assert.Equal(t, api.InputKindText, *snap.InputKind)

	code = ts.do(t, http.MethodPost, "/sessions/"+id+"/submit?wait=true&timeout=5", nil, &snap)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, api.SessionStateCompleted, snap.State)
	require.NotNil(t, snap.Artifact)
	require.NotNil(t, snap.Artifact.MatchedRuleId)
	assert.Equal(t, "early-blight", *snap.Artifact.MatchedRuleId)
	assert.Equal(t, "Remove affected leaves immediately", snap.Artifact.Recommendations[0])

	var latest api.Artifact
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/advisories/latest", nil, &latest))
	assert.Equal(t, snap.Artifact.Id, latest.Id)

	var stored api.Artifact
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/artifacts/"+latest.Id, nil, &stored))
	assert.Equal(t, latest.Id, stored.Id)
	require.NotNil(t, stored.CostEstimate)
	assert.Equal(t, "UGX", stored.CostEstimate.Currency)
}

func TestImageScan_Soil(t *testing.T) {
	ts := newTestServer(t, 0)
	id := ts.newSession(t)

	req := api.CaptureRequest{
		Kind:        api.InputKindImage,
		ScanType:    ptr(api.ScanTypeSoil),
		ImageBase64: ptr([]byte{0xff, 0xd8, 0xff}),
		ContentType: ptr("image/jpeg"),
	}
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/sessions/"+id+"/capture", req, nil))

	var snap api.Session
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/sessions/"+id+"/submit?wait=1", nil, &snap))
	require.NotNil(t, snap.Artifact)
	assert.Equal(t, "soil-fertility", *snap.Artifact.MatchedRuleId)
	assert.InDelta(t, 92, snap.Artifact.Confidence, 0)
}

func TestSubmit_BusyIsConflict(t *testing.T) {
	ts := newTestServer(t, time.Second)
	id := ts.newSession(t)
	req := api.CaptureRequest{Kind: api.InputKindImage, ScanType: ptr(api.ScanTypeCrop), ImageBase64: ptr([]byte{1})}
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/sessions/"+id+"/capture", req, nil))

	var snap api.Session
	require.Equal(t, http.StatusAccepted, ts.do(t, http.MethodPost, "/sessions/"+id+"/submit", nil, &snap))
	assert.Equal(t, api.SessionStateAnalyzing, snap.State)

	var body api.Error
	require.Equal(t, http.StatusConflict, ts.do(t, http.MethodPost, "/sessions/"+id+"/submit", nil, &body))
	require.NotNil(t, body.State)
	assert.Equal(t, api.SessionStateAnalyzing, *body.State)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/sessions/"+id+"/cancel", nil, &snap))
	assert.Equal(t, api.SessionStateIdle, snap.State)
}

func TestSubmit_ShortWaitReturnsAccepted(t *testing.T) {
	ts := newTestServer(t, 3*time.Second)
	id := ts.newSession(t)
	req := api.CaptureRequest{Kind: api.InputKindImage, ScanType: ptr(api.ScanTypeCrop), ImageBase64: ptr([]byte{1})}
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/sessions/"+id+"/capture", req, nil))

	var snap api.Session
	require.Equal(t, http.StatusAccepted, ts.do(t, http.MethodPost, "/sessions/"+id+"/submit?wait=true&timeout=1", nil, &snap))
	assert.Contains(t, []api.SessionState{api.SessionStateSubmitted, api.SessionStateAnalyzing}, snap.State)
}

func TestSubmit_WithoutInputIsConflict(t *testing.T) {
	ts := newTestServer(t, 0)
	id := ts.newSession(t)
	var body api.Error
	assert.Equal(t, http.StatusConflict, ts.do(t, http.MethodPost, "/sessions/"+id+"/submit", nil, &body))
	require.NotNil(t, body.State)
	assert.Equal(t, api.SessionStateIdle, *body.State)

	assert.Equal(t, http.StatusConflict, ts.do(t, http.MethodPost, "/sessions/"+id+"/retry", nil, nil))
}

func TestSubmit_BadQueryParameters(t *testing.T) {
	ts := newTestServer(t, 0)
	id := ts.newSession(t)

	var body api.Error
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/sessions/"+id+"/submit?wait=soon", nil, &body))
	assert.Contains(t, body.Error, "wait")
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/sessions/"+id+"/retry?timeout=abc", nil, nil))
}

func TestCapture_Validation(t *testing.T) {
	ts := newTestServer(t, 0)
	id := ts.newSession(t)
	path := "/sessions/" + id + "/capture"

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, path, textCapture("  "), nil))
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, path, api.CaptureRequest{Kind: api.InputKindImage}, nil))
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, path, map[string]string{"kind": "video"}, nil))
	assert.Equal(t, http.StatusBadRequest, ts.doRaw(t, http.MethodPost, path, []byte(`{"kind":`), nil))
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodPost, "/sessions/missing/capture", textCapture("maize"), nil))
}

func TestNotFound(t *testing.T) {
	ts := newTestServer(t, 0)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/sessions/missing", nil, nil))
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/advisories/latest", nil, nil))
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/artifacts/missing", nil, nil))
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/advisor/nobody", nil, nil))
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodPost, "/sessions/missing/reset", nil, nil))
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodDelete, "/sessions/missing", nil, nil))
}

func TestResetKeepsHistory(t *testing.T) {
	ts := newTestServer(t, 0)
	id := ts.newSession(t)
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/sessions/"+id+"/capture", textCapture("coffee"), nil))
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/sessions/"+id+"/submit?wait=true", nil, nil))

	var snap api.Session
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/sessions/"+id+"/reset", nil, &snap))
	assert.Equal(t, api.SessionStateIdle, snap.State)
	assert.Nil(t, snap.Artifact)
	require.NotNil(t, snap.LastCompleted)

	var hist api.AdvisoryHistory
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/advisories/history", nil, &hist))
	assert.Equal(t, 10, hist.Retention)
	require.Len(t, hist.Items, 1)
	assert.Equal(t, snap.LastCompleted.Id, hist.Items[0].Id)

	assert.Equal(t, http.StatusNoContent, ts.do(t, http.MethodDelete, "/sessions/"+id, nil, nil))
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/sessions/"+id, nil, nil))
}

func TestAdvisorChat(t *testing.T) {
	ts := newTestServer(t, 0)
	var reply api.AdvisorReply
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/advisor/farmer-7/messages", api.MessageRequest{Text: "How do I improve soil fertility?"}, &reply))
	assert.Equal(t, "soil-fertility", *reply.Artifact.MatchedRuleId)
	require.NotNil(t, reply.Message.Suggestions)
	assert.Equal(t, advisor.Suggestions, *reply.Message.Suggestions)
	assert.Equal(t, api.LanguageEn, reply.Message.Language)

	var conv api.Conversation
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/advisor/farmer-7", nil, &conv))
	assert.Len(t, conv.Messages, 2)

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/advisor/farmer-7/messages", api.MessageRequest{Text: ""}, nil))
}

func TestAdvisorChat_Language(t *testing.T) {
	ts := newTestServer(t, 0)
	var reply api.AdvisorReply
	req := api.MessageRequest{Text: "pests on my cassava", Language: ptr(api.LanguageLg)}
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/advisor/farmer-8/messages", req, &reply))
	assert.Equal(t, api.LanguageLg, reply.Message.Language)

	var conv api.Conversation
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/advisor/farmer-8", nil, &conv))
	require.Len(t, conv.Messages, 2)
	for _, m := range conv.Messages {
		assert.Equal(t, api.LanguageLg, m.Language, string(m.Role))
	}

	var body api.Error
	bad := api.MessageRequest{Text: "maize", Language: ptr(api.Language("fr"))}
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/advisor/farmer-8/messages", bad, &body))
	assert.Contains(t, body.Error, "language")
}

func TestWeather(t *testing.T) {
	ts := newTestServer(t, 0)
	var out api.WeatherOutlook
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/weather?district=Mukono&days=7", nil, &out))
	assert.Equal(t, "Mukono", out.District)
	require.Len(t, out.Days, 7)
	assert.Equal(t, "Today", out.Days[0].Day.Label)

	kinds := map[api.AlertType]int{}
	for _, a := range out.Alerts {
		kinds[a.Type]++
	}
	// A full week of the simulated pattern always holds one heavy-rain day.
	assert.Equal(t, 1, kinds[api.AlertTypeRain])
	assert.Equal(t, 1, kinds[api.AlertTypePest])
	for _, d := range out.Days {
		if d.Risk == api.RainRiskHigh {
			require.NotNil(t, d.RuleId)
			assert.Equal(t, "heavy-rain", *d.RuleId)
		}
	}

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/weather?district=Gulu", nil, &out))
	assert.Len(t, out.Days, weather.DefaultDays)
}

func TestWeather_Validation(t *testing.T) {
	ts := newTestServer(t, 0)
	var body api.Error
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/weather", nil, &body))
	assert.Contains(t, body.Error, "district")
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/weather?district=Mukono&days=30", nil, nil))
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/weather?district=Mukono&days=abc", nil, nil))
}

func TestCatalogAndMetrics(t *testing.T) {
	ts := newTestServer(t, 0)
	var cat api.Catalog
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/catalog", nil, &cat))
	assert.Equal(t, "2025.03", cat.Version)
	require.NotEmpty(t, cat.Rules)
	assert.Equal(t, "early-blight", cat.Rules[0].Id)
	require.NotNil(t, cat.Rules[0].Cost)
	assert.Equal(t, "UGX 25,000 per acre", *cat.Rules[0].Cost)

	var withRain int
	for _, r := range cat.Rules {
		if r.Rainfall != nil {
			withRain++
		}
	}
	assert.Equal(t, 3, withRain)

	resp, err := ts.Client().Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogLevel_GetAndPut(t *testing.T) {
	ts := newTestServer(t, 0)
	var lvl struct {
		Level string `json:"level"`
	}
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/loglevel", nil, &lvl))
	assert.Equal(t, "info", lvl.Level)

	require.Equal(t, http.StatusOK, ts.doRaw(t, http.MethodPut, "/loglevel", []byte(`{"level":"debug"}`), &lvl))
	assert.Equal(t, "debug", lvl.Level)
	assert.Equal(t, zapcore.DebugLevel, ts.level.Level())

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/loglevel", strings.NewReader(`{"level":"loud"}`))
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, zapcore.DebugLevel, ts.level.Level())
}
