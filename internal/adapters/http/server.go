package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"akwana/internal/api"
	"akwana/internal/domain"
	"akwana/internal/ports"
	"akwana/internal/services/advisor"
	"akwana/internal/services/scansession"
	"akwana/internal/services/weather"
)

const (
	defaultWaitTimeout = 30 * time.Second
	maxBodyBytes       = 8 << 20
)

type Sessions interface {
	Start() (*scansession.Session, error)
	Get(id string) (*scansession.Session, error)
	Close(id string) error
}

type Advisories interface {
	Latest() (domain.Artifact, bool)
	History() []domain.Artifact
	Retention() int
}

type Catalog interface {
	Version() string
	All() ([]domain.Rule, error)
}

type Advisor interface {
	AskIn(ctx context.Context, conversationID string, lang advisor.Language, text string) (advisor.Reply, error)
	Conversation(id string) ([]advisor.Message, error)
}

type Weather interface {
	Outlook(ctx context.Context, district string, days int) (weather.Outlook, error)
}

// Server implements api.StrictServerInterface.
type Server struct {
	sessions   Sessions
	advisories Advisories
	artifacts  ports.ArtifactRepository
	catalog    Catalog
	advisor    Advisor
	weather    Weather
	metrics    http.Handler
	logLevel   http.Handler
	logger     *zap.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

// Deps wires a Server. Metrics and LogLevel are mounted beside the API
// routes when set.
type Deps struct {
	Sessions   Sessions
	Advisories Advisories
	Artifacts  ports.ArtifactRepository
	Catalog    Catalog
	Advisor    Advisor
	Weather    Weather
	Metrics    http.Handler
	LogLevel   http.Handler
	Logger     *zap.Logger
}

func New(d Deps) *Server {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		sessions:   d.Sessions,
		advisories: d.Advisories,
		artifacts:  d.Artifacts,
		catalog:    d.Catalog,
		advisor:    d.Advisor,
		weather:    d.Weather,
		metrics:    d.Metrics,
		logLevel:   d.LogLevel,
		logger:     logger.Named("http"),
	}
}

// Routes returns a chi.Router with the generated API handlers mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxBodyBytes))
	r.Use(s.accessLog)

	strict := api.NewStrictHandlerWithOptions(s, []api.StrictMiddlewareFunc{s.operationLog}, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	api.HandlerWithOptions(strict, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.requestError,
	})

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	if s.logLevel != nil {
		r.Method(http.MethodGet, "/loglevel", s.logLevel)
		r.Method(http.MethodPut, "/loglevel", s.logLevel)
	}
	return r
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func (s *Server) operationLog(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		resp, err := f(ctx, w, r, request)
		if err != nil {
			s.logger.Debug("operation failed", zap.String("operation", operationID), zap.Error(err))
		}
		return resp, err
	}
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) GetCatalog(ctx context.Context, _ api.GetCatalogRequestObject) (api.GetCatalogResponseObject, error) {
	rules, err := s.catalog.All()
	if err != nil {
		return nil, err
	}
	out := api.Catalog{Version: s.catalog.Version(), Rules: make([]api.CatalogRule, 0, len(rules))}
	for _, r := range rules {
		out.Rules = append(out.Rules, ruleView(r))
	}
	return api.GetCatalog200JSONResponse(out), nil
}

func (s *Server) CreateSession(ctx context.Context, _ api.CreateSessionRequestObject) (api.CreateSessionResponseObject, error) {
	sess, err := s.sessions.Start()
	if err != nil {
		return nil, err
	}
	return api.CreateSession201JSONResponse(sessionView(sess.Snapshot())), nil
}

func (s *Server) GetSession(ctx context.Context, req api.GetSessionRequestObject) (api.GetSessionResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.GetSession404JSONResponse(errorBody(err)), nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetSession200JSONResponse(sessionView(sess.Snapshot())), nil
}

func (s *Server) DeleteSession(ctx context.Context, req api.DeleteSessionRequestObject) (api.DeleteSessionResponseObject, error) {
	err := s.sessions.Close(req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.DeleteSession404JSONResponse(errorBody(err)), nil
	}
	if err != nil {
		return nil, err
	}
	return api.DeleteSession204Response{}, nil
}

func (s *Server) CaptureInput(ctx context.Context, req api.CaptureInputRequestObject) (api.CaptureInputResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.CaptureInput404JSONResponse(errorBody(err)), nil
	}
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return api.CaptureInput400JSONResponse{Error: "missing body"}, nil
	}
	in, err := captureInput(*req.Body)
	if err != nil {
		return api.CaptureInput400JSONResponse(errorBody(err)), nil
	}
	if _, err := sess.Capture(in); err != nil {
		if isRejectedTransition(err) {
			return api.CaptureInput409JSONResponse(conflictBody(err, sess.State())), nil
		}
		return nil, err
	}
	return api.CaptureInput200JSONResponse(sessionView(sess.Snapshot())), nil
}

// SubmitSession starts classification. With wait set it blocks until the
// session settles or timeout seconds pass, whichever comes first.
func (s *Server) SubmitSession(ctx context.Context, req api.SubmitSessionRequestObject) (api.SubmitSessionResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.SubmitSession404JSONResponse(errorBody(err)), nil
	}
	if err != nil {
		return nil, err
	}
	if _, err := sess.Submit(); err != nil {
		if isRejectedTransition(err) {
			return api.SubmitSession409JSONResponse(conflictBody(err, sess.State())), nil
		}
		return nil, err
	}
	snap, settled := settle(ctx, sess, req.Params.Wait, req.Params.Timeout)
	if settled {
		return api.SubmitSession200JSONResponse(sessionView(snap)), nil
	}
	return api.SubmitSession202JSONResponse(sessionView(snap)), nil
}

func (s *Server) RetrySession(ctx context.Context, req api.RetrySessionRequestObject) (api.RetrySessionResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.RetrySession404JSONResponse(errorBody(err)), nil
	}
	if err != nil {
		return nil, err
	}
	if _, err := sess.Retry(); err != nil {
		if isRejectedTransition(err) {
			return api.RetrySession409JSONResponse(conflictBody(err, sess.State())), nil
		}
		return nil, err
	}
	snap, settled := settle(ctx, sess, req.Params.Wait, req.Params.Timeout)
	if settled {
		return api.RetrySession200JSONResponse(sessionView(snap)), nil
	}
	return api.RetrySession202JSONResponse(sessionView(snap)), nil
}

// settle waits for sess to leave the in-flight states when wait is set and
// reports whether it did. An unsettled session is polled via GET /sessions/{id}.
func settle(ctx context.Context, sess *scansession.Session, wait *bool, timeout *int) (scansession.Snapshot, bool) {
	if wait == nil || !*wait {
		return sess.Snapshot(), false
	}
	d := defaultWaitTimeout
	if timeout != nil && *timeout > 0 {
		d = time.Duration(*timeout) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	snap, err := sess.Await(ctx)
	return snap, err == nil
}

func (s *Server) CancelSession(ctx context.Context, req api.CancelSessionRequestObject) (api.CancelSessionResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.CancelSession404JSONResponse(errorBody(err)), nil
	}
	if err != nil {
		return nil, err
	}
	if _, err := sess.Cancel(); err != nil {
		if isRejectedTransition(err) {
			return api.CancelSession409JSONResponse(conflictBody(err, sess.State())), nil
		}
		return nil, err
	}
	return api.CancelSession200JSONResponse(sessionView(sess.Snapshot())), nil
}

func (s *Server) ResetSession(ctx context.Context, req api.ResetSessionRequestObject) (api.ResetSessionResponseObject, error) {
	sess, err := s.sessions.Get(req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.ResetSession404JSONResponse(errorBody(err)), nil
	}
	if err != nil {
		return nil, err
	}
	sess.Reset()
	return api.ResetSession200JSONResponse(sessionView(sess.Snapshot())), nil
}

func (s *Server) GetLatestAdvisory(ctx context.Context, _ api.GetLatestAdvisoryRequestObject) (api.GetLatestAdvisoryResponseObject, error) {
	a, ok := s.advisories.Latest()
	if !ok {
		return api.GetLatestAdvisory404JSONResponse{Error: "no advisories yet"}, nil
	}
	return api.GetLatestAdvisory200JSONResponse(artifactView(a)), nil
}

func (s *Server) GetAdvisoryHistory(ctx context.Context, _ api.GetAdvisoryHistoryRequestObject) (api.GetAdvisoryHistoryResponseObject, error) {
	hist := s.advisories.History()
	out := api.AdvisoryHistory{Retention: s.advisories.Retention(), Items: make([]api.Artifact, 0, len(hist))}
	for _, a := range hist {
		out.Items = append(out.Items, artifactView(a))
	}
	return api.GetAdvisoryHistory200JSONResponse(out), nil
}

func (s *Server) GetArtifact(ctx context.Context, req api.GetArtifactRequestObject) (api.GetArtifactResponseObject, error) {
	a, err := s.artifacts.Load(ctx, req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.GetArtifact404JSONResponse(errorBody(err)), nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetArtifact200JSONResponse(artifactView(a)), nil
}

func (s *Server) PostAdvisorMessage(ctx context.Context, req api.PostAdvisorMessageRequestObject) (api.PostAdvisorMessageResponseObject, error) {
	if req.Body == nil {
		return api.PostAdvisorMessage400JSONResponse{Error: "missing body"}, nil
	}
	var lang advisor.Language
	if req.Body.Language != nil {
		lang = advisor.Language(*req.Body.Language)
	}
	reply, err := s.advisor.AskIn(ctx, req.Conversation, lang, req.Body.Text)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrBusy):
		return api.PostAdvisorMessage409JSONResponse(errorBody(err)), nil
	case errors.Is(err, domain.ErrValidation):
		return api.PostAdvisorMessage400JSONResponse(errorBody(err)), nil
	default:
		return nil, err
	}
	return api.PostAdvisorMessage200JSONResponse{
		Message:  messageView(reply.Message),
		Artifact: artifactView(reply.Artifact),
	}, nil
}

func (s *Server) GetConversation(ctx context.Context, req api.GetConversationRequestObject) (api.GetConversationResponseObject, error) {
	msgs, err := s.advisor.Conversation(req.Conversation)
	if errors.Is(err, domain.ErrNotFound) {
		return api.GetConversation404JSONResponse(errorBody(err)), nil
	}
	if err != nil {
		return nil, err
	}
	out := api.Conversation{Messages: make([]api.ChatMessage, 0, len(msgs))}
	for _, m := range msgs {
		out.Messages = append(out.Messages, messageView(m))
	}
	return api.GetConversation200JSONResponse(out), nil
}

func (s *Server) GetWeather(ctx context.Context, req api.GetWeatherRequestObject) (api.GetWeatherResponseObject, error) {
	var days int
	if req.Params.Days != nil {
		days = *req.Params.Days
	}
	out, err := s.weather.Outlook(ctx, req.Params.District, days)
	if errors.Is(err, domain.ErrValidation) {
		return api.GetWeather400JSONResponse(errorBody(err)), nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetWeather200JSONResponse(outlookView(out)), nil
}
