// Package advisor runs chat conversations on top of scan sessions. Each
// conversation owns one session; a question is captured as text input,
// classified, and answered from the resulting artifact.
package advisor

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"akwana/internal/domain"
	"akwana/internal/services/scansession"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Language tags a chat message. Questions are matched after glossary
// folding, so any of these may be asked in; answers are rendered from the
// English catalog and carry the question's tag.
type Language string

const (
	LangEnglish Language = "en"
	LangLuganda Language = "lg"
	LangSwahili Language = "sw"
)

func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return LangEnglish, nil
	case LangEnglish, LangLuganda, LangSwahili:
		return l, nil
	}
	return "", fmt.Errorf("%w: unsupported language %q", domain.ErrValidation, s)
}

// Suggestions are offered as follow-ups after every answer.
var Suggestions = []string{
	"Tell me more",
	"What about costs?",
	"Alternative methods?",
	"Local suppliers?",
}

type Message struct {
	ID          string    `json:"id"`
	Role        Role      `json:"role"`
	Content     string    `json:"content"`
	Language    Language  `json:"language"`
	ArtifactID  string    `json:"artifact_id,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	At          time.Time `json:"at"`
}

type Reply struct {
	Message  Message         `json:"message"`
	Artifact domain.Artifact `json:"artifact"`
}

// Sessions hands out fresh scan sessions.
type Sessions interface {
	Start() (*scansession.Session, error)
}

type conversation struct {
	session  *scansession.Session
	messages []Message
	pending  bool
}

type Service struct {
	sessions Sessions
	logger   *zap.Logger
	now      func() time.Time

	mu    sync.Mutex
	convs map[string]*conversation
}

func New(sessions Sessions, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sessions: sessions,
		logger:   logger.Named("advisor"),
		now:      func() time.Time { return time.Now().UTC() },
		convs:    make(map[string]*conversation),
	}
}

// Ask answers an English question. See AskIn.
func (s *Service) Ask(ctx context.Context, id, text string) (Reply, error) {
	return s.AskIn(ctx, id, LangEnglish, text)
}

// AskIn answers text in conversation id, creating the conversation on first
// use. It blocks until the answer is ready or ctx is done. A second question
// on the same conversation while one is pending fails with ErrBusy.
func (s *Service) AskIn(ctx context.Context, id string, lang Language, text string) (Reply, error) {
	if strings.TrimSpace(id) == "" {
		return Reply{}, fmt.Errorf("%w: conversation id is required", domain.ErrValidation)
	}
	lang, err := ParseLanguage(string(lang))
	if err != nil {
		return Reply{}, err
	}
	in, err := domain.NewTextInput(text)
	if err != nil {
		return Reply{}, err
	}

	conv, err := s.begin(id, lang, text)
	if err != nil {
		return Reply{}, err
	}
	defer s.finish(conv)

	sess := conv.session
	if sess.State() != scansession.StateIdle {
		sess.Reset()
	}
	if _, err := sess.Capture(in); err != nil {
		return Reply{}, err
	}
	if _, err := sess.Submit(); err != nil {
		return Reply{}, err
	}

	snap, err := sess.Await(ctx)
	if err != nil {
		if _, cerr := sess.Cancel(); cerr != nil {
			s.logger.Debug("cancel after abandoned wait", zap.Error(cerr))
		}
		return Reply{}, err
	}
	switch {
	case snap.State == scansession.StateCompleted && snap.Artifact != nil:
	case snap.Failure != nil:
		return Reply{}, failureErr(*snap.Failure)
	default:
		return Reply{}, fmt.Errorf("%w: session ended in %s", domain.ErrPrecondition, snap.State)
	}

	a := *snap.Artifact
	msg := Message{
		ID:          uuid.NewString(),
		Role:        RoleAssistant,
		Content:     Render(a),
		Language:    lang,
		ArtifactID:  a.ID,
		Suggestions: append([]string(nil), Suggestions...),
		At:          s.now(),
	}
	s.mu.Lock()
	conv.messages = append(conv.messages, msg)
	s.mu.Unlock()
	return Reply{Message: msg, Artifact: a}, nil
}

func (s *Service) begin(id string, lang Language, text string) (*conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.convs[id]
	if !ok {
		sess, err := s.sessions.Start()
		if err != nil {
			return nil, err
		}
		conv = &conversation{session: sess}
		s.convs[id] = conv
	}
	if conv.pending {
		return nil, domain.ErrBusy
	}
	conv.pending = true
	conv.messages = append(conv.messages, Message{
		ID:       uuid.NewString(),
		Role:     RoleUser,
		Content:  text,
		Language: lang,
		At:       s.now(),
	})
	return conv, nil
}

func (s *Service) finish(conv *conversation) {
	s.mu.Lock()
	conv.pending = false
	s.mu.Unlock()
}

// Conversation returns the messages exchanged so far.
func (s *Service) Conversation(id string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.convs[id]
	if !ok {
		return nil, fmt.Errorf("conversation %s: %w", id, domain.ErrNotFound)
	}
	out := make([]Message, len(conv.messages))
	copy(out, conv.messages)
	return out, nil
}

// Render formats an artifact as a chat answer.
func Render(a domain.Artifact) string {
	var b strings.Builder
	b.WriteString(a.Title)
	b.WriteString(":")
	for i, r := range a.Recommendations {
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(") ")
		b.WriteString(strings.TrimSuffix(r, "."))
		b.WriteString(".")
	}
	if a.CostEstimate != nil {
		b.WriteString(" Treatment cost: ~")
		b.WriteString(a.CostEstimate.String())
		b.WriteString(".")
	}
	return b.String()
}

func failureErr(f domain.Failure) error {
	switch f.Kind {
	case domain.FailureTimeout:
		return fmt.Errorf("%w: %s", domain.ErrTimeout, f.Reason)
	case domain.FailureCapability:
		return fmt.Errorf("%w: %s", domain.ErrCapability, f.Reason)
	default:
		return fmt.Errorf("%w: %s", domain.ErrPrecondition, f.Reason)
	}
}
