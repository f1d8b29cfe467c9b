// Package archiver copies published artifacts into an ArtifactRepository on
// its own goroutine so slow storage never holds up a session transition.
package archiver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"akwana/internal/domain"
	"akwana/internal/ports"
)

const (
	DefaultBuffer      = 128
	defaultSaveTimeout = 5 * time.Second
)

type Archiver struct {
	repo    ports.ArtifactRepository
	queue   chan domain.Artifact
	timeout time.Duration
	logger  *zap.Logger
}

func New(repo ports.ArtifactRepository, buffer int, logger *zap.Logger) *Archiver {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Archiver{
		repo:    repo,
		queue:   make(chan domain.Artifact, buffer),
		timeout: defaultSaveTimeout,
		logger:  logger.Named("archiver"),
	}
}

// Publish queues a for saving. It never blocks; when the buffer is full the
// artifact is dropped and logged.
func (a *Archiver) Publish(art domain.Artifact) {
	select {
	case a.queue <- art:
	default:
		a.logger.Warn("archive queue full, artifact not persisted", zap.String("artifact_id", art.ID))
	}
}

// Run saves queued artifacts until ctx is done, then drains what is left
// with a fresh deadline.
func (a *Archiver) Run(ctx context.Context) error {
	for {
		select {
		case art := <-a.queue:
			a.save(ctx, art)
		case <-ctx.Done():
			a.drain()
			return nil
		}
	}
}

func (a *Archiver) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	for {
		select {
		case art := <-a.queue:
			a.save(ctx, art)
		default:
			return
		}
	}
}

func (a *Archiver) save(ctx context.Context, art domain.Artifact) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	if err := a.repo.Save(ctx, art); err != nil {
		a.logger.Error("persist artifact", zap.String("artifact_id", art.ID), zap.Error(err))
		return
	}
	a.logger.Debug("artifact persisted", zap.String("artifact_id", art.ID))
}
