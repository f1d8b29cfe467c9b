package scansession

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"akwana/internal/catalog"
	"akwana/internal/domain"
	"akwana/internal/services/advisory"
	"akwana/internal/services/classifier"
	"akwana/internal/services/recommend"
	"akwana/internal/workers/scanrunner"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// manualDispatcher holds jobs until the test delivers them.
type manualDispatcher struct {
	mu        sync.Mutex
	jobs      []scanrunner.Job
	cancelled []bool
	err       error
}

func (d *manualDispatcher) Enqueue(job scanrunner.Job) (context.CancelFunc, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	idx := len(d.jobs)
	d.jobs = append(d.jobs, job)
	d.cancelled = append(d.cancelled, false)
	return func() {
		d.mu.Lock()
		d.cancelled[idx] = true
		d.mu.Unlock()
	}, nil
}

func (d *manualDispatcher) job(t *testing.T, i int) scanrunner.Job {
	t.Helper()
	d.mu.Lock()
	defer d.mu.Unlock()
	require.Greater(t, len(d.jobs), i, "job %d was never enqueued", i)
	return d.jobs[i]
}

func (d *manualDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.jobs)
}

type failingBuilder struct{}

func (failingBuilder) Build(domain.MatchResult, domain.Input) (domain.Artifact, error) {
	return domain.Artifact{}, domain.ErrPrecondition
}

func blightMatch() domain.MatchResult {
	return domain.MatchResult{
		Rule: domain.Rule{
			ID:              "early-blight",
			Title:           "Early Blight Disease Detected",
			Severity:        domain.StatusWarning,
			ConfidenceBase:  87,
			Recommendations: []string{"Remove affected leaves immediately"},
		},
		Confidence: 87,
	}
}

type fixture struct {
	session    *Session
	dispatcher *manualDispatcher
	sink       *advisory.Sink
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	d := &manualDispatcher{}
	sink := advisory.NewSink(5, nil)
	s := New(Config{Dispatcher: d, Builder: recommend.New(), Publisher: sink})
	return fixture{session: s, dispatcher: d, sink: sink}
}

func text(t *testing.T, s string) domain.Input {
	t.Helper()
	in, err := domain.NewTextInput(s)
	require.NoError(t, err)
	return in
}

func (f fixture) captureAndSubmit(t *testing.T, s string) {
	t.Helper()
	state, err := f.session.Capture(text(t, s))
	require.NoError(t, err)
	require.Equal(t, StateCapturing, state)
	state, err = f.session.Submit()
	require.NoError(t, err)
	require.Equal(t, StateAnalyzing, state)
}

func TestSession_HappyPath(t *testing.T) {
	f := newFixture(t)
	f.captureAndSubmit(t, "how do I treat tomato blight")

	f.dispatcher.job(t, 0).Deliver(scanrunner.Outcome{Match: blightMatch()})

	snap := f.session.Snapshot()
	assert.Equal(t, StateCompleted, snap.State)
	require.NotNil(t, snap.Artifact)
	assert.Equal(t, domain.StatusWarning, snap.Artifact.Status)
	assert.Equal(t, "Remove affected leaves immediately", snap.Artifact.Recommendations[0])

	latest, ok := f.sink.Latest()
	require.True(t, ok)
	assert.Equal(t, snap.Artifact.ID, latest.ID)
}

func TestSession_CaptureOutsideIdleRejected(t *testing.T) {
	f := newFixture(t)
	f.captureAndSubmit(t, "blight")

	state, err := f.session.Capture(text(t, "maize"))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, StateAnalyzing, state)
}

func TestSession_SubmitWithoutInput(t *testing.T) {
	f := newFixture(t)
	state, err := f.session.Submit()
	assert.ErrorIs(t, err, domain.ErrNoInput)
	assert.Equal(t, StateIdle, state)
	assert.Equal(t, 0, f.dispatcher.count())

	_, err = f.session.Capture(domain.Input{})
	assert.ErrorIs(t, err, domain.ErrNoInput)
}

func TestSession_DoubleSubmitRejected(t *testing.T) {
	f := newFixture(t)
	f.captureAndSubmit(t, "blight")

	state, err := f.session.Submit()
	assert.ErrorIs(t, err, domain.ErrBusy)
	assert.Equal(t, StateAnalyzing, state)
	assert.Equal(t, 1, f.dispatcher.count())
}

func TestSession_CancelDropsStaleResult(t *testing.T) {
	f := newFixture(t)
	f.captureAndSubmit(t, "blight")

	state, err := f.session.Cancel()
	require.NoError(t, err)
	assert.Equal(t, StateIdle, state)
	assert.True(t, f.dispatcher.cancelled[0])

	f.dispatcher.job(t, 0).Deliver(scanrunner.Outcome{Match: blightMatch()})

	assert.Equal(t, StateIdle, f.session.State())
	assert.Nil(t, f.session.Artifact())
	_, ok := f.sink.Latest()
	assert.False(t, ok)
}

func TestSession_CancelKeepsPreviousLatest(t *testing.T) {
	f := newFixture(t)
	f.captureAndSubmit(t, "blight")
	f.dispatcher.job(t, 0).Deliver(scanrunner.Outcome{Match: blightMatch()})
	first, ok := f.sink.Latest()
	require.True(t, ok)

	f.session.Reset()
	f.captureAndSubmit(t, "blight again")
	_, err := f.session.Cancel()
	require.NoError(t, err)
	f.dispatcher.job(t, 1).Deliver(scanrunner.Outcome{Match: blightMatch()})

	latest, ok := f.sink.Latest()
	require.True(t, ok)
	assert.Equal(t, first.ID, latest.ID)
	assert.Len(t, f.sink.History(), 1)
}

func TestSession_SupersededResultNeverAttaches(t *testing.T) {
	f := newFixture(t)
	f.captureAndSubmit(t, "first")
	f.session.Reset()
	f.captureAndSubmit(t, "second")

	second := blightMatch()
	second.Confidence = 55
	f.dispatcher.job(t, 1).Deliver(scanrunner.Outcome{Match: second})
	f.dispatcher.job(t, 0).Deliver(scanrunner.Outcome{Match: blightMatch()})

	a := f.session.Artifact()
	require.NotNil(t, a)
	assert.Equal(t, 55.0, a.Confidence)
	assert.Len(t, f.sink.History(), 1)
}

func TestSession_FailureThenRetryReusesInput(t *testing.T) {
	f := newFixture(t)
	f.captureAndSubmit(t, "blight")
	staged := f.dispatcher.job(t, 0).Input

	f.dispatcher.job(t, 0).Deliver(scanrunner.Outcome{Err: errors.New("backend: " + domain.ErrCapability.Error())})
	snap := f.session.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.Nil(t, snap.Artifact)
	require.NotNil(t, snap.Failure)
	assert.Equal(t, domain.FailureCapability, snap.Failure.Kind)
	assert.NotEmpty(t, snap.Failure.Reason)

	state, err := f.session.Retry()
	require.NoError(t, err)
	assert.Equal(t, StateAnalyzing, state)
	assert.Equal(t, staged.ID(), f.dispatcher.job(t, 1).Input.ID())

	f.dispatcher.job(t, 1).Deliver(scanrunner.Outcome{Match: blightMatch()})
	snap = f.session.Snapshot()
	assert.Equal(t, StateCompleted, snap.State)
	assert.Nil(t, snap.Failure)
	assert.Equal(t, 2, snap.Attempts)
}

func TestSession_TimeoutFailure(t *testing.T) {
	f := newFixture(t)
	f.captureAndSubmit(t, "blight")
	f.dispatcher.job(t, 0).Deliver(scanrunner.Outcome{Err: domain.ErrTimeout})

	snap := f.session.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	require.NotNil(t, snap.Failure)
	assert.Equal(t, domain.FailureTimeout, snap.Failure.Kind)
}

func TestSession_RetryOnlyFromFailed(t *testing.T) {
	f := newFixture(t)
	state, err := f.session.Retry()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, StateIdle, state)

	f.captureAndSubmit(t, "blight")
	_, err = f.session.Retry()
	assert.ErrorIs(t, err, domain.ErrBusy)
}

func TestSession_DispatchRejectedFails(t *testing.T) {
	f := newFixture(t)
	f.dispatcher.err = scanrunner.ErrQueueFull

	_, err := f.session.Capture(text(t, "blight"))
	require.NoError(t, err)
	state, err := f.session.Submit()
	require.NoError(t, err)
	assert.Equal(t, StateFailed, state)
	assert.Equal(t, domain.FailureCapability, f.session.Snapshot().Failure.Kind)
}

func TestSession_BuildPreconditionLandsInFailed(t *testing.T) {
	d := &manualDispatcher{}
	s := New(Config{Dispatcher: d, Builder: failingBuilder{}})
	_, err := s.Capture(text(t, "blight"))
	require.NoError(t, err)
	_, err = s.Submit()
	require.NoError(t, err)

	d.job(t, 0).Deliver(scanrunner.Outcome{Match: blightMatch()})
	snap := s.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.Equal(t, domain.FailureInternal, snap.Failure.Kind)

	state, err := s.Retry()
	require.NoError(t, err)
	assert.Equal(t, StateAnalyzing, state)
}

func TestSession_ResetKeepsLastCompleted(t *testing.T) {
	f := newFixture(t)
	f.captureAndSubmit(t, "blight")
	f.dispatcher.job(t, 0).Deliver(scanrunner.Outcome{Match: blightMatch()})
	done := f.session.Artifact()
	require.NotNil(t, done)

	assert.Equal(t, StateIdle, f.session.Reset())
	snap := f.session.Snapshot()
	assert.Nil(t, snap.Artifact)
	require.NotNil(t, snap.LastCompleted)
	assert.Equal(t, done.ID, snap.LastCompleted.ID)
	assert.Empty(t, snap.InputKind)
	assert.Len(t, f.sink.History(), 1)

	_, err := f.session.Submit()
	assert.ErrorIs(t, err, domain.ErrNoInput)
}

func TestSession_CompletedInvariant(t *testing.T) {
	f := newFixture(t)
	check := func() {
		snap := f.session.Snapshot()
		assert.Equal(t, snap.State == StateCompleted, snap.Artifact != nil, "state %s", snap.State)
	}
	check()
	f.captureAndSubmit(t, "blight")
	check()
	f.dispatcher.job(t, 0).Deliver(scanrunner.Outcome{Match: blightMatch()})
	check()
	f.session.Reset()
	check()
	f.captureAndSubmit(t, "blight")
	f.dispatcher.job(t, 1).Deliver(scanrunner.Outcome{Err: domain.ErrCapability})
	check()
}

func TestSession_WatchSeesTransitionsInOrder(t *testing.T) {
	f := newFixture(t)
	var seen []State
	unwatch := f.session.Watch(func(tr Transition) { seen = append(seen, tr.To) })

	f.captureAndSubmit(t, "blight")
	f.dispatcher.job(t, 0).Deliver(scanrunner.Outcome{Match: blightMatch()})
	unwatch()
	unwatch()
	f.session.Reset()

	assert.Equal(t, []State{StateCapturing, StateSubmitted, StateAnalyzing, StateCompleted}, seen)
}

func TestSession_AwaitReturnsOnCompletion(t *testing.T) {
	f := newFixture(t)
	f.captureAndSubmit(t, "blight")

	job := f.dispatcher.job(t, 0)
	go func() {
		time.Sleep(10 * time.Millisecond)
		job.Deliver(scanrunner.Outcome{Match: blightMatch()})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	snap, err := f.session.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, snap.State)
}

func TestSession_AwaitHonorsContext(t *testing.T) {
	f := newFixture(t)
	f.captureAndSubmit(t, "blight")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	snap, err := f.session.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StateAnalyzing, snap.State)
}

// slowImages ignores cancellation and answers only when released.
type slowImages struct {
	calls   chan struct{}
	release chan struct{}
}

func (s *slowImages) Classify(ctx context.Context, desc domain.ImageDescriptor) (domain.ImageLabel, error) {
	s.calls <- struct{}{}
	<-s.release
	return domain.ImageLabel{DomainTag: domain.TagDisease, Confidence: 87}, nil
}

func TestSession_WithRunner(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	images := &slowImages{calls: make(chan struct{}, 4), release: make(chan struct{})}
	cls := classifier.New(cat, images)

	ctx, stop := context.WithCancel(context.Background())
	runner := scanrunner.New(cls, scanrunner.Options{Workers: 2, Timeout: time.Second}, nil)
	runner.Start(ctx)
	defer func() {
		stop()
		runner.Wait()
	}()

	sink := advisory.NewSink(5, nil)
	s := New(Config{Dispatcher: runner, Builder: recommend.New(), Publisher: sink})

	img, err := domain.NewImageInput(domain.ImageDescriptor{Data: []byte("jpeg"), ScanType: domain.ScanCrop})
	require.NoError(t, err)
	_, err = s.Capture(img)
	require.NoError(t, err)
	_, err = s.Submit()
	require.NoError(t, err)

	<-images.calls
	_, err = s.Submit()
	assert.ErrorIs(t, err, domain.ErrBusy)

	// cancelled while the backend is still working; its late answer is ignored
	_, err = s.Cancel()
	require.NoError(t, err)
	close(images.release)

	_, err = s.Capture(img)
	require.NoError(t, err)
	_, err = s.Submit()
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	snap, err := s.Await(waitCtx)
	require.NoError(t, err)
	require.Equal(t, StateCompleted, snap.State)
	assert.Equal(t, "early-blight", snap.Artifact.MatchedRuleID)
	assert.Equal(t, 87.0, snap.Artifact.Confidence)
	assert.Len(t, sink.History(), 1)
	assert.Len(t, images.calls, 1)
}

func TestSession_ResetDoesNotRepublishEvictedArtifact(t *testing.T) {
	sink := advisory.NewSink(2, nil)
	da, db := &manualDispatcher{}, &manualDispatcher{}
	a := New(Config{Dispatcher: da, Builder: recommend.New(), Publisher: sink})
	b := New(Config{Dispatcher: db, Builder: recommend.New(), Publisher: sink})
	fa := fixture{session: a, dispatcher: da, sink: sink}
	fb := fixture{session: b, dispatcher: db, sink: sink}

	fa.captureAndSubmit(t, "blight")
	da.job(t, 0).Deliver(scanrunner.Outcome{Match: blightMatch()})
	old := a.Artifact()
	require.NotNil(t, old)

	for i := 0; i < 2; i++ {
		fb.captureAndSubmit(t, "blight")
		db.job(t, i).Deliver(scanrunner.Outcome{Match: blightMatch()})
		b.Reset()
	}
	newest, ok := sink.Latest()
	require.True(t, ok)
	require.NotEqual(t, old.ID, newest.ID)

	var republished int
	sink.Subscribe("count", func(domain.Artifact) { republished++ })
	a.Reset()

	latest, ok := sink.Latest()
	require.True(t, ok)
	assert.Equal(t, newest.ID, latest.ID, "reset must not resurrect an evicted artifact")
	for _, h := range sink.History() {
		assert.NotEqual(t, old.ID, h.ID)
	}
	assert.Zero(t, republished)
	require.NotNil(t, a.LastCompleted())
	assert.Equal(t, old.ID, a.LastCompleted().ID)
}

func TestSession_WatcherMayReadDuringConcurrentMutation(t *testing.T) {
	f := newFixture(t)
	inWatcher := make(chan struct{})
	proceed := make(chan struct{})
	var once sync.Once
	var seen State
	f.session.Watch(func(tr Transition) {
		if tr.To != StateAnalyzing {
			return
		}
		once.Do(func() {
			close(inWatcher)
			<-proceed
			seen = f.session.Snapshot().State
		})
	})

	in := text(t, "blight")
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = f.session.Capture(in)
		_, _ = f.session.Submit()
	}()
	<-inWatcher

	cancelled := make(chan struct{})
	go func() {
		defer close(cancelled)
		_, _ = f.session.Cancel()
	}()
	time.Sleep(20 * time.Millisecond)
	close(proceed)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher reading the session deadlocked against a concurrent Cancel")
	}
	<-cancelled
	assert.Equal(t, StateAnalyzing, seen)
	assert.Equal(t, StateIdle, f.session.State())
}

func TestSession_ResetIfSettledLeavesActiveSessions(t *testing.T) {
	f := newFixture(t)
	_, err := f.session.Capture(text(t, "blight"))
	require.NoError(t, err)
	assert.False(t, f.session.ResetIfSettled())
	assert.Equal(t, StateCapturing, f.session.State())

	_, err = f.session.Submit()
	require.NoError(t, err)
	assert.False(t, f.session.ResetIfSettled())
	assert.Equal(t, StateAnalyzing, f.session.State())

	f.dispatcher.job(t, 0).Deliver(scanrunner.Outcome{Match: blightMatch()})
	assert.True(t, f.session.ResetIfSettled())
	assert.Equal(t, StateIdle, f.session.State())
	assert.NotNil(t, f.session.LastCompleted())
}
