// Package remote calls an HTTP inference endpoint that labels crop and soil
// photos.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"akwana/internal/domain"
)

const maxResponseBytes = 64 << 10

type request struct {
	ScanType    domain.ScanType   `json:"scan_type"`
	ContentType string            `json:"content_type,omitempty"`
	Image       []byte            `json:"image"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type Classifier struct {
	url     string
	client  *http.Client
	retries uint64
	backoff time.Duration
	logger  *zap.Logger
}

type Option func(*Classifier)

func WithHTTPClient(c *http.Client) Option { return func(rc *Classifier) { rc.client = c } }

// WithRetries sets how many times a 5xx or transport error is retried.
func WithRetries(n uint64, backoff time.Duration) Option {
	return func(rc *Classifier) {
		rc.retries = n
		rc.backoff = backoff
	}
}

func New(url string, logger *zap.Logger, opts ...Option) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Classifier{
		url:     url,
		client:  &http.Client{},
		retries: 2,
		backoff: 200 * time.Millisecond,
		logger:  logger.Named("remote_classifier"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Classifier) Classify(ctx context.Context, img domain.ImageDescriptor) (domain.ImageLabel, error) {
	body, err := json.Marshal(request{
		ScanType:    img.ScanType,
		ContentType: img.ContentType,
		Image:       img.Data,
		Metadata:    img.Metadata,
	})
	if err != nil {
		return domain.ImageLabel{}, fmt.Errorf("%w: encode request: %v", domain.ErrCapability, err)
	}

	var label domain.ImageLabel
	b := retry.WithMaxRetries(c.retries, retry.NewExponential(c.backoff))
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		l, err := c.post(ctx, body)
		if err != nil {
			return err
		}
		label = l
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.ImageLabel{}, ctxErr
		}
		return domain.ImageLabel{}, err
	}
	return label, nil
}

func (c *Classifier) post(ctx context.Context, body []byte) (domain.ImageLabel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return domain.ImageLabel{}, fmt.Errorf("%w: %v", domain.ErrCapability, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("inference request failed", zap.Error(err))
		return domain.ImageLabel{}, retry.RetryableError(fmt.Errorf("%w: %v", domain.ErrCapability, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		c.logger.Warn("inference backend error", zap.Int("status", resp.StatusCode))
		return domain.ImageLabel{}, retry.RetryableError(fmt.Errorf("%w: backend status %d", domain.ErrCapability, resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return domain.ImageLabel{}, fmt.Errorf("%w: backend status %d", domain.ErrCapability, resp.StatusCode)
	}

	var label domain.ImageLabel
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&label); err != nil {
		return domain.ImageLabel{}, fmt.Errorf("%w: malformed response: %v", domain.ErrCapability, err)
	}
	if label.DomainTag == "" {
		return domain.ImageLabel{}, fmt.Errorf("%w: response has no domain_tag", domain.ErrCapability)
	}
	return label, nil
}
