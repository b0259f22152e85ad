package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	m "github.com/mouse-blink/versecheck/internal/model"
	"github.com/mouse-blink/versecheck/internal/textnorm"
)

const (
	// DefaultReferenceURL is the public text-lookup service.
	DefaultReferenceURL = "https://bible-api.com"
	// DefaultTranslation is the edition requested when none is configured.
	DefaultTranslation = "kjv"
)

// ReferenceFetcher retrieves the authoritative text of a chapter.
type ReferenceFetcher interface {
	FetchChapter(ctx context.Context, ref m.ChapterRef) (m.VerseList, error)
}

// ReferenceOptions configures a ReferenceClient.
type ReferenceOptions struct {
	BaseURL     string
	Translation string
	Timeout     time.Duration
	Retry       RetryPolicy
	// Throttle is slept after every successful fetch.
	Throttle time.Duration
}

// ReferenceClient fetches chapters from a bible-api.com compatible service.
type ReferenceClient struct {
	baseURL     string
	translation string
	httpClient  *http.Client
	retry       RetryPolicy
	throttle    time.Duration
	log         *slog.Logger
}

// StatusError is a non-success HTTP response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// NewReferenceClient creates a ReferenceClient. Empty options fall back to
// the public service and the KJV translation.
func NewReferenceClient(opts ReferenceOptions, logger *slog.Logger) *ReferenceClient {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultReferenceURL
	}

	if opts.Translation == "" {
		opts.Translation = DefaultTranslation
	}

	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}

	return &ReferenceClient{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		translation: opts.Translation,
		httpClient:  &http.Client{Timeout: opts.Timeout},
		retry:       opts.Retry,
		throttle:    opts.Throttle,
		log:         logger.With("adapter", "reference"),
	}
}

// ChapterURL addresses a chapter as /<escaped book>%20<n>?translation=<code>.
func (c *ReferenceClient) ChapterURL(ref m.ChapterRef) string {
	return c.baseURL + "/" + url.PathEscape(string(ref.Book)) + "%20" + strconv.Itoa(ref.Number) +
		"?translation=" + url.QueryEscape(c.translation)
}

// FetchChapter returns the Loose-normalized verse texts of ref. When the
// retry budget runs out the error is a *m.FetchExhaustedError.
func (c *ReferenceClient) FetchChapter(ctx context.Context, ref m.ChapterRef) (m.VerseList, error) {
	reqURL := c.ChapterURL(ref)

	var verses m.VerseList

	res := c.retry.Do(ctx, func(ctx context.Context) error {
		got, err := c.fetchOnce(ctx, reqURL)
		if err != nil {
			c.log.WarnContext(ctx, "reference attempt failed",
				slog.String("chapter", ref.String()),
				slog.String("error", err.Error()),
			)

			return err
		}

		verses = got

		return nil
	})
	if res.Exhausted() {
		c.log.ErrorContext(ctx, "reference fetch exhausted",
			slog.String("chapter", ref.String()),
			slog.Int("attempts", res.Attempts),
			slog.Int("rate_limited", res.RateLimited),
		)

		return nil, &m.FetchExhaustedError{Ref: ref, Attempts: res.Attempts + res.RateLimited, Last: res.Err}
	}

	c.log.DebugContext(ctx, "reference fetched",
		slog.String("chapter", ref.String()),
		slog.Int("verses", len(verses)),
		slog.Int("attempts", res.Attempts),
	)

	c.retry.sleep(c.throttle)

	return verses, nil
}

func (c *ReferenceClient) fetchOnce(ctx context.Context, reqURL string) (m.VerseList, error) {
	c.log.DebugContext(ctx, "reference request", slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: %w", m.ErrRateLimited, &StatusError{StatusCode: resp.StatusCode})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var payload apiChapter
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	c.log.DebugContext(ctx, "reference decoded",
		slog.String("reference", payload.Reference),
		slog.Int("verses", len(payload.Verses)),
	)

	verses := make(m.VerseList, 0, len(payload.Verses))
	for _, v := range payload.Verses {
		verses = append(verses, textnorm.Loose(v.Text))
	}

	return verses, nil
}

// apiChapter is the part of the reference response the comparison needs.
type apiChapter struct {
	Reference string     `json:"reference"`
	Verses    []apiVerse `json:"verses"`
}

type apiVerse struct {
	Text string `json:"text"`
}
