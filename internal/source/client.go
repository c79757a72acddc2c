package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"triage-insights-go/internal/logger"
	"triage-insights-go/internal/types"
)

var ErrNoURL = errors.New("analytics source url not set")

// Client pulls the dashboard dataset from an upstream analytics endpoint that
// serves the JSON form of types.Dataset.
type Client struct {
	URL        string
	HTTP       *http.Client
	MaxElapsed time.Duration
}

func New(url string, timeout time.Duration) *Client {
	return &Client{
		URL:        url,
		HTTP:       &http.Client{Timeout: timeout},
		MaxElapsed: 12 * time.Second,
	}
}

// FetchDataset retries 5xx and transport errors with exponential backoff.
// A 4xx or an undecodable body fails immediately.
func (c *Client) FetchDataset(ctx context.Context) (types.Dataset, error) {
	if c.URL == "" {
		return types.Dataset{}, ErrNoURL
	}
	log := logger.New().WithField("module", "source").WithField("url", c.URL)

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}

	bo := backoff.NewExponentialBackOff()
	if c.MaxElapsed > 0 {
		bo.MaxElapsedTime = c.MaxElapsed
	}

	var ds types.Dataset
	attempt := 0
	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := hc.Do(req)
		if err != nil {
			log.WithError(err).WithField("attempt", attempt).Warn("fetch failed")
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		switch {
		case resp.StatusCode >= 500:
			log.WithField("status", resp.StatusCode).WithField("attempt", attempt).Warn("upstream error")
			return fmt.Errorf("server error: status=%d body=%s", resp.StatusCode, body)
		case resp.StatusCode >= 400:
			return backoff.Permanent(fmt.Errorf("request rejected: status=%d body=%s", resp.StatusCode, body))
		}

		if err := json.Unmarshal(body, &ds); err != nil {
			return backoff.Permanent(fmt.Errorf("json decode error: %w", err))
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return types.Dataset{}, err
	}
	log.WithField("attempts", attempt).Info("dataset fetched")
	return ds, nil
}

// Dataset fetches on every call, so the analytics endpoint always reflects
// the upstream state.
func (c *Client) Dataset(ctx context.Context) (types.Dataset, error) {
	return c.FetchDataset(ctx)
}
