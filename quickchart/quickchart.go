// Package quickchart submits chart descriptions to the QuickChart rendering
// service and returns hosted image URLs.
package quickchart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public QuickChart service.
const DefaultBaseURL = "https://quickchart.io"

const DefaultTimeout = 10 * time.Second

// Chart kinds supported by the renderer.
const (
	TypeLine = "line"
	TypeBar  = "bar"
)

// ErrRender means the service did not return a usable image URL. Callers
// treat this as "no chart available", never as a placeholder.
var ErrRender = errors.New("quickchart: no chart url in response")

type Client struct {
	rest   *resty.Client
	logger zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rest := resty.New()
	rest.SetBaseURL(baseURL)
	rest.SetTimeout(timeout)
	rest.SetHeaders(map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	})

	return &Client{
		rest:   rest,
		logger: log.With().Str("component", "quickchart").Logger(),
	}
}

type dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type chartData struct {
	Labels   []float64 `json:"labels"`
	Datasets []dataset `json:"datasets"`
}

type chartSpec struct {
	Type string    `json:"type"`
	Data chartData `json:"data"`
}

type createRequest struct {
	BackgroundColor  string    `json:"backgroundColor"`
	Width            int       `json:"width"`
	Height           int       `json:"height"`
	DevicePixelRatio float64   `json:"devicePixelRatio"`
	Chart            chartSpec `json:"chart"`
}

type createResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// Render builds a single-dataset chart (fixed 500x300 canvas, white
// background) with labels as the x axis and values as the dataset, submits
// it, and returns the hosted image URL.
func (c *Client) Render(ctx context.Context, chartType string, labels []float64, label string, values []float64) (string, error) {
	req := createRequest{
		BackgroundColor:  "#fff",
		Width:            500,
		Height:           300,
		DevicePixelRatio: 1.0,
		Chart: chartSpec{
			Type: chartType,
			Data: chartData{
				Labels:   labels,
				Datasets: []dataset{{Label: label, Data: values}},
			},
		},
	}

	var out createResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		// the service always answers JSON; decode it even without a content type
		ForceContentType("application/json").
		SetBody(req).
		SetResult(&out).
		Post("/chart/create")
	if err != nil {
		c.logger.Error().Err(err).Msg("chart create request failed")
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	if !resp.IsSuccess() {
		c.logger.Error().Int("status", resp.StatusCode()).Msg("chart create request rejected")
		return "", fmt.Errorf("%w: status %d", ErrRender, resp.StatusCode())
	}
	if out.URL == "" {
		return "", ErrRender
	}

	c.logger.Debug().Str("url", out.URL).Msg("chart rendered")
	return out.URL, nil
}
