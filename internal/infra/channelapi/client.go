package channelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"stayops/internal/infra"
	"stayops/internal/pkg/config"
)

// Client is the HTTP gateway to the channel-manager API. It implements all
// usecase gateway ports; each resource lives in its own file.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.ChannelAPIConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// do performs one request. Remote rejections keep the remote message verbatim
// inside the GatewayError so the wizard can surface it unchanged.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return infra.WrapGatewayErr(infra.KindTransport, "failed to encode request", "", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return infra.WrapGatewayErr(infra.KindTransport, "failed to build request", "", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(infra.KindTransport, "channel API request failed", "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return infra.WrapGatewayErr(infra.KindTransport, "failed to read response", "", err)
	}

	c.logger.Debug("channel API call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapGatewayErr(infra.KindNotFound, "resource not found", remoteMessage(raw), nil)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return infra.WrapGatewayErr(infra.KindRemoteRejected, "channel API rejected the request", remoteMessage(raw), nil)
	case resp.StatusCode >= 500:
		return infra.WrapGatewayErr(infra.KindRemoteFailure, "channel API failure", remoteMessage(raw), nil)
	}

	if out == nil {
		return nil
	}
	return decodeEntity(raw, out)
}

// envelope is the wrapped response shape some channel API endpoints use.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// decodeEntity decodes the two known response shapes: a {"data": {...}}
// envelope or a bare object. Anything else is an explicit unexpected-shape
// error rather than a best-effort guess.
func decodeEntity(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return infra.WrapGatewayErr(infra.KindUnexpectedShape, "unrecognized response shape", "", nil)
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return infra.WrapGatewayErr(infra.KindUnexpectedShape, "unrecognized response shape", "", err)
	}
	payload := trimmed
	if len(env.Data) > 0 {
		payload = bytes.TrimSpace(env.Data)
		if len(payload) == 0 || payload[0] != '{' {
			return infra.WrapGatewayErr(infra.KindUnexpectedShape, "unrecognized envelope payload", "", nil)
		}
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return infra.WrapGatewayErr(infra.KindUnexpectedShape, "failed to decode response", "", err)
	}
	return nil
}

type remoteError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func remoteMessage(raw []byte) string {
	var re remoteError
	if err := json.Unmarshal(raw, &re); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	if re.Error.Message != "" {
		return re.Error.Message
	}
	return re.Message
}

// apiDate is a date-only JSON value ("2006-01-02") as exchanged with the
// channel manager.
type apiDate struct {
	time.Time
}

const apiDateLayout = "2006-01-02"

func newAPIDate(t time.Time) apiDate {
	return apiDate{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d apiDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(apiDateLayout))
}

func (d *apiDate) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(apiDateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
