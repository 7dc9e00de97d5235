package scheduleclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go-resto/internal/schedule"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	ErrShiftNotFound       = errors.New("shift not found")
	ErrDuplicateAssignment = errors.New("employee already assigned on this date")
	ErrValidation          = errors.New("request rejected by validation")
)

const maxBodyBytes = 1 << 20

// APIError is a non-2xx answer from the schedule API. It unwraps to one of the
// package sentinels when the status has a known meaning.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("schedule api: http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("schedule api: http %d %s: %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return ErrShiftNotFound
	case http.StatusConflict:
		return ErrDuplicateAssignment
	case http.StatusBadRequest:
		return ErrValidation
	}
	return nil
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithRateLimit caps outgoing requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l.Named("schedule.client")
		}
	}
}

// Client talks to the /schedule routes of the api server. baseURL points at
// the versioned root, e.g. http://localhost:8080/api/v1.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  zap.L().Named("schedule.client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListShifts(ctx context.Context, filter schedule.Filter) ([]schedule.ShiftResponse, error) {
	var out []schedule.ShiftResponse
	err := c.do(ctx, http.MethodGet, "/schedule/shifts"+filterQuery(filter), nil, &out)
	return out, err
}

func (c *Client) ListAssignments(ctx context.Context, filter schedule.Filter) ([]schedule.Assignment, error) {
	var out []schedule.Assignment
	err := c.do(ctx, http.MethodGet, "/schedule/assignments"+filterQuery(filter), nil, &out)
	return out, err
}

func (c *Client) ListEmployeeSchedules(ctx context.Context, filter schedule.Filter) ([]schedule.EmployeeScheduleResponse, error) {
	var out []schedule.EmployeeScheduleResponse
	err := c.do(ctx, http.MethodGet, "/schedule/employee-schedules"+filterQuery(filter), nil, &out)
	return out, err
}

func (c *Client) Assign(ctx context.Context, req schedule.AssignRequest) (schedule.EmployeeScheduleResponse, error) {
	var out schedule.EmployeeScheduleResponse
	err := c.do(ctx, http.MethodPost, "/schedule/assign", req, &out)
	return out, err
}

func (c *Client) Unassign(ctx context.Context, req schedule.UnassignRequest) (schedule.UnassignResponse, error) {
	var out schedule.UnassignResponse
	err := c.do(ctx, http.MethodDelete, "/schedule/unassign", req, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("schedule api: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("schedule api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("schedule api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("schedule api: read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		if decodeErr == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		c.logger.Debug("schedule api error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.Status),
			zap.String("code", apiErr.Code),
		)
		return apiErr
	}

	if decodeErr != nil {
		return fmt.Errorf("schedule api: decode response: %w", decodeErr)
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("schedule api: decode data: %w", err)
	}
	return nil
}

func filterQuery(f schedule.Filter) string {
	q := url.Values{}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	if f.LocationID > 0 {
		q.Set("location_id", strconv.Itoa(f.LocationID))
	}
	if f.RoleID > 0 {
		q.Set("role_id", strconv.Itoa(f.RoleID))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
