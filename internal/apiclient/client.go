package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/brk3/habitflow/internal/calendar"
	"github.com/brk3/habitflow/internal/server"
	"github.com/brk3/habitflow/pkg/habit"
	"github.com/brk3/habitflow/pkg/versioninfo"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError carries the status and error message of a non-2xx response.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Op, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any, want int) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	if res.StatusCode != want {
		apiErr := &APIError{Op: op, Status: res.StatusCode}
		var e server.ErrorResponse
		if json.NewDecoder(res.Body).Decode(&e) == nil {
			apiErr.Message = e.Error
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func (c *Client) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	var resp server.HabitListResponse
	if err := c.do(ctx, "list habits", http.MethodGet, "/habits/", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Habits, nil
}

func (c *Client) AddHabit(ctx context.Context, d habit.Draft) (*habit.Habit, error) {
	var out habit.Habit
	if err := c.do(ctx, "add habit", http.MethodPost, "/habits/", d, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ToggleHabit(ctx context.Context, id string) (*habit.Habit, error) {
	var out habit.Habit
	path := "/habits/" + url.PathEscape(id) + "/toggle"
	if err := c.do(ctx, "toggle "+id, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteHabit(ctx context.Context, id string) error {
	return c.do(ctx, "delete "+id, http.MethodDelete, "/habits/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

func (c *Client) GetHabitSummary(ctx context.Context, id string) (*habit.HabitSummary, error) {
	var resp server.HabitSummaryResponse
	path := "/habits/" + url.PathEscape(id) + "/summary"
	if err := c.do(ctx, "summary "+id, http.MethodGet, path, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.HabitSummary, nil
}

// TodayHabits lists the habits scheduled today along with the date they were
// selected for, both as judged by the server's clock and time zone.
func (c *Client) TodayHabits(ctx context.Context) (string, []habit.Habit, error) {
	var resp server.TodayResponse
	if err := c.do(ctx, "today", http.MethodGet, "/habits/today", nil, &resp, http.StatusOK); err != nil {
		return "", nil, err
	}
	return resp.Date, resp.Habits, nil
}

func (c *Client) Statistics(ctx context.Context) (*habit.Statistics, error) {
	var resp server.StatisticsResponse
	if err := c.do(ctx, "statistics", http.MethodGet, "/stats", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp.Statistics, nil
}

// Calendar fetches a month grid; a zero year or month selects the server's current one.
func (c *Client) Calendar(ctx context.Context, year int, month time.Month) (*calendar.Month, error) {
	q := url.Values{}
	if year != 0 {
		q.Set("year", strconv.Itoa(year))
	}
	if month != 0 {
		q.Set("month", strconv.Itoa(int(month)))
	}
	path := "/calendar"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out calendar.Month
	if err := c.do(ctx, "calendar", http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Version(ctx context.Context) (*versioninfo.VersionInfo, error) {
	var out versioninfo.VersionInfo
	if err := c.do(ctx, "version", http.MethodGet, "/version", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
