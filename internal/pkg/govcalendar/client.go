package govcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lumina-hr/payroll-backend-go/internal/config"
	"github.com/lumina-hr/payroll-backend-go/internal/service/calendar"
)

// Client fetches the government public-holiday open-data set. Rows look like
// {"date": "20260101", "isHoliday": "是", "description": "開國紀念日"};
// some publications use a boolean isHoliday instead of the marker string.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.CalendarConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

type rawDay struct {
	Date        string          `json:"date"`
	IsHoliday   json.RawMessage `json:"isHoliday"`
	Description string          `json:"description"`
}

func (d rawDay) holiday() bool {
	var b bool
	if err := json.Unmarshal(d.IsHoliday, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(d.IsHoliday, &s); err == nil {
		return s == "是" || s == "true" || s == "1"
	}
	return false
}

// FetchYear implements calendar.Source.
func (c *Client) FetchYear(ctx context.Context, year int) ([]calendar.DayInfo, error) {
	url := fmt.Sprintf("%s/%d.json", c.baseURL, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build calendar request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch calendar %d: %w", year, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch calendar %d: unexpected status %d", year, resp.StatusCode)
	}

	var raw []rawDay
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode calendar %d: %w", year, err)
	}

	days := make([]calendar.DayInfo, 0, len(raw))
	for _, r := range raw {
		date, err := time.Parse("20060102", r.Date)
		if err != nil {
			return nil, fmt.Errorf("decode calendar %d: unrecognized date %q", year, r.Date)
		}
		days = append(days, calendar.DayInfo{Date: date, IsHoliday: r.holiday()})
	}

	return days, nil
}
