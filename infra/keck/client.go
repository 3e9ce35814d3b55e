// Package keck queries the Keck Observatory telescope schedule for
// allocated instrument nights.
package keck

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Night is one allocated night on the schedule.
type Night struct {
	Date       time.Time
	Instrument string
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// Schedule fetches the allocated nights for the configured instrument in
// the given semester and date range. The endpoint answers the query form
// with CSV when the excel flag is set; anything that does not start with a
// Date header is a failed query, not a schedule.
func (c *Client) Schedule(ctx context.Context, semester string, from, to time.Time) ([]Night, error) {
	params := url.Values{
		"doQuery":       {"1"},
		"table":         {"schedule"},
		"Instrument":    {c.cfg.Instrument},
		"sem":           {semester},
		"Date":          {fmt.Sprintf("%s to %s", from.Format(dateLayout), to.Format(dateLayout))},
		"excel":         {"on"},
		"cb_Instrument": {"on"},
		"cb_Date":       {"on"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	text := strings.TrimLeft(string(body), "\uFEFF \t\r\n")
	if !strings.HasPrefix(text, "Date,") {
		return nil, fmt.Errorf("response is not a schedule CSV: %.80s", text)
	}
	return parseSchedule(strings.NewReader(text))
}

func parseSchedule(r io.Reader) ([]Night, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule header: %w", err)
	}
	dateCol, instCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "Date":
			dateCol = i
		case "Instrument":
			instCol = i
		}
	}
	if dateCol < 0 || instCol < 0 {
		return nil, fmt.Errorf("schedule lacks Date or Instrument column: %v", header)
	}

	var nights []Night
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nights, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read schedule row: %w", err)
		}
		if dateCol >= len(rec) || instCol >= len(rec) {
			continue
		}
		d, err := time.Parse(dateLayout, strings.TrimSpace(rec[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("bad schedule date %q: %w", rec[dateCol], err)
		}
		nights = append(nights, Night{Date: d, Instrument: strings.TrimSpace(rec[instCol])})
	}
}

// NightsByMonth buckets nights by calendar month, keyed "2006-01".
func NightsByMonth(nights []Night) map[string]int {
	out := make(map[string]int)
	for _, n := range nights {
		out[n.Date.Format("2006-01")]++
	}
	return out
}
