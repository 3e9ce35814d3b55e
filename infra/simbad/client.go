// Package simbad resolves target identifiers against the SIMBAD TAP service.
package simbad

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/petigura/ariel-kpf/core/catalog"
)

// One TAP query serves a whole batch of identifiers. The ids alias list is
// fetched alongside the astrometry so Gaia and 2MASS designations come out
// of the same round trip.
const queryTemplate = `SELECT i.id, b.plx_value, b.pmra, b.pmdec, b.rvz_radvel, b.sp_type, f.G, f.J, a.ids
FROM ident i
JOIN basic b ON b.oid = i.oidref
LEFT JOIN allfluxes f ON f.oidref = b.oid
LEFT JOIN ids a ON a.oidref = b.oid
WHERE i.id IN (%s)`

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

// Resolve looks up enrichment values for the given identifiers, querying in
// batches of the configured size. The result is keyed by identifier exactly
// as SIMBAD matched it; unknown identifiers are simply absent. Any transport
// or service failure fails the whole call so the caller can choose between
// aborting and degrading.
func (c *Client) Resolve(ctx context.Context, ids []string) (map[string]catalog.Enrichment, error) {
	out := make(map[string]catalog.Enrichment, len(ids))
	for start := 0; start < len(ids); start += c.cfg.BatchSize {
		end := start + c.cfg.BatchSize
		if end > len(ids) {
			end = len(ids)
		}
		if err := c.resolveBatch(ctx, ids[start:end], out); err != nil {
			return nil, fmt.Errorf("identifiers %d-%d: %w", start, end-1, err)
		}
	}
	return out, nil
}

func (c *Client) resolveBatch(ctx context.Context, ids []string, out map[string]catalog.Enrichment) error {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = "'" + strings.ReplaceAll(id, "'", "''") + "'"
	}
	form := url.Values{
		"request": {"doQuery"},
		"lang":    {"adql"},
		"format":  {"json"},
		"query":   {fmt.Sprintf(queryTemplate, strings.Join(quoted, ", "))},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	var tap tapResponse
	if err := json.Unmarshal(body, &tap); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	col := make(map[string]int, len(tap.Metadata))
	for i, m := range tap.Metadata {
		col[strings.ToLower(m.Name)] = i
	}
	for _, need := range []string{"id", "plx_value", "pmra", "pmdec", "rvz_radvel", "sp_type", "g", "j", "ids"} {
		if _, ok := col[need]; !ok {
			return fmt.Errorf("response missing column %q", need)
		}
	}

	for _, row := range tap.Data {
		id, ok := stringAt(row, col["id"])
		if !ok {
			continue
		}
		e := catalog.Enrichment{
			Parallax: floatAt(row, col["plx_value"]),
			PMRA:     floatAt(row, col["pmra"]),
			PMDec:    floatAt(row, col["pmdec"]),
			RV:       floatAt(row, col["rvz_radvel"]),
			GMag:     floatAt(row, col["g"]),
			JMag:     floatAt(row, col["j"]),
		}
		if s, ok := stringAt(row, col["sp_type"]); ok {
			e.SpecType = &s
		}
		if aliases, ok := stringAt(row, col["ids"]); ok {
			e.GaiaID = aliasWithPrefix(aliases, "Gaia DR3 ")
			e.TwoMASSID = aliasWithPrefix(aliases, "2MASS J")
		}
		out[id] = e
	}
	return nil
}

// tapResponse is the shape of a TAP sync query with format=json: column
// descriptors first, then rows of positional values.
type tapResponse struct {
	Metadata []struct {
		Name string `json:"name"`
	} `json:"metadata"`
	Data [][]any `json:"data"`
}

func floatAt(row []any, i int) *float64 {
	if i >= len(row) {
		return nil
	}
	v, ok := row[i].(float64)
	if !ok {
		return nil
	}
	return &v
}

func stringAt(row []any, i int) (string, bool) {
	if i >= len(row) {
		return "", false
	}
	s, ok := row[i].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// aliasWithPrefix picks the first designation with the given prefix out of
// a pipe-separated SIMBAD alias list.
func aliasWithPrefix(aliases, prefix string) *string {
	for _, alias := range strings.Split(aliases, "|") {
		if strings.HasPrefix(alias, prefix) {
			a := alias
			return &a
		}
	}
	return nil
}
