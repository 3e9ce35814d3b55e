package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/petigura/ariel-kpf/config"
	"github.com/petigura/ariel-kpf/core/catalog"
	"github.com/petigura/ariel-kpf/infra/simbad"
)

// tapResponse answers a TAP query for one identifier with fixed astrometry.
func tapResponse(id string) string {
	return fmt.Sprintf(`{
  "metadata": [
    {"name": "id"}, {"name": "plx_value"}, {"name": "pmra"}, {"name": "pmdec"},
    {"name": "rvz_radvel"}, {"name": "sp_type"}, {"name": "G"}, {"name": "J"}, {"name": "ids"}
  ],
  "data": [["%s", 12.5, -3.1, 7.9, 21.4, "G2V", 9.8, 8.7, "Gaia DR3 111|2MASS J22222|%s"]]
}`, id, id)
}

func TestEnrichDegradesOnFailedBatch(t *testing.T) {
	svc, cfg := testService(t)
	writeCatalog(t, cfg, config.KPFCatalogPrefix, `identifier,ra,dec,vmag
TOI-1,310.0,10.0,9.1
TOI-2,5.0,-20.0,8.4
TOI-3,355.0,45.0,10.2
`)

	// One identifier per batch; the middle batch fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		query := r.Form.Get("query")
		if strings.Contains(query, "TOI-2") {
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
			return
		}
		id := "TOI-1"
		if strings.Contains(query, "TOI-3") {
			id = "TOI-3"
		}
		_, _ = w.Write([]byte(tapResponse(id)))
	}))
	defer srv.Close()
	cfg.Simbad.BaseURL = srv.URL
	svc.simbad = simbad.NewClient(cfg.Simbad)

	path, err := svc.Enrich(context.Background(), 1)
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	cat, err := catalog.ReadFile(path)
	if err != nil {
		t.Fatalf("read result: %v", err)
	}
	if len(cat.Targets) != 3 {
		t.Fatalf("result has %d targets, want 3", len(cat.Targets))
	}

	byName := make(map[string]catalog.Target, 3)
	for _, tgt := range cat.Targets {
		byName[tgt.Name] = tgt
	}

	for _, name := range []string{"TOI-1", "TOI-3"} {
		tgt := byName[name]
		if tgt.GaiaID == nil || *tgt.GaiaID != "Gaia DR3 111" {
			t.Errorf("%s GaiaID = %v", name, tgt.GaiaID)
		}
		if tgt.Parallax == nil || *tgt.Parallax != 12.5 {
			t.Errorf("%s Parallax = %v", name, tgt.Parallax)
		}
		if tgt.SpecType == nil || *tgt.SpecType != "G2V" {
			t.Errorf("%s SpecType = %v", name, tgt.SpecType)
		}
	}

	// The failed batch leaves its row unresolved but intact.
	failed := byName["TOI-2"]
	if failed.Resolved() {
		t.Errorf("TOI-2 should carry no enrichment, got %+v", failed.Enrichment)
	}
	if failed.VMag != 8.4 || failed.RADeg() != 5.0 {
		t.Errorf("TOI-2 core fields changed: vmag %v, ra %v", failed.VMag, failed.RADeg())
	}
}

func TestEnrichKeepsExistingValues(t *testing.T) {
	svc, cfg := testService(t)
	writeCatalog(t, cfg, config.KPFCatalogPrefix, `identifier,ra,dec,vmag,spec_type,j_mag
TOI-1,310.0,10.0,9.1,K0V,7.5
`)

	// The service answers without a spectral type or J magnitude.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
  "metadata": [
    {"name": "id"}, {"name": "plx_value"}, {"name": "pmra"}, {"name": "pmdec"},
    {"name": "rvz_radvel"}, {"name": "sp_type"}, {"name": "G"}, {"name": "J"}, {"name": "ids"}
  ],
  "data": [["TOI-1", 12.5, null, null, null, null, null, null, null]]
}`))
	}))
	defer srv.Close()
	cfg.Simbad.BaseURL = srv.URL
	svc.simbad = simbad.NewClient(cfg.Simbad)

	path, err := svc.Enrich(context.Background(), 0)
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	cat, err := catalog.ReadFile(path)
	if err != nil {
		t.Fatalf("read result: %v", err)
	}
	tgt := cat.Targets[0]
	if tgt.Parallax == nil || *tgt.Parallax != 12.5 {
		t.Errorf("Parallax = %v, want the resolved value", tgt.Parallax)
	}
	if tgt.SpecType == nil || *tgt.SpecType != "K0V" {
		t.Errorf("SpecType = %v, want the catalog value kept", tgt.SpecType)
	}
	if tgt.JMag == nil || *tgt.JMag != 7.5 {
		t.Errorf("JMag = %v, want the catalog value kept", tgt.JMag)
	}
}
