package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLatestCatalog(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "ariel_kpf_targets_20251001_080000.csv")
	newer := filepath.Join(dir, "ariel_kpf_targets_20251016_161910.csv")
	other := filepath.Join(dir, "ariel_targets_20251231_235959.csv")
	for _, p := range []string{older, newer, other} {
		if err := os.WriteFile(p, []byte("identifier,ra,dec,vmag\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	// Touch the older file last: resolution must follow the name stamp,
	// not filesystem mtimes.
	if err := os.Chtimes(older, time.Now(), time.Now()); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	c := PathsConfig{DataDir: dir}
	got, err := c.LatestCatalog(KPFCatalogPrefix)
	if err != nil {
		t.Fatalf("LatestCatalog: %v", err)
	}
	if got != newer {
		t.Errorf("got %s, want %s", got, newer)
	}

	got, err = c.LatestCatalog(CatalogPrefix)
	if err != nil {
		t.Fatalf("LatestCatalog: %v", err)
	}
	if got != other {
		t.Errorf("got %s, want %s", got, other)
	}
}

func TestLatestCatalogNoneFound(t *testing.T) {
	c := PathsConfig{DataDir: t.TempDir()}
	_, err := c.LatestCatalog(CatalogPrefix)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("want ConfigError, got %v", err)
	}
}

func TestStampedCatalog(t *testing.T) {
	c := PathsConfig{DataDir: "data"}
	at := time.Date(2025, 10, 16, 16, 19, 10, 0, time.UTC)
	want := filepath.Join("data", "ariel_targets_20251016_161910.csv")
	if got := c.StampedCatalog(CatalogPrefix, at); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
