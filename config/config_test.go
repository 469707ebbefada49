package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.HTTPServer.Port != 8080 || cfg.Lookup.MaxItems != 500 || cfg.Lookup.RetryDelay != 500*time.Millisecond {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if len(cfg.Lookup.Entities) != 0 {
		t.Errorf("expected no configured entities, got %d", len(cfg.Lookup.Entities))
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
upstream:
  base_url: http://erp.internal
  token_url: http://erp.internal/token
  client_id: lookup
  client_secret: ${TEST_ERP_SECRET}
  scopes: "lookups.read, users.read"
lookup:
  entities:
    - name: customers
    - name: warehouses
      default_limit: 50
      max_items: -1
      filters: "isActive=true, region=north"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("TEST_ERP_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Upstream.ClientSecret != "s3cret" {
		t.Errorf("expected expanded secret, got %q", cfg.Upstream.ClientSecret)
	}
	if len(cfg.Upstream.Scopes) != 2 || cfg.Upstream.Scopes[1] != "users.read" {
		t.Errorf("unexpected scopes %v", cfg.Upstream.Scopes)
	}
	if len(cfg.Lookup.Entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(cfg.Lookup.Entities))
	}
	wh := cfg.Lookup.Entities[1]
	if wh.DefaultLimit != 50 || wh.MaxItems != -1 || wh.Filters["isActive"] != "true" || wh.Filters["region"] != "north" {
		t.Errorf("unexpected warehouse entity %+v", wh)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
lookup:
  entities:
    - name: customers
    - name: customers
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := Load(); err == nil {
		t.Error("expected duplicate entity error")
	}
}
