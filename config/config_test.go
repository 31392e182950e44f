package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Appwrite.Endpoint != "https://cloud.appwrite.io/v1" {
		t.Errorf("endpoint = %q", cfg.Appwrite.Endpoint)
	}
	if cfg.Appwrite.AppointmentCollectionID != "66a25893003c31a7f829" {
		t.Errorf("appointment collection = %q", cfg.Appwrite.AppointmentCollectionID)
	}
	if cfg.JWT.AccessExpiry != 15*time.Minute || cfg.Cache.ServiceCenterTTL != 5*time.Minute {
		t.Errorf("unexpected durations %+v %+v", cfg.JWT, cfg.Cache)
	}
	if cfg.App.Port != "8080" || cfg.RateLimit.Burst != 10 {
		t.Errorf("unexpected app config %+v %+v", cfg.App, cfg.RateLimit)
	}
}

func TestLoadFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	content := "JWT_SECRET=file-secret\nCORS_ALLOWED_ORIGINS=https://a.example,https://b.example\nAPPWRITE_PROJECT_ID=proj-x\nJWT_ACCESS_EXPIRY=not-a-duration\nAPP_PORT=9090\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := load(viper.New(), file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Appwrite.ProjectID != "proj-x" || cfg.App.Port != "9090" {
		t.Fatalf("unexpected config %+v %+v", cfg.Appwrite, cfg.App)
	}
	if len(cfg.App.AllowedOrigins) != 2 || cfg.App.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("allowed origins = %q", cfg.App.AllowedOrigins)
	}
	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Fatalf("invalid duration should fall back, got %v", cfg.JWT.AccessExpiry)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}
