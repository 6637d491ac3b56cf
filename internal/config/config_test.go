package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DB_DRIVER", "SERVER_PORT", "SESSION_TTL", "APP_TIMEZONE",
		"DEFAULT_BOOKING_TIME", "CORS_ORIGINS", "S3_BUCKET", "IMAGE_MAX_WIDTH",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.DBDriver != "postgres" {
		t.Errorf("Expected driver postgres, got %s", cfg.DBDriver)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Expected addr :8080, got %s", cfg.Addr())
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("Expected 24h session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.DefaultBookingTime != "09:00" {
		t.Errorf("Expected default booking time 09:00, got %s", cfg.DefaultBookingTime)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("Expected wildcard origins, got %v", cfg.CORSOrigins)
	}
	if cfg.MediaEnabled() {
		t.Error("Media should be disabled without a bucket")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("S3_BUCKET", "media")
	t.Setenv("IMAGE_MAX_WIDTH", "not-a-number")

	cfg := Load()

	if cfg.DBDriver != "sqlite" {
		t.Errorf("Expected driver sqlite, got %s", cfg.DBDriver)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("Expected addr :9090, got %s", cfg.Addr())
	}
	if cfg.SessionTTL != 90*time.Minute {
		t.Errorf("Expected 90m session ttl, got %s", cfg.SessionTTL)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("Expected 2 origins, got %v", cfg.CORSOrigins)
	}
	if !cfg.MediaEnabled() {
		t.Error("Media should be enabled with a bucket")
	}
	if cfg.ImageMaxWidth != 1280 {
		t.Errorf("Expected fallback width 1280, got %d", cfg.ImageMaxWidth)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tz      string
		at      string
		wantErr bool
	}{
		{"defaults", "UTC", "09:00", false},
		{"named zone", "America/Sao_Paulo", "18:30", false},
		{"unknown zone", "Mars/Olympus", "09:00", true},
		{"malformed time", "UTC", "9am", true},
		{"out of range time", "UTC", "25:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Timezone: tt.tz, DefaultBookingTime: tt.at}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
