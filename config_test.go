package fields_test

import (
	"testing"
	"time"

	fields "github.com/goliatone/go-fields"
)

func TestDefaultConfig(t *testing.T) {
	cfg := fields.DefaultConfig()
	if cfg.DefaultLocale != "en" {
		t.Fatalf("default locale = %q", cfg.DefaultLocale)
	}
	if cfg.Cache.Enabled {
		t.Fatal("cache should be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*fields.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *fields.Config) {}},
		{name: "missing default locale", mutate: func(c *fields.Config) { c.DefaultLocale = " " }, wantErr: true},
		{name: "cache enabled without ttl", mutate: func(c *fields.Config) {
			c.Cache.Enabled = true
			c.Cache.TTL = 0
		}, wantErr: true},
		{name: "cache enabled with ttl", mutate: func(c *fields.Config) {
			c.Cache.Enabled = true
			c.Cache.TTL = time.Minute
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := fields.DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
