package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.github.com/" {
		t.Errorf("expected default API base URL, got %q", cfg.APIBaseURL)
	}
	if cfg.UserAgent != "github-activity/1.0" {
		t.Errorf("expected default user agent, got %q", cfg.UserAgent)
	}
	if cfg.MaxEvents != 10 {
		t.Errorf("expected default MaxEvents=10, got %d", cfg.MaxEvents)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GITHUB_API_URL", "http://127.0.0.1:8080/")
	t.Setenv("GITHUB_ACTIVITY_USER_AGENT", "test-agent/0.1")
	t.Setenv("GITHUB_ACTIVITY_MAX_EVENTS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://127.0.0.1:8080/" {
		t.Errorf("expected overridden API base URL, got %q", cfg.APIBaseURL)
	}
	if cfg.UserAgent != "test-agent/0.1" {
		t.Errorf("expected overridden user agent, got %q", cfg.UserAgent)
	}
	if cfg.MaxEvents != 5 {
		t.Errorf("expected MaxEvents=5, got %d", cfg.MaxEvents)
	}
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("GITHUB_ACTIVITY_MAX_EVENTS", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("expected an error for a non-numeric MaxEvents")
	}
}
