package config

import "testing"

func TestEndpoint(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"defaults", Config{BaseURL: "http://localhost:5000", ChatPath: "/chat"}, "http://localhost:5000/chat"},
		{"context path", Config{BaseURL: "http://host", ContextPath: "/app-llm", ChatPath: "/chat"}, "http://host/app-llm/chat"},
		{"slashes", Config{BaseURL: "http://host/", ContextPath: "app-llm/", ChatPath: "chat"}, "http://host/app-llm/chat"},
		{"relative", Config{ContextPath: "/k8s-day", ChatPath: "/chat"}, "/k8s-day/chat"},
		{"relative no context", Config{ChatPath: "/chat"}, "/chat"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.Endpoint(); got != tc.want {
				t.Fatalf("Endpoint() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("BASEURL", "http://chat.internal")
	t.Setenv("APP_ROOT_CONTEXT", "/app")
	t.Setenv("CHATPATH", "")
	t.Setenv("LOCALE", "pt-BR")
	t.Setenv("LOGLEVEL", "debug")
	t.Setenv("METRICSADDR", ":9090")

	cfg := New()

	if cfg.Endpoint() != "http://chat.internal/app/chat" {
		t.Fatalf("unexpected endpoint %q", cfg.Endpoint())
	}
	if cfg.Locale != "pt-BR" || cfg.LogLevel != "debug" || cfg.MetricsAddr != ":9090" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}
