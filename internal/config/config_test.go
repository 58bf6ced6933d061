package config

import "testing"

func TestServiceURL(t *testing.T) {
	tests := []struct {
		name     string
		override string
		env      string
		want     string
	}{
		{"default", "", "", "http://localhost:8000"},
		{"env", "", "http://recipes.internal:9000", "http://recipes.internal:9000"},
		{"override beats env", "http://localhost:1234", "http://recipes.internal:9000", "http://localhost:1234"},
		{"trailing slash stripped", "http://localhost:1234/", "", "http://localhost:1234"},
		{"whitespace env ignored", "", "   ", "http://localhost:8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvServiceURL, tt.env)
			if got := ServiceURL(tt.override); got != tt.want {
				t.Errorf("ServiceURL(%q) = %q, want %q", tt.override, got, tt.want)
			}
		})
	}
}
