package app

import (
	"testing"

	"grouporder/config"
)

func TestWSBaseURL_DerivedFromAPI(t *testing.T) {
	cases := map[string]string{
		"http://localhost:8000/api":  "ws://localhost:8000",
		"https://food.example/api/":  "wss://food.example",
		"http://localhost:8000":      "ws://localhost:8000",
	}
	for apiBase, want := range cases {
		cfg := &config.Config{}
		cfg.API.BaseURL = apiBase
		if got := wsBaseURL(cfg); got != want {
			t.Fatalf("wsBaseURL(%q) = %q, want %q", apiBase, got, want)
		}
	}
}

func TestWSBaseURL_ExplicitWins(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.BaseURL = "http://localhost:8000/api"
	cfg.WS.BaseURL = "ws://push.example:9000"

	if got := wsBaseURL(cfg); got != "ws://push.example:9000" {
		t.Fatalf("explicit ws base must win, got %q", got)
	}
}
