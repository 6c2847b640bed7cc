package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Unsets every variable, values are restored when the test ends
func clearEnv(t *testing.T) {
	for _, key := range []string{"DISCORD_BOT_TOKEN", "DSC_API_URL", "DSC_PLAYERS_URL", "COMMAND_PREFIX", "FETCH_TIMEOUT", "LOG_LEVEL", "LOG_PRETTY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_BOT_TOKEN", "secret")

	cfg, found, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if found {
		t.Error("Expected no .env file to be found")
	}
	if cfg.DiscordToken != "secret" {
		t.Errorf("Expected token 'secret', got '%s'", cfg.DiscordToken)
	}
	if cfg.ApiUrl != "https://dsc.wilkingames.net/" {
		t.Errorf("Unexpected default api url '%s'", cfg.ApiUrl)
	}
	if cfg.PlayersUrl != cfg.ApiUrl {
		t.Errorf("Expected players url to default to the api url, got '%s'", cfg.PlayersUrl)
	}
	if cfg.CommandPrefix != "!" {
		t.Errorf("Expected prefix '!', got '%s'", cfg.CommandPrefix)
	}
	if cfg.FetchTimeout != 8*time.Second {
		t.Errorf("Expected 8s timeout, got %s", cfg.FetchTimeout)
	}
	if cfg.LogLevel != "debug" || !cfg.LogPretty {
		t.Errorf("Unexpected log settings %s %v", cfg.LogLevel, cfg.LogPretty)
	}
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), ".env")
	content := "DISCORD_BOT_TOKEN=from-file\nDSC_PLAYERS_URL=https://players.example.com/\nFETCH_TIMEOUT=3s\nLOG_PRETTY=false\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, found, err := Load(file)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !found {
		t.Error("Expected the .env file to be found")
	}
	if cfg.DiscordToken != "from-file" {
		t.Errorf("Expected token 'from-file', got '%s'", cfg.DiscordToken)
	}
	if cfg.PlayersUrl != "https://players.example.com/" {
		t.Errorf("Unexpected players url '%s'", cfg.PlayersUrl)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("Expected 3s timeout, got %s", cfg.FetchTimeout)
	}
	if cfg.LogPretty {
		t.Error("Expected pretty logging to be disabled")
	}
}

func TestLoadErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	clearEnv(t)
	if _, _, err := Load(missing); err == nil {
		t.Error("Expected an error without a token")
	}

	clearEnv(t)
	t.Setenv("DISCORD_BOT_TOKEN", "secret")
	t.Setenv("FETCH_TIMEOUT", "-1s")
	if _, _, err := Load(missing); err == nil {
		t.Error("Expected an error for a negative timeout")
	}

	clearEnv(t)
	t.Setenv("DISCORD_BOT_TOKEN", "secret")
	t.Setenv("FETCH_TIMEOUT", "soon")
	if _, _, err := Load(missing); err == nil {
		t.Error("Expected an error for an unparsable timeout")
	}
}
