package gameapi

import (
	"errors"
	"testing"
	"time"
)

func TestUnmarshalPlayer(t *testing.T) {
	data := []byte(`{
		"profile": {"name": "Foo", "level": 12, "prestige": 2, "xp": 300, "totalXP": 90000, "stats": {"kills": 7, "shotsFired": 120}},
		"joinDate": "2023-06-01T12:00:00Z",
		"lastModified": "1735689600000"
	}`)

	profile, err := UnmarshalPlayer(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if profile.Name != "Foo" || profile.Level != 12 || profile.Prestige != 2 {
		t.Errorf("Unexpected profile %+v", profile)
	}
	if profile.Xp != 300 || profile.TotalXp != 90000 {
		t.Errorf("Expected xp 300 and total xp 90000, got %v and %v", profile.Xp, profile.TotalXp)
	}
	if profile.Stats.Kills == nil || *profile.Stats.Kills != 7 {
		t.Errorf("Expected 7 kills, got %v", profile.Stats.Kills)
	}
	if profile.Stats.ShotsFired == nil || *profile.Stats.ShotsFired != 120 {
		t.Errorf("Expected 120 shots fired, got %v", profile.Stats.ShotsFired)
	}
	if !profile.JoinDate.Equal(time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected join date %v", profile.JoinDate)
	}
	if !profile.LastModified.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected last modified %v", profile.LastModified)
	}
}

func TestUnmarshalPlayerDefaults(t *testing.T) {
	data := []byte(`{"profile": {"name": "New", "level": 1, "xp": 40, "stats": {}, "joinDate": 1700000000000}}`)

	profile, err := UnmarshalPlayer(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if profile.TotalXp != 40 {
		t.Errorf("Expected total xp to default to xp, got %v", profile.TotalXp)
	}
	if profile.Stats.Kills != nil || profile.Stats.ShotsFired != nil {
		t.Errorf("Expected missing stats to stay nil")
	}
	if profile.JoinDate.UnixMilli() != 1700000000000 {
		t.Errorf("Expected the join date inside the profile to be used, got %v", profile.JoinDate)
	}
	if !profile.LastModified.IsZero() {
		t.Errorf("Expected zero last modified, got %v", profile.LastModified)
	}
}

func TestUnmarshalPlayerDates(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		joinDate     time.Time
		lastModified time.Time
	}{
		{
			"date only",
			`{"profile": {"name": "x"}, "joinDate": "2024-01-15"}`,
			time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			time.Time{},
		},
		{
			"unreadable dates are unknown",
			`{"profile": {"name": "x"}, "joinDate": "yesterday", "lastModified": true}`,
			time.Time{},
			time.Time{},
		},
		{
			"unreadable top level falls back to the profile",
			`{"profile": {"name": "x", "joinDate": "2023-06-01T12:00:00Z"}, "joinDate": "soon"}`,
			time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC),
			time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := UnmarshalPlayer([]byte(tt.data))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if profile.Name != "x" {
				t.Errorf("Expected the profile to be kept, got %+v", profile)
			}
			if !profile.JoinDate.Equal(tt.joinDate) {
				t.Errorf("Expected join date %v, got %v", tt.joinDate, profile.JoinDate)
			}
			if !profile.LastModified.Equal(tt.lastModified) {
				t.Errorf("Expected last modified %v, got %v", tt.lastModified, profile.LastModified)
			}
		})
	}
}

func TestUnmarshalPlayerErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected error
	}{
		{"null profile", `{"profile": null}`, ErrNotFound},
		{"missing profile", `{}`, ErrNotFound},
		{"array", `[]`, ErrUnexpectedShape},
		{"wrong type", `{"profile": {"level": "ten"}}`, ErrUnexpectedShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalPlayer([]byte(tt.data))
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}

	if _, err := UnmarshalPlayer([]byte(`{not json`)); err == nil {
		t.Error("Expected an error for malformed json")
	}
}

func TestUnmarshalOnlinePlayers(t *testing.T) {
	bare := `[{"name": "a", "level": 3, "state": "in-game", "serverName": "[NA] One", "gameModeId": "free_for_all"}, {"name": "b", "level": 9, "prestige": 1, "state": "in-menu"}]`
	wrapped := `{"players": ` + bare + `}`

	for _, data := range []string{bare, wrapped, "  \n" + bare} {
		players, err := UnmarshalOnlinePlayers([]byte(data))
		if err != nil {
			t.Fatalf("Unexpected error for %s: %v", data, err)
		}
		if len(players) != 2 {
			t.Fatalf("Expected 2 players, got %d", len(players))
		}
		if players[0].State != STATE_IN_GAME || players[0].ServerName != "[NA] One" || players[0].GameModeId != "free_for_all" {
			t.Errorf("Unexpected first player %+v", players[0])
		}
		if players[1].State != STATE_IN_MENU || players[1].Prestige != 1 {
			t.Errorf("Unexpected second player %+v", players[1])
		}
	}
}

func TestUnmarshalOnlinePlayersShapes(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty body", ""},
		{"number", "42"},
		{"object without players", `{"count": 2}`},
		{"players not an array", `{"players": "none"}`},
		{"unknown state", `[{"name": "a", "state": "spectating"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalOnlinePlayers([]byte(tt.data)); !errors.Is(err, ErrUnexpectedShape) {
				t.Errorf("Expected ErrUnexpectedShape, got %v", err)
			}
		})
	}
}

func TestParseState(t *testing.T) {
	tests := map[string]PlayerState{
		"in-game": STATE_IN_GAME,
		"IN_GAME": STATE_IN_GAME,
		"ingame":  STATE_IN_GAME,
		"in-menu": STATE_IN_MENU,
		"In Menu": STATE_IN_MENU,
		"menu":    STATE_IN_MENU,
	}
	for input, expected := range tests {
		state, err := parseState(input)
		if err != nil || state != expected {
			t.Errorf("parseState(%q) = %v, %v, expected %v", input, state, err, expected)
		}
	}
}

func TestUnmarshalWeapons(t *testing.T) {
	weapons, err := UnmarshalWeapons([]byte(`[{"id": "AK47", "name": "AK-47", "type": "Rifle", "damage": 35, "rpm": 600, "mobility": 85, "fireMode": "Auto", "cost": 12500}]`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := Weapon{Id: "AK47", Name: "AK-47", Type: "Rifle", Damage: 35, Rpm: 600, Mobility: 85, FireMode: "Auto", Cost: 12500}
	if len(weapons) != 1 || weapons[0] != expected {
		t.Errorf("Expected %+v, got %+v", expected, weapons)
	}

	if _, err := UnmarshalWeapons([]byte(`{"weapons": []}`)); !errors.Is(err, ErrUnexpectedShape) {
		t.Errorf("Expected ErrUnexpectedShape for an object, got %v", err)
	}
}
