package gameapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type rawProfile struct {
	Name     string   `json:"name"`
	Level    float64  `json:"level"`
	Prestige float64  `json:"prestige"`
	Xp       float64  `json:"xp"`
	TotalXp  *float64 `json:"totalXP"`
	Stats    struct {
		Kills      *float64 `json:"kills"`
		ShotsFired *float64 `json:"shotsFired"`
	} `json:"stats"`
	JoinDate     json.RawMessage `json:"joinDate"`
	LastModified json.RawMessage `json:"lastModified"`
}

type rawOnlinePlayer struct {
	Name       string  `json:"name"`
	Level      float64 `json:"level"`
	Prestige   float64 `json:"prestige"`
	State      string  `json:"state"`
	ServerName string  `json:"serverName"`
	GameModeId string  `json:"gameModeId"`
}

type rawWeapon struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Damage   float64 `json:"damage"`
	Rpm      float64 `json:"rpm"`
	Mobility float64 `json:"mobility"`
	FireMode string  `json:"fireMode"`
	Cost     float64 `json:"cost"`
}

// Any json error that is not a syntax error means the body did not
// have the shape we expected
func shapeError(err error) error {
	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) {
		return fmt.Errorf("malformed json: %w", err)
	}
	return fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
}

func UnmarshalPlayer(data []byte) (PlayerProfile, error) {

	var raw struct {
		Profile      *rawProfile     `json:"profile"`
		JoinDate     json.RawMessage `json:"joinDate"`
		LastModified json.RawMessage `json:"lastModified"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return PlayerProfile{}, shapeError(err)
	}
	if raw.Profile == nil {
		return PlayerProfile{}, ErrNotFound
	}

	profile := PlayerProfile{
		Name:     raw.Profile.Name,
		Level:    int(raw.Profile.Level),
		Prestige: int(raw.Profile.Prestige),
		Xp:       raw.Profile.Xp,
		TotalXp:  raw.Profile.Xp,
		Stats:    Stats{Kills: raw.Profile.Stats.Kills, ShotsFired: raw.Profile.Stats.ShotsFired},
	}
	if raw.Profile.TotalXp != nil {
		profile.TotalXp = *raw.Profile.TotalXp
	}

	// Dates live next to the profile, older responses kept them inside it.
	// They are only displayed, so a date we cannot read is left unknown
	var err error
	if profile.JoinDate, err = firstTimestamp(raw.JoinDate, raw.Profile.JoinDate); err != nil {
		log.Warn().Err(err).Str("player", profile.Name).Msg("Ignoring join date")
	}
	if profile.LastModified, err = firstTimestamp(raw.LastModified, raw.Profile.LastModified); err != nil {
		log.Warn().Err(err).Str("player", profile.Name).Msg("Ignoring last modified date")
	}

	return profile, nil
}

// Accepts a bare array of players or an object wrapping it
func UnmarshalOnlinePlayers(data []byte) ([]OnlinePlayer, error) {

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}

	var raws []rawOnlinePlayer
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, shapeError(err)
		}
	case '{':
		var wrapper struct {
			Players *[]rawOnlinePlayer `json:"players"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, shapeError(err)
		}
		if wrapper.Players == nil {
			return nil, fmt.Errorf("%w: object without players field", ErrUnexpectedShape)
		}
		raws = *wrapper.Players
	default:
		return nil, fmt.Errorf("%w: expected array or object", ErrUnexpectedShape)
	}

	players := make([]OnlinePlayer, 0, len(raws))
	for _, raw := range raws {
		state, err := parseState(raw.State)
		if err != nil {
			return nil, err
		}
		players = append(players, OnlinePlayer{
			Name:       raw.Name,
			Level:      int(raw.Level),
			Prestige:   int(raw.Prestige),
			State:      state,
			ServerName: raw.ServerName,
			GameModeId: raw.GameModeId,
		})
	}
	return players, nil
}

func UnmarshalWeapons(data []byte) ([]Weapon, error) {

	var raws []rawWeapon
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, shapeError(err)
	}

	weapons := make([]Weapon, len(raws))
	for i, raw := range raws {
		weapons[i] = Weapon(raw)
	}
	return weapons, nil
}

func parseState(state string) (PlayerState, error) {
	normalised := strings.ToLower(state)
	normalised = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalised)
	switch normalised {
	case "ingame", "game":
		return STATE_IN_GAME, nil
	case "inmenu", "menu":
		return STATE_IN_MENU, nil
	default:
		return 0, fmt.Errorf("%w: unknown player state %q", ErrUnexpectedShape, state)
	}
}

// The first candidate that parses to a non zero time wins. The error of an
// unreadable candidate is only returned when no other candidate is usable
func firstTimestamp(candidates ...json.RawMessage) (time.Time, error) {
	var firstErr error
	for _, candidate := range candidates {
		t, err := parseTimestamp(candidate)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !t.IsZero() {
			return t, nil
		}
	}
	return time.Time{}, firstErr
}

// Timestamps arrive as ISO 8601 strings, plain dates or milliseconds since epoch.
// Absent and null values give the zero time
func parseTimestamp(data json.RawMessage) (time.Time, error) {

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return time.Time{}, nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return time.Time{}, shapeError(err)
		}
		if s == "" {
			return time.Time{}, nil
		}
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t, nil
		}
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			return t, nil
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.UnixMilli(ms), nil
		}
		return time.Time{}, fmt.Errorf("%w: timestamp %q not understood", ErrUnexpectedShape, s)
	}

	var ms float64
	if err := json.Unmarshal(trimmed, &ms); err != nil {
		return time.Time{}, shapeError(err)
	}
	return time.UnixMilli(int64(ms)), nil
}
