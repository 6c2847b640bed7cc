package gameapi

import (
	"errors"
	"fmt"
	"time"
)

var (
	// The entity looked up is not known to the remote API
	ErrNotFound = errors.New("not found")
	// The response body is valid JSON but none of the shapes we understand
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

type PlayerState int

const (
	STATE_IN_GAME PlayerState = iota
	STATE_IN_MENU
)

func (state PlayerState) String() string {
	switch state {
	case STATE_IN_GAME:
		return "in-game"
	case STATE_IN_MENU:
		return "in-menu"
	default:
		return fmt.Sprintf("state(%d)", int(state))
	}
}

type Stats struct {
	Kills      *float64
	ShotsFired *float64
}

type PlayerProfile struct {
	Name     string
	Level    int
	Prestige int
	Xp       float64
	// The remote API does not always send it, in which case it equals Xp
	TotalXp      float64
	Stats        Stats
	JoinDate     time.Time
	LastModified time.Time
}

type OnlinePlayer struct {
	Name       string
	Level      int
	Prestige   int
	State      PlayerState
	ServerName string
	GameModeId string
}

type Weapon struct {
	Id       string
	Name     string
	Type     string
	Damage   float64
	Rpm      float64
	Mobility float64
	FireMode string
	Cost     float64
}
