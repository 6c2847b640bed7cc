package gameapi

import (
	"context"
	"dscbot/internal/common"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Routes inside the game API
const ROUTE_PLAYER = "api/getPlayer"
const ROUTE_WEAPONS = "api/getWeapons"

// The online players route hangs from its own base url
const ROUTE_ONLINE_PLAYERS = "players"

const USER_AGENT = "dscbot (+https://deadswitchcombat.com)"

type Client struct {
	apiUrl     string
	playersUrl string
	proxy      *common.Proxy
}

// Both base urls are normalised to end with a slash
func NewClient(apiUrl string, playersUrl string, timeout time.Duration) *Client {
	if playersUrl == "" {
		playersUrl = apiUrl
	}
	return &Client{
		apiUrl:     withSlash(apiUrl),
		playersUrl: withSlash(playersUrl),
		proxy:      common.NewProxy(map[string]string{"User-Agent": USER_AGENT, "Accept": "application/json"}, timeout),
	}
}

func (client *Client) GetPlayer(ctx context.Context, username string) (PlayerProfile, error) {

	address := client.apiUrl + ROUTE_PLAYER + "?" + url.Values{"username": {username}}.Encode()
	data, err := client.proxy.Request(ctx, address)
	if err != nil {
		return PlayerProfile{}, err
	}

	profile, err := UnmarshalPlayer(data)
	if err != nil {
		return PlayerProfile{}, fmt.Errorf("player %s: %w", username, err)
	}
	zerolog.Ctx(ctx).Debug().Str("player", profile.Name).Int("level", profile.Level).Msg("Found player")
	return profile, nil
}

func (client *Client) GetOnlinePlayers(ctx context.Context) ([]OnlinePlayer, error) {

	data, err := client.proxy.Request(ctx, client.playersUrl+ROUTE_ONLINE_PLAYERS)
	if err != nil {
		return nil, err
	}

	players, err := UnmarshalOnlinePlayers(data)
	if err != nil {
		return nil, fmt.Errorf("online players: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Int("count", len(players)).Dict("states", stateCounts(players)).Msg("Received online players")
	return players, nil
}

func (client *Client) GetWeapons(ctx context.Context) ([]Weapon, error) {

	data, err := client.proxy.Request(ctx, client.apiUrl+ROUTE_WEAPONS)
	if err != nil {
		return nil, err
	}

	weapons, err := UnmarshalWeapons(data)
	if err != nil {
		return nil, fmt.Errorf("weapons: %w", err)
	}
	return weapons, nil
}

// Fetch every weapon and return the first one whose id matches, ignoring case
func (client *Client) FindWeapon(ctx context.Context, id string) (Weapon, error) {

	weapons, err := client.GetWeapons(ctx)
	if err != nil {
		return Weapon{}, err
	}
	if weapon, ok := MatchWeapon(weapons, id); ok {
		return weapon, nil
	}
	return Weapon{}, fmt.Errorf("weapon %s: %w", id, ErrNotFound)
}

func MatchWeapon(weapons []Weapon, id string) (Weapon, bool) {
	for _, weapon := range weapons {
		if strings.EqualFold(weapon.Id, id) {
			return weapon, true
		}
	}
	return Weapon{}, false
}

func withSlash(base string) string {
	if strings.HasSuffix(base, "/") {
		return base
	}
	return base + "/"
}

func stateCounts(players []OnlinePlayer) *zerolog.Event {
	counts := map[PlayerState]int{}
	for _, player := range players {
		counts[player.State]++
	}
	dict := zerolog.Dict()
	for _, state := range []PlayerState{STATE_IN_GAME, STATE_IN_MENU} {
		dict.Int(state.String(), counts[state])
	}
	return dict
}
