package bot

import (
	"context"
	"dscbot/internal/gameapi"
	"errors"

	"github.com/rs/zerolog"
)

// Fetch a value from the game API and turn it into exactly one response.
// Transport errors, bad payloads and missing entities all end in the same
// notice for the user, only the log tells them apart.
// A nil found accepts every successfully fetched value
func lookup[T any](ctx context.Context, fetch func(context.Context) (T, error), found func(T) bool, build func(T) Response, notFound string) Response {

	logger := zerolog.Ctx(ctx)

	value, err := fetch(ctx)
	if errors.Is(err, gameapi.ErrNotFound) {
		logger.Info().Err(err).Msg("Lookup found nothing")
		return Notice(notFound)
	}
	if err != nil {
		logger.Warn().Err(err).Msg("Lookup failed")
		return Notice(notFound)
	}
	if found != nil && !found(value) {
		logger.Info().Msg("Lookup returned an empty result")
		return Notice(notFound)
	}
	return build(value)
}

func (bot *Bot) getPlayer(ctx context.Context, username string) Response {
	return lookup(ctx,
		func(ctx context.Context) (gameapi.PlayerProfile, error) { return bot.api.GetPlayer(ctx, username) },
		func(profile gameapi.PlayerProfile) bool { return profile.Name != "" },
		PlayerProfile,
		PLAYER_DOES_NOT_EXIST,
	)
}

func (bot *Bot) getOnline(ctx context.Context) Response {
	return lookup(ctx, bot.api.GetOnlinePlayers, nil, OnlinePlayers, ONLINE_PLAYERS_FAILURE)
}

func (bot *Bot) getWeapon(ctx context.Context, id string) Response {
	return lookup(ctx,
		func(ctx context.Context) (gameapi.Weapon, error) { return bot.api.FindWeapon(ctx, id) },
		nil,
		WeaponStats,
		WEAPON_DOES_NOT_EXIST,
	)
}
