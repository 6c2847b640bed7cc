package bot

import (
	"cmp"
	"dscbot/internal/gameapi"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Deadswitch Combat orange
const color int = 14177600

const logoUrl string = "https://xwilkinx.com/play/combat/latest/assets/images/ui/logo.png"

// Online players shown in a single embed
const maxOnlinePlayers int = 10

// Discord refuses embeds over these lengths
const (
	maxTitleLength      int = 256
	maxFieldNameLength  int = 256
	maxFieldValueLength int = 1024
)

const (
	PLAYER_DOES_NOT_EXIST  = "That player does not exist!"
	WEAPON_DOES_NOT_EXIST  = "That weapon does not exist!"
	NO_PLAYERS_ONLINE      = "There are no players online."
	ONLINE_PLAYERS_FAILURE = "Failed to retrieve online players."
	COMMAND_FAILURE        = "Something went wrong, try again later."
)

// Notice sent when a command breaks before replying
var commandFailure map[int]string = map[int]string{
	COMMAND_GET_PLAYER: PLAYER_DOES_NOT_EXIST,
	COMMAND_GET_ONLINE: ONLINE_PLAYERS_FAILURE,
	COMMAND_GET_WEAPON: WEAPON_DOES_NOT_EXIST,
}

func Failure(command int) Response {
	if notice, ok := commandFailure[command]; ok {
		return Notice(notice)
	}
	return Notice(COMMAND_FAILURE)
}

// Every embed the bot sends shares color and thumbnail.
// Title and fields are cut to the lengths Discord accepts
func newEmbed(title string, description string, fields ...*discordgo.MessageEmbedField) discordgo.MessageEmbed {
	for _, field := range fields {
		field.Name = Truncate(field.Name, maxFieldNameLength)
		field.Value = Truncate(field.Value, maxFieldValueLength)
	}
	return discordgo.MessageEmbed{
		Title:       Truncate(title, maxTitleLength),
		Description: description,
		Color:       color,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: logoUrl},
		Fields:      fields,
	}
}

func Notice(description string) Response {
	return ResponseEmbed{newEmbed("", description)}
}

func MissingArgument(message string) Response {
	return ResponseString{message}
}

func HelpMessage(prefix string) Response {

	embed := newEmbed("Commands available", "")
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("`%sgetPlayer <username>`", prefix),
		Value: "Show the profile of a player",
	})
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("`%sgetOnline`", prefix),
		Value: "List the players currently online",
	})
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("`%sgetWeapon <weapon_id>`", prefix),
		Value: "Show the stats of a weapon",
	})
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("`%shelp`", prefix),
		Value: "Print the usage of the different commands",
	})
	return ResponseEmbed{embed}
}

func FormatRank(level int, prestige int) string {
	rank := fmt.Sprintf("Level %d", level)
	if prestige > 0 {
		rank += fmt.Sprintf(" Prestige %d", prestige)
	}
	return rank
}

func PlayerProfile(profile gameapi.PlayerProfile) Response {

	totalXp := max(profile.Xp, profile.TotalXp)
	embed := newEmbed(profile.Name, "",
		&discordgo.MessageEmbedField{Name: "Rank", Value: FormatRank(profile.Level, profile.Prestige)},
		&discordgo.MessageEmbedField{Name: "XP", Value: FormatNum(profile.Xp)},
		&discordgo.MessageEmbedField{Name: "Total XP", Value: FormatNum(totalXp)},
		&discordgo.MessageEmbedField{Name: "Kills", Value: FormatNum(profile.Stats.Kills)},
		&discordgo.MessageEmbedField{Name: "Shots Fired", Value: FormatNum(profile.Stats.ShotsFired)},
		&discordgo.MessageEmbedField{Name: "Join Date", Value: FormatDate(profile.JoinDate)},
		&discordgo.MessageEmbedField{Name: "Last Seen", Value: FormatDate(profile.LastModified)},
	)
	return ResponseEmbed{embed}
}

// In game first, then highest level first. Ties keep the order of the API
func SortOnlinePlayers(players []gameapi.OnlinePlayer) []gameapi.OnlinePlayer {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b gameapi.OnlinePlayer) int {
		if c := cmp.Compare(a.State, b.State); c != 0 {
			return c
		}
		return cmp.Compare(b.Level, a.Level)
	})
	return sorted
}

func OnlinePlayerName(player gameapi.OnlinePlayer) string {
	rank := fmt.Sprintf("Level %d", player.Level)
	if player.Prestige > 0 {
		rank += fmt.Sprintf(", Prestige %d", player.Prestige)
	}
	return fmt.Sprintf("%s (%s)", player.Name, rank)
}

func OnlinePlayerValue(player gameapi.OnlinePlayer) string {
	parts := []string{}
	switch player.State {
	case gameapi.STATE_IN_GAME:
		parts = append(parts, "🟢 In Game")
	default:
		parts = append(parts, "🟡 In Menu")
	}
	if server := CleanServerName(player.ServerName); server != "" {
		parts = append(parts, server)
	}
	if mode := FormatGameMode(player.GameModeId); mode != "" {
		parts = append(parts, mode)
	}
	return strings.Join(parts, " — ")
}

func OnlinePlayers(players []gameapi.OnlinePlayer) Response {

	total := len(players)
	if total == 0 {
		return Notice(NO_PLAYERS_ONLINE)
	}

	shown := SortOnlinePlayers(players)
	if len(shown) > maxOnlinePlayers {
		shown = shown[:maxOnlinePlayers]
	}

	description := ""
	if total > maxOnlinePlayers {
		description = fmt.Sprintf("Showing %d of %d players.", len(shown), total)
	}
	fields := make([]*discordgo.MessageEmbedField, 0, len(shown))
	for _, player := range shown {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  OnlinePlayerName(player),
			Value: OnlinePlayerValue(player),
		})
	}
	return ResponseEmbed{newEmbed(fmt.Sprintf("Online Players (%d)", total), description, fields...)}
}

func WeaponStats(weapon gameapi.Weapon) Response {

	number := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	embed := newEmbed(weapon.Name, "",
		&discordgo.MessageEmbedField{Name: "Type", Value: orDash(weapon.Type), Inline: true},
		&discordgo.MessageEmbedField{Name: "Damage", Value: number(weapon.Damage), Inline: true},
		&discordgo.MessageEmbedField{Name: "RPM", Value: number(weapon.Rpm), Inline: true},
		&discordgo.MessageEmbedField{Name: "Mobility", Value: number(weapon.Mobility), Inline: true},
		&discordgo.MessageEmbedField{Name: "Fire Mode", Value: orDash(weapon.FireMode), Inline: true},
		&discordgo.MessageEmbedField{Name: "Cost", Value: FormatNum(weapon.Cost) + " Credits", Inline: true},
	)
	return ResponseEmbed{embed}
}

// Discord rejects fields with an empty value
func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
