package bot

import (
	"context"
	"dscbot/internal/gameapi"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// What the bot needs from the game API
type GameApi interface {
	GetPlayer(ctx context.Context, username string) (gameapi.PlayerProfile, error)
	GetOnlinePlayers(ctx context.Context) ([]gameapi.OnlinePlayer, error)
	FindWeapon(ctx context.Context, id string) (gameapi.Weapon, error)
}

type Bot struct {
	token  string
	prefix string
	api    GameApi
}

func NewBot(token string, prefix string, api GameApi) *Bot {
	return &Bot{token: token, prefix: prefix, api: api}
}

// Connect to discord and serve messages until ctx is done
func (bot *Bot) Run(ctx context.Context) error {
	// Create session
	discord, err := discordgo.New("Bot " + bot.token)
	if err != nil {
		return fmt.Errorf("could not create discord session: %w", err)
	}
	discord.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent

	// Event handlers
	discord.AddHandler(bot.Ready)
	discord.AddHandler(bot.Receive)

	// Open session
	if err := discord.Open(); err != nil {
		return fmt.Errorf("could not open discord session: %w", err)
	}
	defer discord.Close()

	log.Info().Msg("Bot is running")
	<-ctx.Done()
	log.Info().Msg("Closing discord session")
	return nil
}

func (bot *Bot) Ready(discord *discordgo.Session, ready *discordgo.Ready) {
	log.Info().Msg("Connected")
	log.Info().Msgf("Logged in as %s (%s)", ready.User.Username, ready.User.ID)
}

func (bot *Bot) Receive(discord *discordgo.Session, message *discordgo.MessageCreate) {
	selfId := ""
	if discord.State != nil && discord.State.User != nil {
		selfId = discord.State.User.ID
	}
	bot.Handle(context.Background(), discord, selfId, message.Message)
}

// Handle a single message, replying through sender when it is a command
func (bot *Bot) Handle(ctx context.Context, sender Sender, selfId string, message *discordgo.Message) {

	if message == nil || message.Author == nil {
		return
	}

	// Reject my own messages
	if message.Author.ID == selfId {
		return
	}

	parseResult := Parse(bot.prefix, message.Content)
	switch parseResult.parseid {
	case PARSEID_NO_BOT_PREFIX:
		return
	case PARSEID_NO_COMMAND, PARSEID_COMMAND_NOT_RECOGNISED:
		log.Debug().Str("content", message.Content).Msg("Ignoring unknown command")
		return
	}

	logger := log.With().
		Str("request_id", uuid.NewString()).
		Str("command", parseResult.input.Name).
		Str("channel_id", message.ChannelID).
		Str("author", message.Author.Username).
		Logger()
	ctx = logger.WithContext(ctx)

	// A panic before the reply still answers the user, once
	replied := false
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Bool("replied", replied).Msg("Command handler panicked")
			if !replied {
				Failure(parseResult.command).Send(ctx, message.ChannelID, sender)
			}
		}
	}()

	logger.Info().Strs("arguments", parseResult.input.Arguments).Msg("Command received")
	response := bot.dispatch(ctx, parseResult)
	replied = true
	response.Send(ctx, message.ChannelID, sender)
}

func (bot *Bot) dispatch(ctx context.Context, parseResult ParseResult) Response {

	if parseResult.parseid == PARSEID_NO_INPUT {
		zerolog.Ctx(ctx).Info().Msg("Missing argument")
		return MissingArgument(parseResult.errorMessage)
	}

	switch parseResult.command {
	case COMMAND_GET_PLAYER:
		return bot.getPlayer(ctx, parseResult.argument())
	case COMMAND_GET_ONLINE:
		return bot.getOnline(ctx)
	case COMMAND_GET_WEAPON:
		return bot.getWeapon(ctx, parseResult.argument())
	default:
		return HelpMessage(bot.prefix)
	}
}
