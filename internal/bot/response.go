package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// The subset of *discordgo.Session used to reply
type Sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type ResponseString struct {
	string
}
type ResponseEmbed struct {
	discordgo.MessageEmbed
}

type Response interface {
	Send(ctx context.Context, channelid string, sender Sender)
}

func (response ResponseString) Send(ctx context.Context, channelid string, sender Sender) {
	send(ctx, sender, channelid, &discordgo.MessageSend{Content: response.string})
}

func (response ResponseEmbed) Send(ctx context.Context, channelid string, sender Sender) {
	embed := response.MessageEmbed
	send(ctx, sender, channelid, &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{&embed}})
}

// A failed send is only logged, the channel may be gone by now
func send(ctx context.Context, sender Sender, channelid string, data *discordgo.MessageSend) {
	if _, err := sender.ChannelMessageSendComplex(channelid, data); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("channel_id", channelid).Msg("Could not send response")
	}
}
