package discord

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// Event is one inbound message notification with its channel kind already
// resolved, since the gateway payload itself does not carry it.
type Event struct {
	Message     *discordgo.MessageCreate
	ChannelKind string
}

// transport is the slice of the Discord session surface the adapter consumes.
// The gateway protocol, rate limiting and reconnection stay inside discordgo.
type transport interface {
	Login(ctx context.Context) error
	Close() error
	SelfID() string
	ChannelKind(channelID string) string
	SendText(ctx context.Context, channelID, text string) error
	SendFile(ctx context.Context, channelID, name string, source io.Reader) error
	OnMessage(fn func(ev Event)) (remove func())
}

type session struct {
	s      *discordgo.Session
	logger *slog.Logger
}

func newSession(token string, log *slog.Logger) (*session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	sess := &session{s: s, logger: log}
	s.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		sess.logger.Error("gateway disconnected")
	})
	return sess, nil
}

func (s *session) Login(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return s.s.Open()
}

func (s *session) Close() error {
	return s.s.Close()
}

func (s *session) SelfID() string {
	if s.s.State != nil && s.s.State.User != nil {
		return s.s.State.User.ID
	}
	return ""
}

// ChannelKind resolves the channel's kind as a short string. State is
// consulted first; on a miss the channel is fetched over REST. Unknown kinds
// pass through as their numeric value.
func (s *session) ChannelKind(channelID string) string {
	ch, err := s.s.State.Channel(channelID)
	if err != nil {
		ch, err = s.s.Channel(channelID)
	}
	if err != nil || ch == nil {
		return "text"
	}
	return channelKindString(ch.Type)
}

func (s *session) SendText(ctx context.Context, channelID, text string) error {
	_, err := s.s.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx))
	return err
}

func (s *session) SendFile(ctx context.Context, channelID, name string, source io.Reader) error {
	_, err := s.s.ChannelFileSend(channelID, name, source, discordgo.WithContext(ctx))
	return err
}

func (s *session) OnMessage(fn func(ev Event)) func() {
	return s.s.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		fn(Event{
			Message:     m,
			ChannelKind: s.ChannelKind(m.ChannelID),
		})
	})
}

func channelKindString(t discordgo.ChannelType) string {
	switch t {
	case discordgo.ChannelTypeGuildText:
		return "text"
	case discordgo.ChannelTypeDM:
		return "dm"
	case discordgo.ChannelTypeGroupDM:
		return "group"
	case discordgo.ChannelTypeGuildVoice:
		return "voice"
	case discordgo.ChannelTypeGuildNews:
		return "news"
	default:
		return strconv.Itoa(int(t))
	}
}
