package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/plan-systems/klog"
)

// Bot owns the Discord session and routes incoming messages through a
// Dispatcher.
type Bot struct {
	session  *discordgo.Session
	dispatch *Dispatcher
	presence string
}

// New builds a Bot around a fresh Discord session. The session needs the
// message-content intent on top of guild and DM messages, or command text
// arrives empty.
func New(token string, d *Dispatcher, presence string) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("bot: create session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	b := &Bot{session: s, dispatch: d, presence: presence}
	s.AddHandler(b.onReady)
	s.AddHandler(b.onMessage)

	return b, nil
}

// Open connects to the Discord gateway.
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("bot: open gateway: %w", err)
	}

	return nil
}

// Close shuts the gateway connection down.
func (b *Bot) Close() error {
	return b.session.Close()
}

// onReady logs the identity and sets the online presence.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	klog.Infof("logged in as %s (ID %s)", r.User.String(), r.User.ID)
	if err := s.UpdateGameStatus(0, b.presence); err != nil {
		klog.Warningf("set presence: %v", err)
	}
}

// onMessage ignores bots (ourselves included) and replies to dispatched
// commands in the channel they arrived on.
func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	reply, ok := b.dispatch.Dispatch(m.Content, m.Author.Mention())
	if !ok {
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		klog.Errorf("send reply to channel %s: %v", m.ChannelID, err)
	}
}
