// Package discord wraps the discordgo session behind the narrow surface
// the leaderboard pipeline needs: send text, send an image, edit in
// place, delete. Event-driven consumers (the moderation watcher) attach
// handlers to the underlying session directly.
package discord

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Session is the live gateway connection.
type Session struct {
	s *discordgo.Session
}

// New creates a session for the given bot token. Open must be called
// before any message operation.
func New(token string) (*Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord: create session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentGuildModeration
	return &Session{s: s}, nil
}

// Open connects to the gateway and blocks until the ready event fires.
func (g *Session) Open() error {
	ready := make(chan struct{})
	var once sync.Once
	remove := g.s.AddHandler(func(_ *discordgo.Session, _ *discordgo.Ready) {
		once.Do(func() { close(ready) })
	})
	defer remove()
	if err := g.s.Open(); err != nil {
		return fmt.Errorf("discord: open gateway: %w", err)
	}
	<-ready
	log.Printf("🤖 Discord gateway ready as %s", g.s.State.User.Username)
	return nil
}

// Close tears the gateway connection down.
func (g *Session) Close() error {
	return g.s.Close()
}

// Raw exposes the underlying session for event handlers.
func (g *Session) Raw() *discordgo.Session {
	return g.s
}

// SendText posts a message and returns its id.
func (g *Session) SendText(channelID, content string) (string, error) {
	m, err := g.s.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

// SendImage posts an image attachment and returns the message id.
func (g *Session) SendImage(channelID, filename string, r io.Reader) (string, error) {
	m, err := g.s.ChannelFileSend(channelID, filename, r)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

// EditText replaces a message's content in place.
func (g *Session) EditText(channelID, messageID, content string) error {
	_, err := g.s.ChannelMessageEdit(channelID, messageID, content)
	return err
}

// DeleteMessage removes a message.
func (g *Session) DeleteMessage(channelID, messageID string) error {
	return g.s.ChannelMessageDelete(channelID, messageID)
}

// CleanupChannel deletes the bot's own messages among the channel's
// most recent ones. Used at startup so stale boards from a previous run
// don't linger above the fresh ones.
func (g *Session) CleanupChannel(channelID string, limit int) error {
	self := g.s.State.User
	if self == nil {
		return errors.New("discord: cleanup before gateway ready")
	}

	msgs, err := g.s.ChannelMessages(channelID, limit, "", "", "")
	if err != nil {
		return fmt.Errorf("discord: read channel history: %w", err)
	}
	for _, m := range msgs {
		if m.Author == nil || m.Author.ID != self.ID {
			continue
		}
		if err := g.s.ChannelMessageDelete(channelID, m.ID); err != nil {
			log.Printf("⚠️ Could not delete old message %s: %v", m.ID, err)
			continue
		}
		log.Printf("🧹 Deleted old bot message %s", m.ID)
	}
	return nil
}

// IsNotFound reports whether err is the platform telling us the target
// message or channel no longer exists. Callers treat that as "clear the
// stale handle and move on", never as a cycle failure.
func (g *Session) IsNotFound(err error) bool {
	return IsNotFound(err)
}

// IsNotFound is the package-level form for callers without a session.
func IsNotFound(err error) bool {
	var rest *discordgo.RESTError
	if !errors.As(err, &rest) || rest.Message == nil {
		return false
	}
	switch rest.Message.Code {
	case discordgo.ErrCodeUnknownMessage, discordgo.ErrCodeUnknownChannel:
		return true
	}
	return false
}
