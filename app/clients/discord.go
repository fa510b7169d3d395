package clients

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"PeaceScapeAI/app/runtime"
	"PeaceScapeAI/app/utils/restclient"
)

const discordPlatform = "discord"

var _ Interface = &DiscordClient{}

type DiscordClient struct {
	Client
	session    *discordgo.Session
	downloader *restclient.RestClient
}

func NewDiscordClient() (*DiscordClient, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, errors.New("DISCORD_TOKEN is not set")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	dc := &DiscordClient{
		session:    session,
		downloader: restclient.NewRestClient("", nil),
	}
	session.AddHandler(dc.onMessageCreate)
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return dc, nil
}

func (c *DiscordClient) Subscribe(rt *runtime.Runtime) {
	c.runtime = rt
	if err := c.session.Open(); err != nil {
		log.Printf("❌ Error opening Discord session: %v", err)
		return
	}
	log.Println("🏮 Discord client started. Listening for messages...")
}

func (c *DiscordClient) Close() error {
	return c.session.Close()
}

func (c *DiscordClient) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	if attachment := firstImageAttachment(m.Attachments); attachment != nil {
		c.handleImage(s, m, attachment)
		return
	}

	switch strings.TrimSpace(m.Content) {
	case "!start":
		c.send(s, m.ChannelID, welcomeMessage)
	case "!help", "!fengshui":
		c.send(s, m.ChannelID, runtime.UsageMessage)
	}
}

func firstImageAttachment(attachments []*discordgo.MessageAttachment) *discordgo.MessageAttachment {
	for _, a := range attachments {
		if strings.HasPrefix(a.ContentType, "image/") {
			return a
		}
	}
	return nil
}

func (c *DiscordClient) handleImage(s *discordgo.Session, m *discordgo.MessageCreate, attachment *discordgo.MessageAttachment) {
	processing, err := s.ChannelMessageSend(m.ChannelID, "🔄 Receiving your image...")
	if err != nil {
		log.Printf("⚠️ Error sending processing message: %v", err)
		return
	}

	data, status, err := c.downloader.Get(context.Background(), attachment.URL, nil)
	if err == nil && status != 200 {
		err = fmt.Errorf("http status %d", status)
	}
	if err != nil {
		log.Printf("❌ Error downloading attachment %s: %v", attachment.ID, err)
		c.edit(s, m.ChannelID, processing.ID, runtime.FailureMessage)
		return
	}

	request := &runtime.Request{
		ID:       uuid.NewString(),
		Platform: discordPlatform,
		ChatID:   m.ChannelID,
		Caption:  m.Content,
		Image:    data,
		Respond: func(text string) error {
			return c.edit(s, m.ChannelID, processing.ID, text)
		},
		Progress: func(text string) {
			c.edit(s, m.ChannelID, processing.ID, text)
		},
	}
	c.runtime.QueueEvent(runtime.Event{Request: request})
}

func (c *DiscordClient) send(s *discordgo.Session, channelID, text string) {
	if _, err := s.ChannelMessageSend(channelID, text); err != nil {
		log.Printf("⚠️ Error sending message to channel %s: %v", channelID, err)
	}
}

func (c *DiscordClient) edit(s *discordgo.Session, channelID, messageID, text string) error {
	_, err := s.ChannelMessageEdit(channelID, messageID, text)
	if err != nil {
		log.Printf("⚠️ Error editing message %s: %v", messageID, err)
	}
	return err
}
