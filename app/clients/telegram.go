package clients

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"PeaceScapeAI/app/fengshui"
	"PeaceScapeAI/app/runtime"
	"PeaceScapeAI/app/utils/restclient"
)

const (
	telegramPlatform    = "telegram"
	downloadMaxAttempts = 3
	telegramPollTimeout = 30
	historyLength       = 5
)

const welcomeMessage = "🏮 Welcome to PeaceScape AI! 🏮\n\n" +
	"Send a photo of a space for personalized Feng Shui recommendations. 🌟\n" +
	"Add your birth year to the caption to tailor the advice to your element."

var _ Interface = &TelegramClient{}

type TelegramClient struct {
	Client
	bot        *tgbotapi.BotAPI
	downloader *restclient.RestClient
}

func NewTelegramClient() (*TelegramClient, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, errors.New("TELEGRAM_BOT_TOKEN is not set")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramClient{
		bot:        bot,
		downloader: restclient.NewRestClient("", nil),
	}, nil
}

func (c *TelegramClient) Subscribe(rt *runtime.Runtime) {
	c.runtime = rt
	go c.poll()
	log.Println("🏮 Telegram client started. Listening for messages...")
}

func (c *TelegramClient) Close() error {
	c.bot.StopReceivingUpdates()
	return nil
}

func (c *TelegramClient) poll() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = telegramPollTimeout

	for update := range c.bot.GetUpdatesChan(u) {
		message := update.Message
		if message == nil {
			continue
		}
		switch {
		case message.IsCommand():
			c.handleCommand(message)
		case len(message.Photo) > 0:
			c.handlePhoto(message)
		default:
			c.send(message.Chat.ID, runtime.UsageMessage)
		}
	}
}

func (c *TelegramClient) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		c.send(message.Chat.ID, welcomeMessage)
	case "help":
		c.send(message.Chat.ID, runtime.UsageMessage)
	case "history":
		c.handleHistory(message)
	case "kua":
		c.handleKua(message)
	default:
		c.send(message.Chat.ID, "Unknown command. Use /start, /help, /history or /kua.")
	}
}

func (c *TelegramClient) handleHistory(message *tgbotapi.Message) {
	chatID := strconv.FormatInt(message.Chat.ID, 10)
	analyses, err := c.runtime.History(context.Background(), telegramPlatform, chatID, historyLength)
	if err != nil {
		log.Printf("⚠️ Error loading history for chat %s: %v", chatID, err)
		c.send(message.Chat.ID, runtime.FailureMessage)
		return
	}
	if len(analyses) == 0 {
		c.send(message.Chat.ID, "No analyses yet. Send a photo of a space to get started!")
		return
	}

	var b strings.Builder
	b.WriteString("📜 Your recent analyses:\n")
	for _, a := range analyses {
		b.WriteString("\n• ")
		b.WriteString(a.Element)
		if a.BirthYear > 0 {
			fmt.Fprintf(&b, " (born %d)", a.BirthYear)
		}
		b.WriteString(" — ")
		b.WriteString(a.CreatedAt.Format("Jan 2 2006"))
	}
	c.send(message.Chat.ID, b.String())
}

func (c *TelegramClient) handleKua(message *tgbotapi.Message) {
	args := strings.Fields(message.CommandArguments())
	usage := "Usage: /kua <birth year> <M/F>"
	if len(args) != 2 {
		c.send(message.Chat.ID, usage)
		return
	}
	year, err := strconv.Atoi(args[0])
	if err != nil || year < 1900 || year > time.Now().Year() {
		c.send(message.Chat.ID, "Please provide a valid birth year (e.g., 1990).")
		return
	}
	gender := fengshui.Gender(strings.ToUpper(args[1]))
	if gender != fengshui.Male && gender != fengshui.Female {
		c.send(message.Chat.ID, usage)
		return
	}

	kua := fengshui.KuaNumber(year, gender)
	lucky, challenging := fengshui.Directions(kua)
	c.send(message.Chat.ID, fmt.Sprintf(
		"🔢 Your Kua number is %d.\nElement: %s\nLucky directions: %s\nChallenging directions: %s",
		kua, fengshui.ResolveElement(year),
		strings.Join(lucky, ", "), strings.Join(challenging, ", "),
	))
}

func (c *TelegramClient) handlePhoto(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	processing, err := c.bot.Send(tgbotapi.NewMessage(chatID, "🔄 Receiving your image..."))
	if err != nil {
		log.Printf("⚠️ Error sending processing message: %v", err)
		return
	}

	// Telegram orders photo sizes ascending; take the largest.
	photo := message.Photo[len(message.Photo)-1]
	data, err := c.downloadPhoto(context.Background(), photo.FileID)
	if err != nil {
		log.Printf("❌ Error downloading photo %s: %v", photo.FileID, err)
		c.edit(chatID, processing.MessageID, runtime.FailureMessage, false)
		return
	}

	request := &runtime.Request{
		ID:       uuid.NewString(),
		Platform: telegramPlatform,
		ChatID:   strconv.FormatInt(chatID, 10),
		Caption:  message.Caption,
		Image:    data,
		Respond: func(text string) error {
			return c.edit(chatID, processing.MessageID, text, true)
		},
		Progress: func(text string) {
			c.edit(chatID, processing.MessageID, text, false)
		},
	}
	c.runtime.QueueEvent(runtime.Event{Request: request})
}

func (c *TelegramClient) downloadPhoto(ctx context.Context, fileID string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= downloadMaxAttempts; attempt++ {
		url, err := c.bot.GetFileDirectURL(fileID)
		if err == nil {
			var body []byte
			var status int
			body, status, err = c.downloader.Get(ctx, url, nil)
			if err == nil && status == 200 {
				return body, nil
			}
			if err == nil {
				err = fmt.Errorf("http status %d", status)
			}
		}
		lastErr = err
		if attempt < downloadMaxAttempts {
			log.Printf("⚠️ Download attempt %d failed: %v. Retrying...", attempt, err)
			time.Sleep(time.Duration(1<<attempt) * time.Second)
		}
	}
	return nil, lastErr
}

func (c *TelegramClient) send(chatID int64, text string) {
	if _, err := c.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("⚠️ Error sending message to chat %d: %v", chatID, err)
	}
}

// edit replaces the processing message in place. Markdown replies that
// Telegram rejects are resent as plain text.
func (c *TelegramClient) edit(chatID int64, messageID int, text string, markdown bool) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if markdown {
		edit.ParseMode = tgbotapi.ModeMarkdown
	}
	_, err := c.bot.Send(edit)
	if err != nil && markdown {
		edit.ParseMode = ""
		_, err = c.bot.Send(edit)
	}
	return err
}
