package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/discli/internal/core/discord"
)

const requestTimeout = 30 * time.Second

// messagesLoadedMsg carries the result of a fetch.
type messagesLoadedMsg struct {
	messages []discord.Message
	err      error
}

// messageSentMsg carries the result of a send.
type messageSentMsg struct {
	content string
	sent    *discord.SentMessage
	err     error
}

// pollTickMsg triggers the next fetch.
type pollTickMsg struct{}

func fetchMessages(svc Service, channelID string, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		messages, err := svc.Fetch(ctx, channelID, limit)
		return messagesLoadedMsg{messages: messages, err: err}
	}
}

func sendMessage(svc Service, channelID, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		sent, err := svc.Send(ctx, channelID, discord.SendOptions{Content: content})
		return messageSentMsg{content: content, sent: sent, err: err}
	}
}

func schedulePollTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}
