package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/discli/internal/core/discord"
	"github.com/hay-kot/discli/internal/styles"
)

const (
	chromeHeight  = 6 // header, status line, bordered input, help
	inputChrome   = 6 // border and padding around the input
	glamourGutter = 4
)

// View renders the chat.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := styles.HeaderStyle.Render(fmt.Sprintf("#%s", m.opts.ChannelID))
	input := styles.InputBorderStyle.Width(max(m.width-2, 10)).Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.statusLine(),
		input,
		m.helpLine(),
	)
}

func (m Model) statusLine() string {
	if m.err != nil {
		return styles.ErrorStyle.Padding(0, 1).Render(fmt.Sprintf("%s: %v", m.status, m.err))
	}

	status := m.status
	if n := len(m.outbox); n > 0 {
		status = strings.TrimSpace(fmt.Sprintf("%s (%d queued)", status, n))
	}
	return styles.StatusStyle.Render(status)
}

func (m Model) helpLine() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	return styles.StatusStyle.Render(strings.Join(parts, " • "))
}

// refresh re-renders all messages into the viewport.
func (m *Model) refresh() {
	if !m.ready {
		return
	}

	if len(m.messages) == 0 {
		m.viewport.SetContent(styles.TimestampStyle.Render("No messages yet."))
		return
	}

	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderMessage(msg))
	}
	m.viewport.SetContent(b.String())
}

func (m *Model) renderMessage(msg discord.Message) string {
	header := styles.AuthorStyle.Render(msg.Author.DisplayName())
	if ts := formatTimestamp(msg.Timestamp); ts != "" {
		header += " " + styles.TimestampStyle.Render(ts)
	}

	body := msg.Content
	if m.renderer != nil && body != "" {
		if rendered, err := m.renderer.Render(body); err == nil {
			body = strings.Trim(rendered, "\n")
		}
	}

	return header + "\n" + body
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("Jan 2 15:04")
}
