// Package tui implements the interactive channel view.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/hay-kot/discli/internal/core/discord"
	"github.com/hay-kot/discli/internal/core/validate"
)

// maxMessages bounds the scrollback kept in memory.
const maxMessages = 500

// Service is what the chat view needs from the discli service.
type Service interface {
	Fetch(ctx context.Context, channelID string, limit int) ([]discord.Message, error)
	Send(ctx context.Context, channelID string, opts discord.SendOptions) (*discord.SentMessage, error)
	Reset()
}

// Options configures the chat view.
type Options struct {
	ChannelID string
	Limit     int
	Interval  time.Duration
}

// Model is the chat view. Only one request runs at a time since the
// underlying client is not safe for concurrent use; sends typed while a
// request is running are queued.
type Model struct {
	svc  Service
	opts Options
	log  zerolog.Logger
	keys keyMap

	viewport viewport.Model
	input    textinput.Model
	renderer *glamour.TermRenderer

	messages     []discord.Message
	outbox       []string
	busy         bool
	pendingReset bool
	status       string
	err          error

	width  int
	height int
	ready  bool
}

// New creates the chat model. The first fetch starts from Init.
func New(svc Service, opts Options, log zerolog.Logger) Model {
	input := textinput.New()
	input.Placeholder = "Message"
	input.CharLimit = validate.MaxContentLength
	input.Prompt = "› "
	input.Focus()

	return Model{
		svc:    svc,
		opts:   opts,
		log:    log,
		keys:   defaultKeyMap(),
		input:  input,
		busy:   true,
		status: "loading messages...",
	}
}

// Init starts the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, fetchMessages(m.svc, m.opts.ChannelID, m.opts.Limit))
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case messagesLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			m.status = "fetch failed"
			m.log.Error().Err(msg.err).Msg("fetch failed")
		} else {
			m.err = nil
			m.status = ""
			m.appendMessages(msg.messages)
		}
		cmd := m.next()
		return m, tea.Batch(cmd, schedulePollTick(m.opts.Interval))

	case messageSentMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			m.status = "send failed"
			m.log.Error().Err(msg.err).Msg("send failed")
		} else {
			m.err = nil
			m.status = "sent"
		}
		cmd := m.next()
		return m, cmd

	case pollTickMsg:
		if m.busy {
			return m, schedulePollTick(m.opts.Interval)
		}
		m.busy = true
		return m, fetchMessages(m.svc, m.opts.ChannelID, m.opts.Limit)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		m.pendingReset = true
		m.status = "reloading..."
		cmd := m.next()
		return m, cmd

	case key.Matches(msg, m.keys.Send):
		content := strings.TrimSpace(m.input.Value())
		if content == "" {
			return m, nil
		}
		m.input.Reset()
		m.outbox = append(m.outbox, content)
		cmd := m.next()
		return m, cmd

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// next starts queued work when no request is running. A pending reset is
// applied first; the poll loop then fetches the recent messages.
func (m *Model) next() tea.Cmd {
	if m.busy {
		return nil
	}

	if m.pendingReset {
		m.pendingReset = false
		m.svc.Reset()
		m.messages = nil
		m.refresh()
	}

	if len(m.outbox) == 0 {
		return nil
	}

	content := m.outbox[0]
	m.outbox = m.outbox[1:]
	m.busy = true
	m.status = "sending..."
	return sendMessage(m.svc, m.opts.ChannelID, content)
}

func (m *Model) appendMessages(messages []discord.Message) {
	if len(messages) == 0 {
		return
	}

	m.messages = append(m.messages, messages...)
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}

	m.refresh()
	m.viewport.GotoBottom()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := max(height-chromeHeight, 1)
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.input.Width = max(width-inputChrome, 10)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("tokyo-night"),
		glamour.WithWordWrap(max(width-glamourGutter, 20)),
	)
	if err != nil {
		m.log.Warn().Err(err).Msg("markdown renderer unavailable, showing plain text")
	}
	m.renderer = renderer

	m.refresh()
	m.viewport.GotoBottom()
}
