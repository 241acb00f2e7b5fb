package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/discli/internal/core/discord"
)

type fakeService struct {
	fetched []discord.Message
	sends   []string
	sendErr error
	resets  int
}

func (f *fakeService) Fetch(context.Context, string, int) ([]discord.Message, error) {
	return f.fetched, nil
}

func (f *fakeService) Send(_ context.Context, _ string, opts discord.SendOptions) (*discord.SentMessage, error) {
	f.sends = append(f.sends, opts.Content)
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &discord.SentMessage{ID: "99", Content: opts.Content}, nil
}

func (f *fakeService) Reset() { f.resets++ }

func newTestModel(svc *fakeService) Model {
	m := New(svc, Options{ChannelID: "100", Limit: 10, Interval: time.Second}, zerolog.Nop())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModel_LoadedMessagesAreShown(t *testing.T) {
	m := newTestModel(&fakeService{})
	require.True(t, m.busy)

	m, _ = update(t, m, messagesLoadedMsg{messages: []discord.Message{
		{ID: "1", Content: "hello there", Author: discord.Author{Username: "alice"}},
	}})

	assert.False(t, m.busy)
	require.Len(t, m.messages, 1)
	assert.Contains(t, m.View(), "alice")
}

func TestModel_SendQueuesWhileBusy(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(svc)

	m.input.SetValue("first")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"first"}, m.outbox)
	assert.Empty(t, m.input.Value())

	m, _ = update(t, m, messagesLoadedMsg{})
	assert.True(t, m.busy)
	assert.Empty(t, m.outbox)
	assert.Equal(t, "sending...", m.status)
}

func TestModel_SendRunsWhenIdle(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(svc)
	m, _ = update(t, m, messagesLoadedMsg{})

	m.input.SetValue("  hi  ")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	result := cmd()
	sent, ok := result.(messageSentMsg)
	require.True(t, ok)
	require.NoError(t, sent.err)
	assert.Equal(t, []string{"hi"}, svc.sends)

	m, _ = update(t, m, sent)
	assert.False(t, m.busy)
	assert.Equal(t, "sent", m.status)
}

func TestModel_SendErrorIsShown(t *testing.T) {
	svc := &fakeService{sendErr: errors.New("missing access")}
	m := newTestModel(svc)
	m, _ = update(t, m, messagesLoadedMsg{})

	m.input.SetValue("hi")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "missing access")
}

func TestModel_EmptyInputIsIgnored(t *testing.T) {
	m := newTestModel(&fakeService{})
	m, _ = update(t, m, messagesLoadedMsg{})

	m.input.SetValue("   ")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, m.outbox)
	assert.False(t, m.busy)
}

func TestModel_ResetWaitsForIdle(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(svc)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Zero(t, svc.resets)
	assert.True(t, m.pendingReset)

	m, _ = update(t, m, messagesLoadedMsg{messages: []discord.Message{{ID: "5", Author: discord.Author{Username: "a"}}}})
	assert.Equal(t, 1, svc.resets)
	assert.False(t, m.pendingReset)
	assert.Empty(t, m.messages)
}

func TestModel_PollTickSkipsWhileBusy(t *testing.T) {
	m := newTestModel(&fakeService{})

	m, cmd := update(t, m, pollTickMsg{})
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	m, _ = update(t, m, messagesLoadedMsg{})
	m, cmd = update(t, m, pollTickMsg{})
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	_, ok := cmd().(messagesLoadedMsg)
	assert.True(t, ok)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(&fakeService{})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
