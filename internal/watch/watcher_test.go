package watch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/discli/internal/core/discord"
)

// fakeFetcher returns one queued batch per call, then empty batches.
type fakeFetcher struct {
	mu      sync.Mutex
	batches [][]discord.Message
	err     error
	calls   int
	last    time.Time
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string, _ int) ([]discord.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.last = time.Now()
	if f.err != nil && f.calls > 1 {
		return nil, f.err
	}
	if len(f.batches) == 0 {
		return nil, nil
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch, nil
}

func msg(id, content string) discord.Message {
	return discord.Message{ID: id, Content: content, Author: discord.Author{ID: "u1", Username: "alice"}}
}

func collect(ids *[]string) Handler {
	return func(_ context.Context, m discord.Message) error {
		*ids = append(*ids, m.ID)
		return nil
	}
}

func TestWatcher_SkipsFirstPollWithoutBackfill(t *testing.T) {
	fetcher := &fakeFetcher{batches: [][]discord.Message{
		{msg("1", "old")},
		{msg("2", "new"), msg("3", "newer")},
	}}

	var ids []string
	w := New(fetcher, zerolog.Nop())
	err := w.Run(context.Background(), Options{
		ChannelID: "100",
		Interval:  5 * time.Millisecond,
		Timeout:   40 * time.Millisecond,
	}, collect(&ids))

	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, ids)
	assert.GreaterOrEqual(t, fetcher.calls, 2)
}

func TestWatcher_Backfill(t *testing.T) {
	fetcher := &fakeFetcher{batches: [][]discord.Message{
		{msg("1", "old")},
		{msg("2", "new")},
	}}

	var ids []string
	w := New(fetcher, zerolog.Nop())
	err := w.Run(context.Background(), Options{
		ChannelID: "100",
		Interval:  5 * time.Millisecond,
		Timeout:   40 * time.Millisecond,
		Backfill:  true,
	}, collect(&ids))

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids)
}

func (f *fakeFetcher) snapshot() (int, time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, f.last
}

func TestWatcher_TimeoutEndsWithoutError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fetcher := &fakeFetcher{}
	timeout := 30 * time.Millisecond

	w := New(fetcher, zerolog.Nop())
	start := time.Now()
	err := w.Run(ctx, Options{
		ChannelID: "100",
		Interval:  5 * time.Millisecond,
		Timeout:   timeout,
	}, func(context.Context, discord.Message) error { return nil })
	returned := time.Now()

	require.NoError(t, err)
	require.NoError(t, ctx.Err(), "deadline should end the run before the context")
	assert.GreaterOrEqual(t, returned.Sub(start), timeout)

	calls, last := fetcher.snapshot()
	assert.GreaterOrEqual(t, calls, 2)
	assert.False(t, last.After(returned), "fetch after Run returned")

	time.Sleep(20 * time.Millisecond)
	after, _ := fetcher.snapshot()
	assert.Equal(t, calls, after, "no fetch once the deadline has passed")
}

func TestWatcher_FetchErrorStops(t *testing.T) {
	boom := errors.New("boom")
	fetcher := &fakeFetcher{err: boom}

	w := New(fetcher, zerolog.Nop())
	err := w.Run(context.Background(), Options{
		ChannelID: "100",
		Interval:  5 * time.Millisecond,
	}, func(context.Context, discord.Message) error { return nil })

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, fetcher.calls)
}

func TestWatcher_HandlerErrorStops(t *testing.T) {
	boom := errors.New("write failed")
	fetcher := &fakeFetcher{batches: [][]discord.Message{
		{msg("1", "a"), msg("2", "b")},
	}}

	calls := 0
	w := New(fetcher, zerolog.Nop())
	err := w.Run(context.Background(), Options{
		ChannelID: "100",
		Interval:  5 * time.Millisecond,
		Backfill:  true,
	}, func(context.Context, discord.Message) error {
		calls++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestWatcher_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	w := New(&fakeFetcher{}, zerolog.Nop())
	err := w.Run(ctx, Options{ChannelID: "100", Interval: 5 * time.Millisecond}, func(context.Context, discord.Message) error {
		return nil
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWatcher_RejectsZeroInterval(t *testing.T) {
	fetcher := &fakeFetcher{}
	w := New(fetcher, zerolog.Nop())

	err := w.Run(context.Background(), Options{ChannelID: "100"}, nil)
	require.Error(t, err)
	assert.Zero(t, fetcher.calls)
}
