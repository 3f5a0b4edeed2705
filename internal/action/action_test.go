package action

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	assert.Equal(t, "search", Search.String())
	assert.Equal(t, "change_mode", ChangeMode.String())
	assert.Equal(t, "unknown", Kind(9).String())
	assert.Equal(t, []Kind{ChangeTheme, ChangeMode}, DefaultSet())
}

func TestPublishDropsOldest(t *testing.T) {
	c := NewChannel()
	sub := c.Subscribe()

	assert.False(t, c.Publish(Search))
	assert.True(t, c.Publish(ChangeTheme))
	assert.True(t, c.Publish(ChangeMode))

	k, ok := sub.TryNext()
	require.True(t, ok)
	assert.Equal(t, ChangeMode, k, "only the latest action survives")

	_, ok = sub.TryNext()
	assert.False(t, ok)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	c := NewChannel()
	assert.False(t, c.Publish(Search))

	sub := c.Subscribe()
	_, ok := sub.TryNext()
	assert.False(t, ok, "events published before subscribing are not replayed")
}

func TestBroadcast(t *testing.T) {
	c := NewChannel()
	a, b := c.Subscribe(), c.Subscribe()
	assert.Equal(t, 2, c.Subscribers())

	c.Publish(ChangeTheme)

	for _, sub := range []*Subscription{a, b} {
		k, ok := sub.TryNext()
		require.True(t, ok)
		assert.Equal(t, ChangeTheme, k)
	}

	a.Close()
	a.Close()
	assert.Equal(t, 1, c.Subscribers())
	c.Publish(Search)
	k, ok := b.TryNext()
	require.True(t, ok)
	assert.Equal(t, Search, k)
}

func TestPublishNeverBlocks(t *testing.T) {
	c := NewChannel()
	c.Subscribe()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Publish(Kind(j % 3))
			}
		}()
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publish blocked")
	}
}

func TestNext(t *testing.T) {
	c := NewChannel()
	sub := c.Subscribe()

	go c.Publish(ChangeMode)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	k, err := sub.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, ChangeMode, k)

	short, cancelShort := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancelShort()
	_, err = sub.Next(short)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	c.Close()
	_, err = sub.Next(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.False(t, c.Publish(Search))

	late := c.Subscribe()
	_, ok := <-late.C()
	assert.False(t, ok)
}

type fakeNav struct{ routes []string }

func (f *fakeNav) Navigate(route string) bool {
	f.routes = append(f.routes, route)
	return true
}

type fakeTheme struct{ dark bool }

func (f *fakeTheme) ToggleDarkMode() bool {
	f.dark = !f.dark
	return f.dark
}

func TestHandler(t *testing.T) {
	nav := &fakeNav{}
	theme := &fakeTheme{}
	dialogs := 0
	h := NewHandler(nav, theme, "search", WithThemeDialog(func() { dialogs++ }))

	t.Run("change mode toggles without navigating", func(t *testing.T) {
		assert.Equal(t, ModeToggled, h.Handle(ChangeMode))
		assert.True(t, theme.dark)
		assert.Empty(t, nav.routes)
	})

	t.Run("search navigates once", func(t *testing.T) {
		assert.Equal(t, Navigated, h.Handle(Search))
		assert.Equal(t, []string{"search"}, nav.routes)
	})

	t.Run("change theme opens the dialog", func(t *testing.T) {
		assert.Equal(t, ThemeDialogRequested, h.Handle(ChangeTheme))
		assert.Equal(t, 1, dialogs)
	})

	t.Run("unknown kind", func(t *testing.T) {
		assert.Equal(t, Ignored, h.Handle(Kind(42)))
	})
}

func TestHandlerRun(t *testing.T) {
	c := NewChannel()
	sub := c.Subscribe()
	nav := &fakeNav{}
	h := NewHandler(nav, &fakeTheme{}, "search")

	errc := make(chan error, 1)
	go func() { errc <- h.Run(context.Background(), sub) }()

	c.Publish(Search)
	require.Eventually(t, func() bool { return c.Subscribers() == 1 && len(sub.ch) == 0 }, time.Second, time.Millisecond)

	c.Close()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after close")
	}
	assert.Equal(t, []string{"search"}, nav.routes)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "navigated", Navigated.String())
	assert.Equal(t, "ignored", Outcome(99).String())
}
