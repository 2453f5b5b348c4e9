package activity

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/events"
	"github.com/surpluslink/surpluslink/internal/pubsub"
)

func TestRecorder_RingOrder(t *testing.T) {
	r := NewRecorder(3)
	assert.Empty(t, r.Recent())

	for i := 0; i < 5; i++ {
		r.Add(Entry{Kind: "k", Summary: strconv.Itoa(i)})
	}

	recent := r.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "4", recent[0].Summary)
	assert.Equal(t, "3", recent[1].Summary)
	assert.Equal(t, "2", recent[2].Summary)
	assert.False(t, recent[0].At.IsZero())
}

func TestRecorder_DefaultCapacity(t *testing.T) {
	r := NewRecorder(0)
	for i := 0; i < DefaultCapacity+5; i++ {
		r.Add(Entry{Summary: strconv.Itoa(i)})
	}
	assert.Len(t, r.Recent(), DefaultCapacity)
}

func TestRecorder_ConsumesEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	r := NewRecorder(10)
	require.NoError(t, r.Start(ctx, bus))

	require.NoError(t, pubsub.Publish(ctx, bus, events.Login, "ngo-1", events.SessionChanged{
		UserID: "ngo-1", Name: "City Food Bank", Role: domain.RoleNGO, At: time.Now().UTC(),
	}))
	require.Eventually(t, func() bool { return len(r.Recent()) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, pubsub.Publish(ctx, bus, events.ThemeToggled, "", events.ThemeChanged{
		Theme: domain.ThemeDark, Source: "reload", At: time.Now().UTC(),
	}))
	require.Eventually(t, func() bool { return len(r.Recent()) == 2 }, 2*time.Second, 10*time.Millisecond)

	kinds := map[string]string{}
	for _, e := range r.Recent() {
		kinds[e.Kind] = e.Summary
	}
	assert.Equal(t, "City Food Bank signed in as ngo", kinds["login"])
	assert.Equal(t, "Theme switched to dark (from stored preference)", kinds["theme"])
}
