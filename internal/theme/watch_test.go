package theme

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surpluslink/surpluslink/internal/domain"
)

func TestWatch_ReloadsOnExternalWrite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping filesystem watcher test in short mode")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "theme.json")
	osFs := afero.NewOsFs()
	svc := NewService(ctx, NewFileStore(osFs, path), nil)
	require.Equal(t, domain.ThemeLight, svc.Current())

	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, svc) }()

	// Give the watcher a moment to register the directory.
	time.Sleep(100 * time.Millisecond)

	other := NewFileStore(osFs, path)
	require.NoError(t, other.Save(ctx, domain.ThemeDark))

	assert.Eventually(t, func() bool {
		return svc.Current() == domain.ThemeDark
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
