package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// waitForReload consumes reloads until match accepts one. A single write can
// produce several events, so intermediate reloads are skipped.
func waitForReload(t *testing.T, w *Watcher, match func(Reload) bool) Reload {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case r, ok := <-w.Reloads():
			require.True(t, ok, "reload channel closed")
			if match(r) {
				return r
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
			return Reload{}
		}
	}
}

func TestWatcherDeliversReloads(t *testing.T) {
	path := writeTempConfig(t, mixerYAML)

	w, err := Watch(path, WatchOptions{Cooldown: time.Millisecond, Settle: 20 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	updated := `version: "1.0"
name: "Mixer v2"
sliders:
  - id: volume
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	r := waitForReload(t, w, func(r Reload) bool { return r.Config != nil && r.Config.Name == "Mixer v2" })
	require.NoError(t, r.Err)
	require.Len(t, r.Config.Sliders, 1)

	require.NoError(t, os.WriteFile(path, []byte("version: [broken"), 0o600))

	r = waitForReload(t, w, func(r Reload) bool { return r.Err != nil })
	require.Nil(t, r.Config)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	path := writeTempConfig(t, mixerYAML)

	w, err := Watch(path, WatchOptions{Cooldown: time.Millisecond, Settle: time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(path+".bak", []byte("noise"), 0o600))

	select {
	case r := <-w.Reloads():
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := writeTempConfig(t, mixerYAML)

	w, err := Watch(path, WatchOptions{})
	require.NoError(t, err)
	require.Equal(t, path, w.Path())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Reloads()
	require.False(t, ok)
}

func TestWatchMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := Watch("/nonexistent/slidekit/catalog.yaml", WatchOptions{})
	require.Error(t, err)
}
