//go:build linux

package desktop

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/wallpick/internal/domain"
)

type fakeCommands struct {
	calls   []string
	outputs map[string]string
	fail    map[string]error
}

func (f *fakeCommands) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, line)
	for prefix, err := range f.fail {
		if strings.HasPrefix(line, prefix) {
			return nil, err
		}
	}
	return []byte(f.outputs[line]), nil
}

func stubCommands(t *testing.T, f *fakeCommands) {
	t.Helper()
	prev := runCommand
	runCommand = f.run
	t.Cleanup(func() { runCommand = prev })
}

func TestDesktop_StyleConfig(t *testing.T) {
	f := &fakeCommands{outputs: map[string]string{
		"gsettings get org.gnome.desktop.background picture-options": "'spanned'\n",
	}}
	stubCommands(t, f)

	cfg, err := NewDesktop().StyleConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StyleSpan.Config(), cfg)
}

func TestDesktop_SetStyleConfig(t *testing.T) {
	f := &fakeCommands{}
	stubCommands(t, f)

	require.NoError(t, NewDesktop().SetStyleConfig(context.Background(), domain.StyleTile.Config()))
	assert.Equal(t, []string{"gsettings set org.gnome.desktop.background picture-options wallpaper"}, f.calls)
}

func TestDesktop_SetWallpaper(t *testing.T) {
	f := &fakeCommands{fail: map[string]error{
		"gsettings set org.gnome.desktop.background picture-uri-dark": &exec.ExitError{
			Stderr: []byte("No such key “picture-uri-dark”\n"),
		},
	}}
	stubCommands(t, f)

	require.NoError(t, NewDesktop().SetWallpaper(context.Background(), "/walls/wallpaper_16_9.png"))
	assert.Equal(t, []string{
		"gsettings set org.gnome.desktop.background picture-uri file:///walls/wallpaper_16_9.png",
		"gsettings set org.gnome.desktop.background picture-uri-dark file:///walls/wallpaper_16_9.png",
	}, f.calls)
}

func TestDesktop_SetWallpaperDarkURIFailure(t *testing.T) {
	f := &fakeCommands{fail: map[string]error{
		"gsettings set org.gnome.desktop.background picture-uri-dark": errors.New("dconf: permission denied"),
	}}
	stubCommands(t, f)

	err := NewDesktop().SetWallpaper(context.Background(), "/walls/wallpaper_16_9.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "picture-uri-dark")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestDesktop_SetWallpaperFailure(t *testing.T) {
	f := &fakeCommands{fail: map[string]error{
		"gsettings set org.gnome.desktop.background picture-uri ": errors.New("exit status 1"),
	}}
	stubCommands(t, f)

	err := NewDesktop().SetWallpaper(context.Background(), "/walls/a.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "picture-uri")
}
