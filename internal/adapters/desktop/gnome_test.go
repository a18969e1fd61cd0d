package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/wallpick/internal/domain"
)

func TestPictureOptionRoundTrip(t *testing.T) {
	for _, style := range domain.Styles() {
		option, err := pictureOption(style.Config())
		require.NoError(t, err, style.String())

		cfg, err := styleConfigFromPictureOption("'" + option + "'\n")
		require.NoError(t, err, style.String())
		assert.Equal(t, style.Config(), cfg)
	}
}

func TestPictureOption_Unknown(t *testing.T) {
	_, err := pictureOption(domain.StyleConfig{Code: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidStyle)

	_, err = styleConfigFromPictureOption("'none'")
	assert.ErrorIs(t, err, domain.ErrInvalidStyle)
}

func TestColorSchemeMode(t *testing.T) {
	assert.Equal(t, domain.Dark, colorSchemeMode("'prefer-dark'\n"))
	assert.Equal(t, domain.Light, colorSchemeMode("'prefer-light'"))
	assert.Equal(t, domain.Light, colorSchemeMode("'default'"))
}

func TestPortalColorScheme(t *testing.T) {
	mode, ok := portalColorScheme(1)
	assert.True(t, ok)
	assert.Equal(t, domain.Dark, mode)

	mode, ok = portalColorScheme(2)
	assert.True(t, ok)
	assert.Equal(t, domain.Light, mode)

	_, ok = portalColorScheme(0)
	assert.False(t, ok)
}
