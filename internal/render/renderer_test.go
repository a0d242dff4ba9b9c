package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"riftboard/internal/rank"
)

// writeTestBackground writes a small PNG so the renderer has to scale it
// up to the canvas size.
func writeTestBackground(t *testing.T, dir string) string {
	t.Helper()
	dc := gg.NewContext(200, 100)
	dc.SetRGB(0.1, 0.1, 0.2)
	dc.Clear()
	path := filepath.Join(dir, "background.png")
	require.NoError(t, dc.SavePNG(path))
	return path
}

func writeTestIcon(t *testing.T, dir, tier string) {
	t.Helper()
	dc := gg.NewContext(120, 120)
	dc.SetRGB(0.8, 0.6, 0.1)
	dc.Clear()
	require.NoError(t, dc.SavePNG(filepath.Join(dir, tier+".png")))
}

func testRenderer(t *testing.T, iconDir string) *Renderer {
	t.Helper()
	r, err := NewRendererFromFont(goregular.TTF, iconDir)
	require.NoError(t, err)
	return r
}

func testEntries(t *testing.T, n int) []rank.Entry {
	t.Helper()
	tiers := [][2]string{{"CHALLENGER", ""}, {"DIAMOND", "I"}, {"GOLD", "II"}, {"SILVER", "IV"}}
	entries := make([]rank.Entry, 0, n)
	for i := 0; i < n; i++ {
		tier := tiers[i%len(tiers)]
		e, err := rank.NewEntry(
			string(rune('a'+i%26))+"player",
			tier[0], tier[1], i,
		)
		require.NoError(t, err)
		entries = append(entries, e)
	}
	return entries
}

func TestRenderLeaderboardProducesCanvasSizedPNG(t *testing.T) {
	dir := t.TempDir()
	bg := writeTestBackground(t, dir)
	writeTestIcon(t, dir, "CHALLENGER")
	writeTestIcon(t, dir, "GOLD")

	r := testRenderer(t, dir)
	buf, err := r.RenderLeaderboard(testEntries(t, 6), bg)
	require.NoError(t, err)

	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, CanvasWidth, img.Bounds().Dx())
	assert.Equal(t, CanvasHeight, img.Bounds().Dy())
}

func TestRenderLeaderboardMissingBackgroundFails(t *testing.T) {
	dir := t.TempDir()
	r := testRenderer(t, dir)

	_, err := r.RenderLeaderboard(testEntries(t, 3), filepath.Join(dir, "nope.png"))
	assert.Error(t, err)
}

func TestRenderLeaderboardToleratesMissingIcons(t *testing.T) {
	dir := t.TempDir()
	bg := writeTestBackground(t, dir)
	r := testRenderer(t, dir)

	// No icons on disk at all; the board still renders.
	buf, err := r.RenderLeaderboard(testEntries(t, 4), bg)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestRenderLeaderboardOverflowingRosterTruncates(t *testing.T) {
	dir := t.TempDir()
	bg := writeTestBackground(t, dir)
	r := testRenderer(t, dir)

	buf, err := r.RenderLeaderboard(testEntries(t, MaxSlots+10), bg)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestRenderLeaderboardEmptySnapshot(t *testing.T) {
	dir := t.TempDir()
	bg := writeTestBackground(t, dir)
	r := testRenderer(t, dir)

	buf, err := r.RenderLeaderboard(nil, bg)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestNewRendererMissingFontFails(t *testing.T) {
	_, err := NewRenderer(filepath.Join(t.TempDir(), "missing.ttf"), t.TempDir())
	assert.Error(t, err)
}

func TestNewRendererGarbageFontFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o644))

	_, err := NewRenderer(path, dir)
	assert.Error(t, err)
}
