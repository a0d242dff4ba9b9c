// Package render composes the leaderboard PNG: background art, one slot
// per player with name, tier icon and rank text. Stateless apart from
// the fonts parsed once at startup.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"riftboard/internal/rank"
)

// Renderer draws leaderboard images. Safe for concurrent use; all state
// is immutable after construction.
type Renderer struct {
	iconDir string

	fontNormal font.Face
	fontMedium font.Face
	fontSmall  font.Face
}

// NewRenderer loads the display font from disk. iconDir holds one
// TIER.png per tier (plus UNRANKED.png).
func NewRenderer(fontPath, iconDir string) (*Renderer, error) {
	ttf, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("render: load font %s: %w", fontPath, err)
	}
	return NewRendererFromFont(ttf, iconDir)
}

// NewRendererFromFont builds a renderer from raw TTF bytes.
func NewRendererFromFont(ttf []byte, iconDir string) (*Renderer, error) {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(parsed, &truetype.Options{Size: size})
	}
	return &Renderer{
		iconDir:    iconDir,
		fontNormal: face(FontSizeNormal),
		fontMedium: face(FontSizeMedium),
		fontSmall:  face(FontSizeSmall),
	}, nil
}

// RenderLeaderboard composes the board for an ordered snapshot onto the
// background asset and returns it PNG-encoded. Entries beyond the slot
// grid are silently dropped. A missing background is an error; a
// missing tier icon is tolerated and logged.
func (r *Renderer) RenderLeaderboard(entries []rank.Entry, backgroundPath string) (*bytes.Buffer, error) {
	background, err := gg.LoadImage(backgroundPath)
	if err != nil {
		return nil, fmt.Errorf("render: load background %s: %w", backgroundPath, err)
	}

	dc := gg.NewContext(CanvasWidth, CanvasHeight)
	dc.DrawImage(scaleTo(background, CanvasWidth, CanvasHeight), 0, 0)

	slot := 0
	for _, col := range columnXOffsets {
		for _, row := range rowYOffsets {
			if slot >= len(entries) {
				break
			}
			r.drawSlot(dc, entries[slot], col, row)
			slot++
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}
	return &buf, nil
}

func (r *Renderer) drawSlot(dc *gg.Context, e rank.Entry, baseX, baseY int) {
	dc.SetColor(color.White)

	// Player name, smaller face for long names.
	nameFace := r.fontNormal
	if len(e.PlayerID) > longNameThreshold {
		nameFace = r.fontSmall
	}
	dc.SetFontFace(nameFace)
	dc.DrawString(e.PlayerID, float64(baseX+nameOffsetX), float64(baseY+nameOffsetY))

	r.drawTierIcon(dc, e.Tier, baseX, baseY)

	// Rank text; the long apex tier names use the medium face.
	textFace := r.fontNormal
	switch strings.ToUpper(e.Tier) {
	case "GRANDMASTER", "CHALLENGER":
		textFace = r.fontMedium
	}
	dc.SetFontFace(textFace)
	dc.DrawString(e.DisplayText, float64(baseX+textOffsetX), float64(baseY+textOffsetY))
}

func (r *Renderer) drawTierIcon(dc *gg.Context, tier string, baseX, baseY int) {
	tier = strings.ToUpper(strings.TrimSpace(tier))
	iconPath := filepath.Join(r.iconDir, tier+".png")

	icon, err := gg.LoadImage(iconPath)
	if err != nil {
		log.Printf("⚠️ Tier icon missing: %s", iconPath)
		return
	}

	size := RankIconSize
	yNudge := -5
	if tier == rank.TierUnranked {
		size = UnrankedIconSize
		yNudge = 0
	}
	// The taller emblems already fill their box; don't lift them.
	switch tier {
	case "PLATINUM", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER":
		yNudge = 0
	}

	dc.DrawImage(thumbnail(icon, size), baseX+iconOffsetX, baseY+iconOffsetY+yNudge)
}

// scaleTo resizes img to exactly w x h.
func scaleTo(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// thumbnail scales img down to fit a max x max box, keeping aspect.
func thumbnail(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}
	scale := float64(max) / float64(w)
	if h > w {
		scale = float64(max) / float64(h)
	}
	dw, dh := int(float64(w)*scale), int(float64(h)*scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
