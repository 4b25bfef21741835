//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the Start/Stop control, the key-binding banner and the status line.
type HUD struct {
	src     StatusSource
	screenW int
	screenH int
}

// NewHUD constructs a HUD for the provided source and screen size.
func NewHUD(src StatusSource, screenW, screenH int) *HUD {
	return &HUD{src: src, screenW: screenW, screenH: screenH}
}

// Draw paints the HUD on top of the grid.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.src == nil {
		return
	}
	btn := h.src.Button()
	if !btn.Empty() {
		h.drawButton(screen, btn, ButtonLabel(h.src.Paused()))
		h.drawBanner(screen, HelpText, btn.Y-bannerGap)
	}
	h.drawStatus(screen, StatusLine(h.src))
}

func (h *HUD) drawButton(screen *ebiten.Image, rect core.Rect, label string) {
	fill(screen, rect, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.X + (rect.W-bounds.Dx())/2
	y := rect.Y + (rect.H-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, color.Black)
}

func (h *HUD) drawBanner(screen *ebiten.Image, msg string, bottom int) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	rect := core.Rect{
		W: bounds.Dx() + 2*panelPadding,
		H: bounds.Dy() + panelPadding,
	}
	rect.X = (h.screenW - rect.W) / 2
	rect.Y = bottom - rect.H
	fill(screen, rect, color.RGBA{R: 0, G: 102, B: 255, A: 255})
	text.Draw(screen, msg, face, rect.X+panelPadding, rect.Y+panelPadding/2+bounds.Dy(), color.White)
}

func (h *HUD) drawStatus(screen *ebiten.Image, msg string) {
	if msg == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	rect := core.Rect{X: 0, Y: 0, W: bounds.Dx() + 2*panelPadding, H: bounds.Dy() + panelPadding}
	fill(screen, rect, color.RGBA{R: 16, G: 16, B: 20, A: 200})
	text.Draw(screen, msg, face, panelPadding, panelPadding/2+bounds.Dy(), color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

func fill(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

const (
	panelPadding = 10
	bannerGap    = 10
)
