// internal/ui/option_button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// OptionButton — кликабельная карточка варианта драфта.
type OptionButton struct {
	X, Y, W, H float32
	Label      string
	Sub        string // вторая строка: стихия и количество
	Accent     color.RGBA
	Selected   bool
	fontFace   font.Face
}

func NewOptionButton(x, y, w, h float32, fontFace font.Face) *OptionButton {
	return &OptionButton{X: x, Y: y, W: w, H: h, fontFace: fontFace}
}

// Contains проверяет попадание точки в кнопку.
func (b *OptionButton) Contains(mx, my int) bool {
	fx, fy := float32(mx), float32(my)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

// Draw отрисовывает кнопку.
func (b *OptionButton) Draw(screen *ebiten.Image) {
	bg := color.RGBA{40, 40, 55, 255}
	if b.Selected {
		bg = color.RGBA{60, 90, 70, 255}
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, b.Accent, false)

	bounds := text.BoundString(b.fontFace, b.Label)
	tx := int(b.X) + (int(b.W)-bounds.Dx())/2
	text.Draw(screen, b.Label, b.fontFace, tx, int(b.Y)+24, color.White)

	if b.Sub != "" {
		sub := text.BoundString(b.fontFace, b.Sub)
		sx := int(b.X) + (int(b.W)-sub.Dx())/2
		text.Draw(screen, b.Sub, b.fontFace, sx, int(b.Y)+44, color.RGBA{180, 180, 190, 255})
	}
}
