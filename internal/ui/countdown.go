// internal/ui/countdown.go
package ui

import (
	"fmt"
	"image/color"

	"go-arena-battler/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Countdown — индикатор оставшегося времени фазы. После порога
// «мало времени» цифры краснеют.
type Countdown struct {
	X, Y      float32
	Remaining float64
	LowTime   bool
	fontFace  font.Face
}

func NewCountdown(x, y float32, fontFace font.Face) *Countdown {
	return &Countdown{X: x, Y: y, fontFace: fontFace}
}

func (c *Countdown) Draw(screen *ebiten.Image) {
	label := fmt.Sprintf("%04.1f", c.Remaining)
	clr := config.TextLightColor
	if c.LowTime {
		clr = config.LowTimeColor
	}
	vector.DrawFilledCircle(screen, c.X, c.Y, 26, color.RGBA{35, 35, 50, 255}, true)
	bounds := text.BoundString(c.fontFace, label)
	text.Draw(screen, label, c.fontFace, int(c.X)-bounds.Dx()/2, int(c.Y)+4, clr)
}
