// internal/ui/score_panel.go
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

// ScorePanel — счёт матча и номер раунда в шапке экрана.
type ScorePanel struct {
	ScoreA, ScoreB int
	Round          int
	Phase          string
	fontFace       font.Face
}

func NewScorePanel(fontFace font.Face) *ScorePanel {
	return &ScorePanel{fontFace: fontFace}
}

func (p *ScorePanel) Draw(screen *ebiten.Image) {
	centerX := float32(config.ScreenWidth) / 2

	// Точки побед: слева сторона A, справа сторона B.
	for i := 0; i < config.RoundsToWin; i++ {
		fillA := color.RGBA{60, 60, 75, 255}
		if i < p.ScoreA {
			fillA = config.SideAColor
		}
		vector.DrawFilledCircle(screen, centerX-60-float32(i)*24, 30, 8, fillA, true)

		fillB := color.RGBA{60, 60, 75, 255}
		if i < p.ScoreB {
			fillB = config.SideBColor
		}
		vector.DrawFilledCircle(screen, centerX+60+float32(i)*24, 30, 8, fillB, true)
	}

	label := fmt.Sprintf("Round %d  %s", p.Round, p.Phase)
	bounds := text.BoundString(p.fontFace, label)
	text.Draw(screen, label, p.fontFace, int(centerX)-bounds.Dx()/2, 34, config.TextLightColor)
}
