package viewer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Elitism/Earth-Population-Map/scene"
)

const legendWidth = 256

// hud draws the status line and the low-to-high color legend.
type hud struct {
	face  *text.GoTextFace
	white *ebiten.Image
}

func newHUD() (*hud, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &hud{
		face:  &text.GoTextFace{Source: src, Size: 13},
		white: white,
	}, nil
}

func (h *hud) draw(screen *ebiten.Image, s *scene.Scene) {
	logState := "linear"
	if s.Config.Logarithmic {
		logState = "log"
	}
	status := fmt.Sprintf("%d points | %s (%s) | zoom %.1f", s.Len(), s.Config.Scheme, logState, s.Camera.Zoom)
	help := "drag: rotate points | arrows/Q/E: rotate globe | wheel: zoom | Tab: scheme | L: log | R: reset"

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 6)
	text.Draw(screen, status, h.face, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(8, float64(screen.Bounds().Dy())-20)
	op.ColorScale.ScaleAlpha(0.7)
	text.Draw(screen, help, h.face, op)

	h.drawLegend(screen, s)
}

// drawLegend paints a low-to-high gradient strip under the current scheme
// in the top-right corner.
func (h *hud) drawLegend(screen *ebiten.Image, s *scene.Scene) {
	x0 := float32(screen.Bounds().Dx() - legendWidth - 8)
	y0 := float32(8)
	const hgt = float32(10)

	verts := make([]ebiten.Vertex, 0, 4*legendWidth)
	indices := make([]uint16, 0, 6*legendWidth)
	for i := 0; i < legendWidth; i++ {
		c := s.Config.Scheme.At(float64(i) / float64(legendWidth-1))
		base := uint16(len(verts))
		for _, d := range [4][2]float32{{0, 0}, {1, 0}, {1, hgt}, {0, hgt}} {
			verts = append(verts, ebiten.Vertex{
				DstX: x0 + float32(i) + d[0], DstY: y0 + d[1],
				SrcX: 1, SrcY: 1,
				ColorR: c.R, ColorG: c.G, ColorB: c.B, ColorA: 1,
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	src := h.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	screen.DrawTriangles(verts, indices, src, &ebiten.DrawTrianglesOptions{})
}
