// pkg/render/raster/ebiten.go
package raster

import (
	"balloon-popper/pkg/render"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const ellipseSegments = 32

// Renderer растеризует render.Frame на изображение ebiten.
type Renderer struct {
	whiteImg *ebiten.Image
	face     *text.GoXFace
	vs       []ebiten.Vertex
	is       []uint16
}

func NewRenderer() *Renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Renderer{
		// Внутренний пиксель, чтобы при фильтрации не цеплять края.
		whiteImg: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		face:     text.NewGoXFace(basicfont.Face7x13),
		vs:       make([]ebiten.Vertex, 0, 64),
		is:       make([]uint16, 0, 96),
	}
}

// Draw рисует все примитивы кадра по порядку.
func (r *Renderer) Draw(screen *ebiten.Image, frame *render.Frame) {
	screen.Fill(frame.Background)
	for _, p := range frame.Items {
		switch p.Kind {
		case render.KindCircle:
			if p.Filled {
				vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.RX), p.Color, true)
			} else {
				vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(p.RX), float32(p.StrokeWidth), p.Color, true)
			}
		case render.KindEllipse:
			r.fillPolygon(screen, render.EllipsePoints(p, ellipseSegments), p.Color)
		case render.KindTriangle:
			r.fillPolygon(screen, p.Points[:], p.Color)
		case render.KindRect:
			corners := render.RectCorners(p)
			if p.Filled {
				r.fillPolygon(screen, corners[:], p.Color)
			} else {
				r.strokePolygon(screen, corners[:], p.StrokeWidth, p.Color)
			}
		case render.KindLine:
			vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(p.X2), float32(p.Y2), float32(p.StrokeWidth), p.Color, true)
		case render.KindText:
			r.drawText(screen, p)
		}
	}
}

func polygonPath(pts []render.Point) *vector.Path {
	path := &vector.Path{}
	for i, pt := range pts {
		if i == 0 {
			path.MoveTo(float32(pt.X), float32(pt.Y))
		} else {
			path.LineTo(float32(pt.X), float32(pt.Y))
		}
	}
	path.Close()
	return path
}

func (r *Renderer) fillPolygon(target *ebiten.Image, pts []render.Point, clr color.RGBA) {
	if len(pts) < 3 || clr.A == 0 {
		return
	}
	r.vs, r.is = polygonPath(pts).AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	r.drawTriangles(target, clr)
}

func (r *Renderer) strokePolygon(target *ebiten.Image, pts []render.Point, width float64, clr color.RGBA) {
	if len(pts) < 2 || clr.A == 0 {
		return
	}
	r.vs, r.is = polygonPath(pts).AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinMiter,
	})
	r.drawTriangles(target, clr)
}

// drawTriangles красит вершины цветом clr. Цвета в кадре premultiplied.
func (r *Renderer) drawTriangles(target *ebiten.Image, clr color.RGBA) {
	for i := range r.vs {
		r.vs[i].SrcX, r.vs[i].SrcY = 1, 1
		r.vs[i].ColorR = float32(clr.R) / 255
		r.vs[i].ColorG = float32(clr.G) / 255
		r.vs[i].ColorB = float32(clr.B) / 255
		r.vs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(r.vs, r.is, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

func (r *Renderer) drawText(target *ebiten.Image, p render.Primitive) {
	op := &text.DrawOptions{}
	// Y примитива задаёт базовую линию, а text/v2 ставит строку верхним краем.
	op.GeoM.Translate(p.X, p.Y-r.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(p.Color)
	switch p.Align {
	case render.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case render.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(target, p.Text, r.face, op)
}
