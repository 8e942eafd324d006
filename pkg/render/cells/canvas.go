// pkg/render/cells/canvas.go
package cells

import (
	"balloon-popper/pkg/render"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Размер одной клетки терминала в пикселях мира. Терминальные клетки
// примерно вдвое выше своей ширины.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Cell — одна клетка терминала.
type Cell struct {
	Rune rune
	Fg   color.RGBA
	Bg   color.RGBA
}

// Canvas — сетка клеток, в которую растеризуется render.Frame.
type Canvas struct {
	Cols, Rows int
	cells      []Cell
	sx, sy     float64
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

func (c *Canvas) Resize(cols, rows int) {
	c.Cols, c.Rows = max(cols, 1), max(rows, 1)
	c.cells = make([]Cell, c.Cols*c.Rows)
}

// At возвращает клетку, а вне сетки пустую.
func (c *Canvas) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return Cell{}
	}
	return c.cells[row*c.Cols+col]
}

// Rasterize переводит кадр в клетки. Заливки меняют фон клетки,
// мелкие фигуры и текст ставят символ.
func (c *Canvas) Rasterize(frame *render.Frame) {
	c.sx = frame.Width / float64(c.Cols)
	c.sy = frame.Height / float64(c.Rows)
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Fg: frame.Background, Bg: frame.Background}
	}
	for _, p := range frame.Items {
		switch p.Kind {
		case render.KindCircle:
			if p.Filled {
				c.fillCircle(p)
			} else {
				c.strokeCircle(p)
			}
		case render.KindEllipse:
			c.fillPolygon(render.EllipsePoints(p, 24), p.Color, 'o')
		case render.KindTriangle:
			c.fillPolygon(p.Points[:], p.Color, '^')
		case render.KindRect:
			corners := render.RectCorners(p)
			if p.Filled {
				c.fillPolygon(corners[:], p.Color, '#')
			} else {
				for i := range corners {
					a, b := corners[i], corners[(i+1)%4]
					c.line(a.X, a.Y, b.X, b.Y, p.Color)
				}
			}
		case render.KindLine:
			c.line(p.X, p.Y, p.X2, p.Y2, p.Color)
		case render.KindText:
			c.text(p)
		}
	}
}

// cellAt переводит координаты мира в клетку.
func (c *Canvas) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / c.sx)), int(math.Floor(y / c.sy))
}

func (c *Canvas) center(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * c.sx, (float64(row) + 0.5) * c.sy
}

func (c *Canvas) paint(col, row int, clr color.RGBA) {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return
	}
	cell := &c.cells[row*c.Cols+col]
	cell.Bg = render.Blend(cell.Bg, clr)
}

// glyph ставит символ в клетку, если фигура меньше клетки.
func (c *Canvas) glyph(x, y float64, r rune, clr color.RGBA) {
	col, row := c.cellAt(x, y)
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return
	}
	cell := &c.cells[row*c.Cols+col]
	cell.Rune = r
	cell.Fg = render.Blend(cell.Bg, clr)
}

func (c *Canvas) fillCircle(p render.Primitive) {
	c0, r0 := c.cellAt(p.X-p.RX, p.Y-p.RX)
	c1, r1 := c.cellAt(p.X+p.RX, p.Y+p.RX)
	covered := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := c.center(col, row)
			if math.Hypot(x-p.X, y-p.Y) <= p.RX {
				c.paint(col, row, p.Color)
				covered = true
			}
		}
	}
	if !covered {
		c.glyph(p.X, p.Y, '•', p.Color)
	}
}

func (c *Canvas) strokeCircle(p render.Primitive) {
	c0, r0 := c.cellAt(p.X-p.RX, p.Y-p.RX)
	c1, r1 := c.cellAt(p.X+p.RX, p.Y+p.RX)
	tol := math.Max(c.sx, c.sy) / 2
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := c.center(col, row)
			if math.Abs(math.Hypot(x-p.X, y-p.Y)-p.RX) <= tol {
				c.paint(col, row, p.Color)
			}
		}
	}
}

func (c *Canvas) fillPolygon(pts []render.Point, clr color.RGBA, small rune) {
	if len(pts) < 3 {
		return
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	var cx, cy float64
	for _, pt := range pts {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		cx += pt.X
		cy += pt.Y
	}
	c0, r0 := c.cellAt(minX, minY)
	c1, r1 := c.cellAt(maxX, maxY)
	covered := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := c.center(col, row)
			if render.InPolygon(x, y, pts) {
				c.paint(col, row, clr)
				covered = true
			}
		}
	}
	if !covered {
		n := float64(len(pts))
		c.glyph(cx/n, cy/n, small, clr)
	}
}

// line проходит отрезок с шагом в полклетки и красит фон.
func (c *Canvas) line(x1, y1, x2, y2 float64, clr color.RGBA) {
	step := math.Min(c.sx, c.sy) / 2
	n := int(math.Hypot(x2-x1, y2-y1)/step) + 1
	lastCol, lastRow := -1, -1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		col, row := c.cellAt(x1+(x2-x1)*t, y1+(y2-y1)*t)
		if col == lastCol && row == lastRow {
			continue
		}
		c.paint(col, row, clr)
		lastCol, lastRow = col, row
	}
}

func (c *Canvas) text(p render.Primitive) {
	runes := []rune(p.Text)
	col, _ := c.cellAt(p.X, p.Y)
	// Базовая линия ближе к низу строки: берём клетку над ней.
	_, row := c.cellAt(p.X, p.Y-c.sy/2)
	switch p.Align {
	case render.AlignCenter:
		col -= len(runes) / 2
	case render.AlignRight:
		col -= len(runes)
	}
	if row < 0 || row >= c.Rows {
		return
	}
	for i, r := range runes {
		x := col + i
		if x < 0 || x >= c.Cols {
			continue
		}
		cell := &c.cells[row*c.Cols+x]
		cell.Rune = r
		cell.Fg = render.Blend(cell.Bg, p.Color)
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Flush переносит клетки на экран tcell. Show вызывает хост.
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			cell := c.cells[row*c.Cols+col]
			style := tcell.StyleDefault.Background(tcellColor(cell.Bg)).Foreground(tcellColor(cell.Fg))
			screen.SetContent(col, row, cell.Rune, nil, style)
		}
	}
}
