// pkg/render/frame.go
package render

import "image/color"

// Kind — тип примитива отрисовки.
type Kind int

const (
	KindCircle Kind = iota
	KindEllipse
	KindTriangle
	KindRect
	KindLine
	KindText
)

// Align — горизонтальное выравнивание текста.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Point — вершина в координатах вьюпорта.
type Point struct {
	X, Y float64
}

// Primitive is one draw command. Which fields are meaningful depends on Kind:
//
//	Circle:   X, Y, RX (radius), Filled, StrokeWidth
//	Ellipse:  X, Y, RX, RY, Rotation
//	Triangle: Points
//	Rect:     X, Y (pivot), OX, OY (corner offset from pivot before rotation), W, H, Rotation, Filled
//	Line:     X, Y, X2, Y2, StrokeWidth
//	Text:     X, Y (baseline anchor), Text, Align
type Primitive struct {
	Kind        Kind
	X, Y        float64
	X2, Y2      float64
	OX, OY      float64
	RX, RY      float64
	W, H        float64
	Rotation    float64
	Points      [3]Point
	Filled      bool
	StrokeWidth float64
	Color       color.RGBA
	Text        string
	Align       Align
}

// Frame — список примитивов одного кадра. Ядро игры ничего не знает о том,
// как они растеризуются.
type Frame struct {
	Width, Height float64
	Background    color.RGBA
	Items         []Primitive
}

// NewFrame создаёт пустой кадр заданного размера.
func NewFrame(width, height float64, background color.RGBA) *Frame {
	return &Frame{Width: width, Height: height, Background: background}
}

// Reset очищает кадр, сохраняя выделенную память.
func (f *Frame) Reset(width, height float64, background color.RGBA) {
	f.Width, f.Height = width, height
	f.Background = background
	f.Items = f.Items[:0]
}

func (f *Frame) Circle(x, y, r float64, clr color.RGBA) {
	f.Items = append(f.Items, Primitive{Kind: KindCircle, X: x, Y: y, RX: r, Filled: true, Color: clr})
}

func (f *Frame) CircleOutline(x, y, r, width float64, clr color.RGBA) {
	f.Items = append(f.Items, Primitive{Kind: KindCircle, X: x, Y: y, RX: r, StrokeWidth: width, Color: clr})
}

func (f *Frame) Ellipse(x, y, rx, ry, rotation float64, clr color.RGBA) {
	f.Items = append(f.Items, Primitive{Kind: KindEllipse, X: x, Y: y, RX: rx, RY: ry, Rotation: rotation, Filled: true, Color: clr})
}

func (f *Frame) Triangle(a, b, c Point, clr color.RGBA) {
	f.Items = append(f.Items, Primitive{Kind: KindTriangle, Points: [3]Point{a, b, c}, Filled: true, Color: clr})
}

// Rect добавляет прямоугольник, повёрнутый на rotation вокруг (x, y).
// (ox, oy): смещение левого верхнего угла от точки поворота.
func (f *Frame) Rect(x, y, ox, oy, w, h, rotation float64, clr color.RGBA) {
	f.Items = append(f.Items, Primitive{Kind: KindRect, X: x, Y: y, OX: ox, OY: oy, W: w, H: h, Rotation: rotation, Filled: true, Color: clr})
}

func (f *Frame) RectOutline(x, y, ox, oy, w, h, rotation, width float64, clr color.RGBA) {
	f.Items = append(f.Items, Primitive{Kind: KindRect, X: x, Y: y, OX: ox, OY: oy, W: w, H: h, Rotation: rotation, StrokeWidth: width, Color: clr})
}

func (f *Frame) Line(x1, y1, x2, y2, width float64, clr color.RGBA) {
	f.Items = append(f.Items, Primitive{Kind: KindLine, X: x1, Y: y1, X2: x2, Y2: y2, StrokeWidth: width, Color: clr})
}

func (f *Frame) Text(x, y float64, s string, align Align, clr color.RGBA) {
	f.Items = append(f.Items, Primitive{Kind: KindText, X: x, Y: y, Text: s, Align: align, Color: clr})
}

// Count возвращает число примитивов данного типа. Удобно в тестах.
func (f *Frame) Count(kind Kind) int {
	n := 0
	for _, p := range f.Items {
		if p.Kind == kind {
			n++
		}
	}
	return n
}
