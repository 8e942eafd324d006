// pkg/render/geometry.go
package render

import "math"

// RectCorners возвращает четыре вершины повёрнутого прямоугольника.
func RectCorners(p Primitive) [4]Point {
	local := [4]Point{
		{p.OX, p.OY},
		{p.OX + p.W, p.OY},
		{p.OX + p.W, p.OY + p.H},
		{p.OX, p.OY + p.H},
	}
	sin, cos := math.Sincos(p.Rotation)
	var out [4]Point
	for i, c := range local {
		out[i] = Point{
			X: p.X + c.X*cos - c.Y*sin,
			Y: p.Y + c.X*sin + c.Y*cos,
		}
	}
	return out
}

// EllipsePoints аппроксимирует эллипс многоугольником из segments вершин.
func EllipsePoints(p Primitive, segments int) []Point {
	if segments < 3 {
		segments = 3
	}
	sin, cos := math.Sincos(p.Rotation)
	pts := make([]Point, segments)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(segments)
		lx, ly := p.RX*math.Cos(t), p.RY*math.Sin(t)
		pts[i] = Point{
			X: p.X + lx*cos - ly*sin,
			Y: p.Y + lx*sin + ly*cos,
		}
	}
	return pts
}

// InPolygon — тест «точка внутри выпуклого или невыпуклого многоугольника» (чётность пересечений).
func InPolygon(x, y float64, poly []Point) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		pi, pj := poly[i], poly[j]
		if (pi.Y > y) != (pj.Y > y) {
			cross := (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if x < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
