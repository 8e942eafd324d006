// internal/utils/math.go
package utils

import "math"

// Vec2 — точка или вектор в координатах вьюпорта (пиксели, ось Y вниз).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len возвращает длину вектора.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевого вектора возвращает (0, 0) и false: делить на ноль нельзя.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Perp возвращает вектор, повёрнутый на 90° по часовой стрелке (в экранных координатах).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// FromAngle строит вектор заданной длины по углу в радианах.
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Angle возвращает угол направления from -> to.
func Angle(from, to Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Distance возвращает евклидово расстояние между точками.
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// DistancePointToSegment возвращает расстояние от p до отрезка ab (не до бесконечной прямой).
func DistancePointToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 == 0 {
		return Distance(p, a)
	}
	t := p.Sub(a).Dot(ab) / abLen2
	t = math.Max(0, math.Min(1, t))
	return Distance(p, a.Add(ab.Scale(t)))
}

// CirclesOverlap: строгий тест пересечения окружностей: dist < r1 + r2.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return Distance(a, b) < ra+rb
}

// FanAngles раскладывает count углов симметрично вокруг center с шагом spread.
func FanAngles(center, spread float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	start := center - spread*float64(count-1)/2
	angles := make([]float64, count)
	for i := range angles {
		angles[i] = start + float64(i)*spread
	}
	return angles
}
