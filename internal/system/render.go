// internal/system/render.go
package system

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/entity"
	"balloon-popper/pkg/render"
	"math"
	"strconv"
)

// RenderSystem рисует мир в кадр. Только читает состояние.
type RenderSystem struct {
	world *entity.World
	lib   *defs.Library
}

func NewRenderSystem(world *entity.World, lib *defs.Library) *RenderSystem {
	return &RenderSystem{world: world, lib: lib}
}

func (s *RenderSystem) Draw(frame *render.Frame) {
	bg := config.BackgroundColor
	if s.world.Session.State != component.SessionNotStarted {
		bg = s.lib.Difficulty(s.world.Session.Difficulty).Background
	}
	frame.Reset(s.world.Width, s.world.Height, bg)

	s.drawGrid(frame)
	s.drawTurret(frame)
	for _, p := range s.world.Projectiles {
		drawProjectile(frame, p)
	}
	for _, t := range s.world.Targets {
		drawTarget(frame, t)
	}
	for _, b := range s.world.Beams {
		alpha := float64(b.Life) / float64(max(b.MaxLife, 1))
		frame.Line(b.From.X, b.From.Y, b.To.X, b.To.Y, 6*alpha+1, render.WithAlpha(b.Color, alpha))
		frame.Line(b.From.X, b.From.Y, b.To.X, b.To.Y, 2, render.WithAlpha(config.HitParticleColor, alpha))
	}
	for _, p := range s.world.Particles {
		frame.Circle(p.Pos.X, p.Pos.Y, config.ParticleRadius, render.WithAlpha(p.Color, p.Alpha))
	}
}

func (s *RenderSystem) drawGrid(frame *render.Frame) {
	for x := 0.0; x < s.world.Width; x += config.GridSize {
		frame.Line(x, 0, x, s.world.Height, 2, config.GridColor)
	}
	for y := 0.0; y < s.world.Height; y += config.GridSize {
		frame.Line(0, y, s.world.Width, y, 2, config.GridColor)
	}
}

func (s *RenderSystem) drawTurret(frame *render.Frame) {
	t := s.world.Turret
	pos := t.Position()

	frame.Circle(pos.X, pos.Y, config.TurretBodyRadius+1.5, config.TurretStroke)
	frame.Circle(pos.X, pos.Y, config.TurretBodyRadius, config.TurretColor)

	// Ствол
	half := config.BarrelWidth / 2
	frame.Rect(pos.X, pos.Y, 0, -half, config.BarrelLength, config.BarrelWidth, t.Angle, config.BarrelColor)
	frame.RectOutline(pos.X, pos.Y, 0, -half, config.BarrelLength, config.BarrelWidth, t.Angle, 1, config.BarrelStroke)

	// Вспышка держится несколько кадров после выстрела
	if t.FireInterval > 0 && t.FireTimer > t.FireInterval-config.MuzzleFlashFrames {
		sin, cos := math.Sincos(t.Angle)
		d := config.BarrelLength + 5
		frame.Circle(pos.X+cos*d, pos.Y+sin*d, 8, config.MuzzleFlashColor)
	}
}

func drawProjectile(frame *render.Frame, p *component.Projectile) {
	sin, cos := math.Sincos(p.Angle)
	at := func(lx, ly float64) render.Point {
		return render.Point{X: p.Pos.X + lx*cos - ly*sin, Y: p.Pos.Y + lx*sin + ly*cos}
	}
	// Дротик: треугольник остриём по направлению полёта
	frame.Triangle(at(2*p.Radius, 0), at(-p.Radius, p.Radius), at(-p.Radius, -p.Radius), p.Color)
}

func drawTarget(frame *render.Frame, t *component.Target) {
	r := t.Radius
	x, y := t.Pos.X, t.Pos.Y

	// Нитка: ломаная, приближающая квадратичную кривую
	prevX, prevY := x, y+r*1.1
	for i := 1; i <= 4; i++ {
		k := float64(i) / 4
		// B(k) = (1-k)^2*P0 + 2k(1-k)*P1 + k^2*P2, P1 = (5, 2r)
		bx := x + 2*k*(1-k)*5
		by := y + (1-k)*(1-k)*r*1.1 + 2*k*(1-k)*r*2 + k*k*r*3
		frame.Line(prevX, prevY, bx, by, 1, config.StringColor)
		prevX, prevY = bx, by
	}

	switch t.Kind {
	case defs.TargetSeeker:
		// Искатель рисуется ромбом с обводкой
		top := render.Point{X: x, Y: y - r*1.2}
		bottom := render.Point{X: x, Y: y + r*1.2}
		left := render.Point{X: x - r, Y: y}
		right := render.Point{X: x + r, Y: y}
		frame.Triangle(top, right, bottom, t.Color)
		frame.Triangle(top, bottom, left, t.Color)
		frame.CircleOutline(x, y, r*0.5, 2, config.HitParticleColor)
	default:
		frame.Ellipse(x, y-5, r, r*1.2, 0, t.Color)
		frame.Ellipse(x-r*0.3, y-r*0.5, r*0.2, r*0.4, -0.2, config.ShineColor)
	}

	if t.HP > 1 {
		frame.Text(x, y+5, strconv.Itoa(t.HP), render.AlignCenter, config.HitParticleColor)
	}
}
