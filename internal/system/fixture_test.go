package system

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/entity"
	"balloon-popper/internal/event"
	"balloon-popper/internal/utils"
	"testing"
)

const (
	testWidth  = 800.0
	testHeight = 600.0
)

type stubContext struct {
	world *entity.World
}

func (c *stubContext) ClearTargets()     { c.world.Targets = nil }
func (c *stubContext) ClearProjectiles() { c.world.Projectiles = nil }
func (c *stubContext) Viewport() (float64, float64) {
	return c.world.Width, c.world.Height
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	world       *entity.World
	lib         *defs.Library
	dispatcher  *event.Dispatcher
	rec         *recorder
	effects     *VisualEffectSystem
	projectiles *ProjectileSystem
	collision   *CollisionSystem
	turret      *TurretSystem
	economy     *EconomySystem
	state       *StateSystem
	movement    *MovementSystem
	spawner     *SpawnSystem
	waves       *WaveSystem
}

func newFixture(t testing.TB, mode defs.Mode) *fixture {
	t.Helper()
	lib := defs.DefaultLibrary()
	world := entity.NewWorld(testWidth, testHeight)
	d := event.NewDispatcher()
	rng := utils.NewPRNGService(42)

	f := &fixture{world: world, lib: lib, dispatcher: d, rec: &recorder{}}
	f.effects = NewVisualEffectSystem(world, rng)
	f.projectiles = NewProjectileSystem(world)
	f.collision = NewCollisionSystem(world, d, f.effects)
	f.turret = NewTurretSystem(world, lib, d, f.projectiles, f.collision)
	f.economy = NewEconomySystem(world, lib, d)
	f.state = NewStateSystem(world, lib, &stubContext{world: world}, d, f.economy)
	f.movement = NewMovementSystem(world, f.state)
	f.spawner = NewSpawnSystem(world, lib, rng)
	f.waves = NewWaveSystem(world, lib, rng, f.spawner, d)

	d.Subscribe(f.rec,
		event.SessionStarted, event.ShotFired, event.TargetHit, event.TargetPopped,
		event.PurchaseSucceeded, event.PurchaseDenied, event.WeaponEquipped,
		event.WaveStarted, event.WaveCleared, event.GameOver,
	)
	f.state.Start(defs.DifficultyEasy, mode)
	return f
}

func (f *fixture) addTarget(x, y, r float64, hp int) *component.Target {
	t := &component.Target{
		ID:     f.world.NewEntity(),
		Pos:    utils.Vec2{X: x, Y: y},
		Radius: r,
		HP:     hp,
		MaxHP:  hp,
		Kind:   defs.TargetStandard,
		Reward: 10,
	}
	f.world.Targets = append(f.world.Targets, t)
	return t
}

func (f *fixture) addProjectile(x, y float64) *component.Projectile {
	def, _ := f.lib.Weapon(defs.WeaponStandard)
	p := f.projectiles.Spawn(utils.Vec2{X: x, Y: y}, 0, def)
	p.Velocity = utils.Vec2{}
	return p
}
