// internal/app/game.go
package app

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/entity"
	"balloon-popper/internal/event"
	"balloon-popper/internal/interfaces"
	"balloon-popper/internal/system"
	"balloon-popper/internal/utils"
	"balloon-popper/pkg/render"
)

var (
	_ interfaces.GameContext = (*Game)(nil)
	_ interfaces.Shop        = (*Game)(nil)
)

// Options — параметры новой сессии, выбираемые в меню.
type Options struct {
	Difficulty defs.DifficultyID
	Mode       defs.Mode
}

// director — то, что решает, когда появляются новые цели.
type director interface {
	Update()
}

// Game holds the main game state and logic.
// Хост (окно ebiten или терминал) вызывает Step раз в тик и Draw для кадра.
type Game struct {
	World           *entity.World
	Library         *defs.Library
	EventDispatcher *event.Dispatcher

	TurretSystem       *system.TurretSystem
	ProjectileSystem   *system.ProjectileSystem
	CollisionSystem    *system.CollisionSystem
	MovementSystem     *system.MovementSystem
	VisualEffectSystem *system.VisualEffectSystem
	SpawnSystem        *system.SpawnSystem
	WaveSystem         *system.WaveSystem
	EconomySystem      *system.EconomySystem
	StateSystem        *system.StateSystem
	RenderSystem       *system.RenderSystem

	Rng             *utils.PRNGService
	upgradeMenuOpen bool
}

// NewGame initializes a new game instance. Сессия не начата до вызова Start.
func NewGame(lib *defs.Library, seed int64, width, height float64) *Game {
	if lib == nil {
		lib = defs.DefaultLibrary()
	}
	world := entity.NewWorld(width, height)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		World:           world,
		Library:         lib,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.VisualEffectSystem = system.NewVisualEffectSystem(world, rng)
	g.ProjectileSystem = system.NewProjectileSystem(world)
	g.CollisionSystem = system.NewCollisionSystem(world, eventDispatcher, g.VisualEffectSystem)
	g.TurretSystem = system.NewTurretSystem(world, lib, eventDispatcher, g.ProjectileSystem, g.CollisionSystem)
	g.EconomySystem = system.NewEconomySystem(world, lib, eventDispatcher)
	g.StateSystem = system.NewStateSystem(world, lib, g, eventDispatcher, g.EconomySystem)
	g.MovementSystem = system.NewMovementSystem(world, g.StateSystem)
	g.SpawnSystem = system.NewSpawnSystem(world, lib, rng)
	g.WaveSystem = system.NewWaveSystem(world, lib, rng, g.SpawnSystem, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(world, lib)
	return g
}

// Start начинает новую сессию; предыдущая, если была, отбрасывается.
func (g *Game) Start(opts Options) {
	g.upgradeMenuOpen = false
	g.StateSystem.Start(opts.Difficulty, opts.Mode)
}

// Step продвигает симуляцию на один кадр. Для неактивной сессии ничего не делает.
func (g *Game) Step() {
	if !g.World.Running() {
		return
	}
	g.TurretSystem.Update()
	g.ProjectileSystem.Update()
	g.CollisionSystem.Resolve()
	g.MovementSystem.Update()
	if !g.World.Running() {
		return
	}
	g.VisualEffectSystem.Update()
	g.director().Update()
	g.World.Session.Frames++
}

func (g *Game) director() director {
	if g.World.Session.Mode == defs.ModeWaves {
		return g.WaveSystem
	}
	return g.SpawnSystem
}

// Draw строит кадр мира. Интерфейс дорисовывается поверх вызывающей стороной.
func (g *Game) Draw(frame *render.Frame) {
	g.RenderSystem.Draw(frame)
}

// SetPointer запоминает позицию курсора или касания; побеждает последняя запись.
func (g *Game) SetPointer(x, y float64) {
	g.World.Pointer.X, g.World.Pointer.Y = x, y
}

// Resize меняет размер вьюпорта. Центр турели пересчитается на следующем шаге.
func (g *Game) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	g.World.Width, g.World.Height = width, height
}

func (g *Game) Buy(id defs.UpgradeID) error {
	return g.EconomySystem.Buy(id)
}

func (g *Game) Equip(weapon defs.WeaponID) error {
	return g.EconomySystem.Equip(weapon)
}

// ToggleUpgradeMenu открывает и закрывает магазин. Симуляция при этом не останавливается.
func (g *Game) ToggleUpgradeMenu() {
	if !g.World.Running() {
		return
	}
	g.upgradeMenuOpen = !g.upgradeMenuOpen
}

func (g *Game) UpgradeMenuOpen() bool {
	return g.upgradeMenuOpen && g.World.Running()
}

// Subscribe подписывает внешнего слушателя (звук, логирование) на события игры.
func (g *Game) Subscribe(listener event.Listener, types ...event.EventType) {
	g.EventDispatcher.Subscribe(listener, types...)
}

func (g *Game) Session() component.Session {
	return *g.World.Session
}

func (g *Game) Turret() component.Turret {
	return *g.World.Turret
}

// Upgrades возвращает состояние магазина в порядке отображения.
func (g *Game) Upgrades() []component.Upgrade {
	var out []component.Upgrade
	for _, id := range g.Library.UpgradeOrder {
		if u, ok := g.World.Upgrades[id]; ok {
			out = append(out, *u)
		}
	}
	return out
}

// WeaponAvailable сообщает, можно ли сейчас выбрать оружие.
func (g *Game) WeaponAvailable(id defs.WeaponID) bool {
	def, ok := g.Library.Weapon(id)
	return ok && (def.Default || g.World.Unlocked[id])
}

// --- GameContext ---

func (g *Game) ClearTargets() {
	g.World.Targets = g.World.Targets[:0]
}

func (g *Game) ClearProjectiles() {
	g.World.Projectiles = g.World.Projectiles[:0]
}

func (g *Game) Viewport() (float64, float64) {
	return g.World.Width, g.World.Height
}
