// internal/state/game_state.go
package state

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/interfaces"
	"balloon-popper/internal/system"
	"balloon-popper/internal/ui"
	"balloon-popper/pkg/render"
	"errors"
	"log/slog"
)

// GameState — идёт игра.
type GameState struct {
	sm    *StateMachine
	env   *Env
	shop  interfaces.Shop
	hud   *ui.HUD
	panel *ui.UpgradePanel
}

func NewGameState(sm *StateMachine, env *Env) *GameState {
	return &GameState{
		sm:    sm,
		env:   env,
		shop:  env.Game,
		hud:   ui.NewHUD(),
		panel: ui.NewUpgradePanel(),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе: сессию запускает меню
}

func (g *GameState) Update(in *Input) {
	game := g.env.Game
	game.Resize(in.Width, in.Height)
	g.hud.Layout(in.Width, in.Height)
	g.panel.Layout(in.Width, in.Height)

	if in.Pressed(KeyP) || in.Pressed(KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.handleKeys(in)

	game.SetPointer(in.PointerX, in.PointerY)
	g.hud.Hover(in.PointerX, in.PointerY)
	g.panel.Hover(in.PointerX, in.PointerY)
	if in.Clicked {
		g.handleClick(in.PointerX, in.PointerY)
	}

	game.Step()

	g.panel.SetVisible(game.UpgradeMenuOpen())
	g.panel.Update(g.shopView())

	if game.Session().State == component.SessionEnded {
		g.sm.SetState(NewGameOverState(g.sm, g.env, g))
	}
}

func (g *GameState) handleKeys(in *Input) {
	game := g.env.Game
	if in.Pressed(KeySpace) || in.Pressed(KeyQ) {
		game.ToggleUpgradeMenu()
	}
	for i, k := range []Key{Key1, Key2, Key3} {
		if in.Pressed(k) && i < len(g.env.Library.WeaponOrder) {
			g.exec(ui.Action{Kind: ui.ActionEquip, Weapon: g.env.Library.WeaponOrder[i]})
		}
	}
	if in.Pressed(KeyM) && g.env.Audio != nil {
		muted := g.env.Audio.ToggleMute()
		slog.Info("audio toggled", "muted", muted)
	}
}

func (g *GameState) handleClick(x, y float64) {
	if g.panel.Contains(x, y) {
		g.exec(g.panel.Click(x, y))
		return
	}
	g.exec(g.hud.Click(x, y))
}

// exec выполняет действие интерфейса.
func (g *GameState) exec(a ui.Action) {
	game := g.env.Game
	switch a.Kind {
	case ui.ActionToggleUpgrades:
		game.ToggleUpgradeMenu()
	case ui.ActionBuy:
		if err := g.shop.Buy(a.Upgrade); err != nil {
			slog.Debug("purchase rejected", "upgrade", a.Upgrade, "error", err)
		}
	case ui.ActionEquip:
		if game.Session().Mode != defs.ModeWaves {
			return
		}
		if err := g.shop.Equip(a.Weapon); err != nil && !errors.Is(err, system.ErrWeaponLocked) {
			slog.Warn("equip failed", "weapon", a.Weapon, "error", err)
		}
	}
}

func (g *GameState) shopView() ui.ShopView {
	game := g.env.Game
	s := game.Session()
	return ui.BuildShopView(g.env.Library, game.Upgrades(), s.Money, s.Mode, game.Turret().Weapon, game.WeaponAvailable)
}

func (g *GameState) weaponName() string {
	if def, ok := g.env.Library.Weapon(g.env.Game.Turret().Weapon); ok {
		return def.Name
	}
	return string(g.env.Game.Turret().Weapon)
}

func (g *GameState) Draw(frame *render.Frame) {
	game := g.env.Game
	game.Draw(frame)
	muted := g.env.Audio == nil || g.env.Audio.Muted()
	g.hud.Draw(frame, game.Session(), g.weaponName(), muted)
	g.panel.Draw(frame)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
