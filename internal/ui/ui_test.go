package ui

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/leaderboard"
	"balloon-popper/pkg/render"
	"testing"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		if got := ToRoman(tt.in); got != tt.want {
			t.Errorf("ToRoman(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWaveIndicatorBossColor(t *testing.T) {
	w := NewWaveIndicator(100, 20)
	frame := render.NewFrame(800, 600, config.BackgroundColor)
	w.Draw(frame, 10)
	last := frame.Items[len(frame.Items)-1]
	if last.Color != config.BossWaveColor || last.Text != "X" {
		t.Errorf("wave 10 drawn as %q in %v", last.Text, last.Color)
	}

	frame.Reset(800, 600, config.BackgroundColor)
	w.Draw(frame, 0)
	if len(frame.Items) != 0 {
		t.Errorf("wave 0 drew %d items", len(frame.Items))
	}
}

func TestButtonDisabledNotClicked(t *testing.T) {
	b := NewButton(10, 10, 100, 30, "Go")
	if !b.Clicked(50, 20) {
		t.Fatal("enabled button not clicked")
	}
	b.Enabled = false
	if b.Clicked(50, 20) {
		t.Error("disabled button clicked")
	}
	if b.Clicked(200, 20) {
		t.Error("click outside counted")
	}
}

func TestHUDToggle(t *testing.T) {
	h := NewHUD()
	h.Layout(800, 600)
	b := h.UpgradeButton
	if a := h.Click(b.X+1, b.Y+1); a.Kind != ActionToggleUpgrades {
		t.Errorf("Click on upgrade button = %v", a.Kind)
	}
	if a := h.Click(400, 300); a.Kind != ActionNone {
		t.Errorf("Click on field = %v", a.Kind)
	}
}

func shopFixture(money int) ShopView {
	lib := defs.DefaultLibrary()
	upgrades := []component.Upgrade{
		{ID: defs.UpgradeFireRate, Kind: defs.UpgradeLeveled, Level: 5, MaxLevel: 5, Cost: 759},
		{ID: defs.UpgradeMultiShot, Kind: defs.UpgradeLeveled, Level: 0, MaxLevel: 5, Cost: 500},
		{ID: defs.UpgradeShotgun, Kind: defs.UpgradeUnlock, Cost: 750, Unlocked: true, Weapon: defs.WeaponShotgun},
		{ID: defs.UpgradeLaser, Kind: defs.UpgradeUnlock, Cost: 1500, Weapon: defs.WeaponLaser},
	}
	available := func(id defs.WeaponID) bool { return id != defs.WeaponLaser }
	return BuildShopView(lib, upgrades, money, defs.ModeWaves, defs.WeaponStandard, available)
}

func TestBuildShopView(t *testing.T) {
	v := shopFixture(600)
	if len(v.Items) != 4 || len(v.Weapons) != 3 {
		t.Fatalf("got %d items, %d weapons", len(v.Items), len(v.Weapons))
	}
	if !v.Items[0].Maxed || v.Items[0].Name != "Fire Rate" {
		t.Errorf("fire rate item = %+v", v.Items[0])
	}
	if !v.Items[1].Affordable || v.Items[3].Affordable {
		t.Errorf("affordability wrong: %+v / %+v", v.Items[1], v.Items[3])
	}
	if !v.Weapons[0].Equipped || v.Weapons[2].Available {
		t.Errorf("weapons = %+v", v.Weapons)
	}

	classic := BuildShopView(defs.DefaultLibrary(), nil, 0, defs.ModeClassic, defs.WeaponStandard, nil)
	if len(classic.Weapons) != 0 {
		t.Errorf("classic mode lists %d weapons", len(classic.Weapons))
	}
}

func openPanel(view ShopView) *UpgradePanel {
	p := NewUpgradePanel()
	p.Layout(800, 600)
	p.SetVisible(true)
	// Доводим анимацию до конца.
	for i := 0; i < 20; i++ {
		p.Update(view)
	}
	return p
}

func TestUpgradePanelSlides(t *testing.T) {
	p := NewUpgradePanel()
	p.Layout(800, 600)
	p.Update(ShopView{})
	if p.Contains(790, 100) {
		t.Fatal("closed panel is hit-testable")
	}
	p.SetVisible(true)
	p.Update(ShopView{})
	if p.currentX != 800-animationSpeed {
		t.Errorf("after one frame x = %v", p.currentX)
	}
	p = openPanel(ShopView{})
	if p.currentX != 800-panelWidth {
		t.Errorf("open panel x = %v, want %v", p.currentX, 800-panelWidth)
	}
}

func TestUpgradePanelClicks(t *testing.T) {
	p := openPanel(shopFixture(600))

	if p.buy[0].Text != "Maxed" || p.buy[0].Enabled {
		t.Errorf("maxed button = %q enabled=%v", p.buy[0].Text, p.buy[0].Enabled)
	}
	if p.buy[2].Text != "Owned" {
		t.Errorf("unlocked button = %q", p.buy[2].Text)
	}
	if p.buy[3].Enabled {
		t.Error("unaffordable buy enabled")
	}

	b := p.buy[0]
	if a := p.Click(b.X+1, b.Y+1); a.Kind != ActionNone {
		t.Errorf("click on maxed = %v", a.Kind)
	}
	b = p.buy[1]
	if a := p.Click(b.X+1, b.Y+1); a.Kind != ActionBuy || a.Upgrade != defs.UpgradeMultiShot {
		t.Errorf("click on multi shot = %+v", a)
	}
	// Нехватка денег всё равно уходит в магазин, чтобы прозвучал отказ.
	b = p.buy[3]
	if a := p.Click(b.X+1, b.Y+1); a.Kind != ActionBuy || a.Upgrade != defs.UpgradeLaser {
		t.Errorf("click on laser = %+v", a)
	}
	w := p.weapons[1]
	if a := p.Click(w.X+1, w.Y+1); a.Kind != ActionEquip || a.Weapon != defs.WeaponShotgun {
		t.Errorf("click on shotgun = %+v", a)
	}

	p.SetVisible(false)
	if a := p.Click(b.X+1, b.Y+1); a.Kind != ActionNone {
		t.Errorf("hidden panel click = %v", a.Kind)
	}
	// Уезжающая панель уже не перехватывает клики у HUD.
	p.Update(shopFixture(600))
	if p.currentX >= p.width {
		t.Fatal("panel closed in one frame")
	}
	if p.Contains(b.X+1, b.Y+1) {
		t.Error("closing panel still hit-testable")
	}
}

func TestMenu(t *testing.T) {
	lib := defs.DefaultLibrary()
	m := NewMenu(lib)
	m.Layout(800, 600)

	b := m.buttons[2]
	a := m.Click(b.X+1, b.Y+1)
	if a.Kind != ActionStart || a.Difficulty != defs.DifficultyNuclear || a.Mode != defs.ModeWaves {
		t.Errorf("click nuclear = %+v", a)
	}
	if a := m.Click(m.modeButton.X+1, m.modeButton.Y+1); a.Kind != ActionToggleMode {
		t.Errorf("click mode = %v", a.Kind)
	}
	m.ToggleMode()
	if m.Mode != defs.ModeClassic {
		t.Errorf("mode after toggle = %v", m.Mode)
	}

	m.SetEntries([]leaderboard.Entry{{Name: "ann", Score: 120}, {Name: "bob", Score: 80}})
	frame := render.NewFrame(800, 600, config.BackgroundColor)
	m.Draw(frame)
	found := false
	for _, p := range frame.Items {
		if p.Kind == render.KindText && p.Text == "High score: 120" {
			found = true
		}
	}
	if !found {
		t.Error("high score not drawn")
	}
}

func TestGameOverNameEntry(t *testing.T) {
	g := NewGameOverScreen()
	g.Reset(300, 30)
	for _, r := range "Player\n" {
		g.AppendRune(r)
	}
	if string(g.Name) != "Player" {
		t.Errorf("name = %q", string(g.Name))
	}
	g.Backspace()
	if string(g.Name) != "Playe" {
		t.Errorf("after backspace = %q", string(g.Name))
	}
	for i := 0; i < 40; i++ {
		g.AppendRune('x')
	}
	if len(g.Name) != config.MaxNameLength {
		t.Errorf("name length = %d", len(g.Name))
	}

	if a := g.Click(g.save.X+1, g.save.Y+1); a.Kind != ActionSaveScore {
		t.Errorf("save click = %v", a.Kind)
	}
	g.MarkSaved()
	if a := g.Click(g.save.X+1, g.save.Y+1); a.Kind != ActionNone {
		t.Errorf("second save click = %v", a.Kind)
	}
	g.AppendRune('y')
	if len(g.Name) != config.MaxNameLength {
		t.Error("name edited after save")
	}
	if a := g.Click(g.restart.X+1, g.restart.Y+1); a.Kind != ActionRestart {
		t.Errorf("restart click = %v", a.Kind)
	}

	frame := &render.Frame{}
	g.Draw(frame)
	found := false
	for _, p := range frame.Items {
		if p.Kind == render.KindText && p.Text == "Balloons popped: 30" {
			found = true
		}
	}
	if !found {
		t.Error("pop tally not drawn")
	}
}
