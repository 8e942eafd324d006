// internal/ui/upgrade_panel.go
package ui

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/pkg/render"
	"fmt"
)

const (
	panelWidth     = 300
	panelMargin    = 12
	rowHeight      = 64
	animationSpeed = 40.0
)

// ShopItem — одна строка магазина, как её видит игрок.
type ShopItem struct {
	ID         defs.UpgradeID
	Name       string
	Kind       defs.UpgradeKind
	Level      int
	MaxLevel   int
	Cost       int
	Maxed      bool
	Affordable bool
}

// WeaponItem — кнопка выбора оружия.
type WeaponItem struct {
	ID        defs.WeaponID
	Name      string
	Available bool
	Equipped  bool
}

// ShopView — снимок магазина для отрисовки.
type ShopView struct {
	Money   int
	Items   []ShopItem
	Weapons []WeaponItem
}

// BuildShopView собирает снимок магазина из состояния сессии.
func BuildShopView(lib *defs.Library, upgrades []component.Upgrade, money int, mode defs.Mode, equipped defs.WeaponID, available func(defs.WeaponID) bool) ShopView {
	v := ShopView{Money: money}
	for _, u := range upgrades {
		name := string(u.ID)
		if def, ok := lib.Upgrades[u.ID]; ok {
			name = def.Name
		}
		v.Items = append(v.Items, ShopItem{
			ID:         u.ID,
			Name:       name,
			Kind:       u.Kind,
			Level:      u.Level,
			MaxLevel:   u.MaxLevel,
			Cost:       u.Cost,
			Maxed:      u.Maxed(),
			Affordable: money >= u.Cost,
		})
	}
	if mode == defs.ModeWaves {
		for _, id := range lib.WeaponOrder {
			def, ok := lib.Weapon(id)
			if !ok {
				continue
			}
			v.Weapons = append(v.Weapons, WeaponItem{
				ID:        id,
				Name:      def.Name,
				Available: available(id),
				Equipped:  id == equipped,
			})
		}
	}
	return v
}

// UpgradePanel — выезжающая справа панель магазина.
type UpgradePanel struct {
	IsVisible bool
	currentX  float64
	targetX   float64
	width     float64
	height    float64

	view    ShopView
	buy     []*Button
	weapons []*Button
}

func NewUpgradePanel() *UpgradePanel {
	return &UpgradePanel{}
}

// Layout запоминает размер экрана; закрытая панель уезжает за правый край.
func (p *UpgradePanel) Layout(width, height float64) {
	if p.width != width && !p.IsVisible {
		p.currentX = width
	}
	p.width, p.height = width, height
	if p.IsVisible {
		p.targetX = width - panelWidth
	} else {
		p.targetX = width
	}
}

func (p *UpgradePanel) SetVisible(visible bool) {
	p.IsVisible = visible
	p.Layout(p.width, p.height)
}

// Update двигает панель к целевой позиции и перестраивает кнопки.
func (p *UpgradePanel) Update(view ShopView) {
	if p.currentX != p.targetX {
		diff := p.targetX - p.currentX
		switch {
		case diff > -animationSpeed && diff < animationSpeed:
			p.currentX = p.targetX
		case diff > 0:
			p.currentX += animationSpeed
		default:
			p.currentX -= animationSpeed
		}
	}
	p.view = view
	p.layoutButtons()
}

func (p *UpgradePanel) layoutButtons() {
	x := p.currentX + panelMargin
	p.buy = p.buy[:0]
	for i, item := range p.view.Items {
		y := panelMargin + 40 + float64(i)*rowHeight
		label := fmt.Sprintf("$%d", item.Cost)
		if item.Maxed {
			label = "Maxed"
			if item.Kind == defs.UpgradeUnlock {
				label = "Owned"
			}
		}
		b := NewButton(x+panelWidth-2*panelMargin-90, y+8, 90, 28, label)
		b.Enabled = !item.Maxed && item.Affordable
		p.buy = append(p.buy, b)
	}

	p.weapons = p.weapons[:0]
	top := panelMargin + 40 + float64(len(p.view.Items))*rowHeight + 24
	bw := (panelWidth - 2*panelMargin - 2*8) / 3.0
	for i, w := range p.view.Weapons {
		b := NewButton(x+float64(i)*(bw+8), top, bw, 28, fmt.Sprintf("%d %s", i+1, w.Name))
		b.Enabled = w.Available
		if w.Equipped {
			b.BgColor = config.BarColor
			b.TextColor = config.TextDarkColor
		}
		p.weapons = append(p.weapons, b)
	}
}

// Contains сообщает, что точка попадает в видимую часть панели.
func (p *UpgradePanel) Contains(x, y float64) bool {
	return p.IsVisible && p.currentX < p.width && x >= p.currentX && y >= 0 && y < p.height
}

// Click переводит клик в покупку или выбор оружия.
func (p *UpgradePanel) Click(x, y float64) Action {
	if !p.IsVisible {
		return Action{}
	}
	for i, b := range p.buy {
		// Неактивная кнопка тоже отправляет покупку: магазин сам ответит отказом.
		if b.Contains(x, y) && !p.view.Items[i].Maxed {
			return Action{Kind: ActionBuy, Upgrade: p.view.Items[i].ID}
		}
	}
	for i, b := range p.weapons {
		if b.Contains(x, y) {
			return Action{Kind: ActionEquip, Weapon: p.view.Weapons[i].ID}
		}
	}
	return Action{}
}

func (p *UpgradePanel) Hover(x, y float64) {
	for _, b := range p.buy {
		b.Hover = b.Contains(x, y)
	}
	for _, b := range p.weapons {
		b.Hover = b.Contains(x, y)
	}
}

func (p *UpgradePanel) Draw(frame *render.Frame) {
	if p.currentX >= p.width {
		return
	}
	x := p.currentX
	frame.Rect(x, 0, 0, 0, panelWidth, p.height, 0, config.PanelColor)
	frame.Text(x+panelMargin, panelMargin+LineHeight, "UPGRADES", render.AlignLeft, config.TextLightColor)
	frame.Text(x+panelWidth-panelMargin, panelMargin+LineHeight, fmt.Sprintf("$%d", p.view.Money), render.AlignRight, config.BarColor)

	for i, item := range p.view.Items {
		y := panelMargin + 40 + float64(i)*rowHeight
		frame.Text(x+panelMargin, y+LineHeight, item.Name, render.AlignLeft, config.TextLightColor)
		if item.Kind == defs.UpgradeLeveled && item.MaxLevel > 0 {
			barW := float64(panelWidth - 2*panelMargin - 100)
			frame.Rect(x+panelMargin, y+LineHeight+8, 0, 0, barW, 8, 0, config.ButtonDisabled)
			fill := barW * float64(item.Level) / float64(item.MaxLevel)
			frame.Rect(x+panelMargin, y+LineHeight+8, 0, 0, fill, 8, 0, config.BarColor)
		}
		p.buy[i].Draw(frame)
	}

	if len(p.view.Weapons) > 0 {
		top := panelMargin + 40 + float64(len(p.view.Items))*rowHeight + 16
		frame.Text(x+panelMargin, top, "WEAPON", render.AlignLeft, config.TextLightColor)
		for _, b := range p.weapons {
			b.Draw(frame)
		}
	}
}
