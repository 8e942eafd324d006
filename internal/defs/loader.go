// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LoadLibrary reads a JSON definitions file on top of the built-in defaults.
// Поля, отсутствующие в файле, остаются со значениями по умолчанию.
func LoadLibrary(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}

	lib := DefaultLibrary()
	if err := json.Unmarshal(file, lib); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions in %s: %w", path, err)
	}
	return lib, nil
}

// Validate проверяет ссылки между определениями и базовые инварианты.
func (l *Library) Validate() error {
	var errs []error

	if _, ok := l.Difficulties[DifficultyEasy]; !ok {
		errs = append(errs, errors.New("difficulty \"easy\" is required"))
	}
	hasDefault := false
	for id, w := range l.Weapons {
		if w.Default {
			hasDefault = true
		}
		if w.DelayFactor <= 0 {
			errs = append(errs, fmt.Errorf("weapon %q: delay_factor must be positive", id))
		}
		if !w.HitScan && w.Speed <= 0 {
			errs = append(errs, fmt.Errorf("weapon %q: speed must be positive", id))
		}
	}
	if !hasDefault {
		errs = append(errs, errors.New("at least one weapon must be default"))
	}
	for id, u := range l.Upgrades {
		if u.InitialCost < 0 {
			errs = append(errs, fmt.Errorf("upgrade %q: negative cost", id))
		}
		switch u.Kind {
		case UpgradeLeveled:
			if u.MaxLevel <= 0 || u.Growth < 1 {
				errs = append(errs, fmt.Errorf("upgrade %q: max_level must be > 0 and growth >= 1", id))
			}
		case UpgradeUnlock:
			if _, ok := l.Weapons[u.Weapon]; !ok {
				errs = append(errs, fmt.Errorf("upgrade %q: unknown weapon %q", id, u.Weapon))
			}
		default:
			errs = append(errs, fmt.Errorf("upgrade %q: unknown kind %q", id, u.Kind))
		}
	}
	if l.Waves.MinInterval < 1 {
		errs = append(errs, errors.New("waves: min_interval must be >= 1"))
	}
	return errors.Join(errs...)
}
