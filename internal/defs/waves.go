// internal/defs/waves.go
package defs

// SpawnWeight — запись в таблице выбора типа цели.
// Kind задаёт тип цели, Weight её относительный шанс.
type SpawnWeight struct {
	Kind   TargetKind `json:"kind"`
	Weight int        `json:"weight"`
}

// WaveRules описывает рост волн в режиме волн.
type WaveRules struct {
	BaseCount      int `json:"base_count"`
	CountIncrement int `json:"count_increment"`
	// Задержка между появлениями: max(MinInterval, BaseInterval - IntervalStep*wave) * SpawnFactor.
	BaseInterval int `json:"base_interval"`
	IntervalStep int `json:"interval_step"`
	MinInterval  int `json:"min_interval"`
	// CooldownFrames: пауза между волнами.
	CooldownFrames int     `json:"cooldown_frames"`
	SpeedGrowth    float64 `json:"speed_growth"`
	HPGrowth       float64 `json:"hp_growth"`
	// Искатели появляются только начиная с SeekerWave.
	SeekerWave    int           `json:"seeker_wave"`
	SeekerWeights []SpawnWeight `json:"seeker_weights"`
	SeekerSpeed   float64       `json:"seeker_speed"`
	SeekerHP      float64       `json:"seeker_hp"`
}

// CountFor возвращает размер волны с номером wave.
func (r WaveRules) CountFor(wave int) int {
	return r.BaseCount + r.CountIncrement*wave
}

// SpawnIntervalFor возвращает задержку между появлениями в кадрах, не меньше 1.
func (r WaveRules) SpawnIntervalFor(wave int, spawnFactor float64) int {
	base := r.BaseInterval - r.IntervalStep*wave
	if base < r.MinInterval {
		base = r.MinInterval
	}
	interval := int(float64(base)*spawnFactor + 0.5)
	if interval < 1 {
		interval = 1
	}
	return interval
}

// SpeedMultiplier растёт монотонно с номером волны.
func (r WaveRules) SpeedMultiplier(wave int) float64 {
	return 1 + r.SpeedGrowth*float64(wave-1)
}

// HPMultiplier растёт монотонно с номером волны.
func (r WaveRules) HPMultiplier(wave int) float64 {
	return 1 + r.HPGrowth*float64(wave-1)
}
