package components

// Timer is a frame countdown shared by status effects and buffs. Remaining
// never goes below zero and Active is cleared on the tick it reaches zero.
type Timer struct {
	Active    bool
	Remaining int
}

// Start (re)arms the timer. Re-applying an active effect resets the duration
// instead of adding to it.
func (t *Timer) Start(frames int) {
	if frames <= 0 {
		t.Stop()
		return
	}
	t.Active = true
	t.Remaining = frames
}

// Stop clears the timer immediately.
func (t *Timer) Stop() {
	t.Active = false
	t.Remaining = 0
}

// Tick advances the timer one frame and reports whether it expired on this
// tick.
func (t *Timer) Tick() bool {
	if !t.Active {
		return false
	}
	if t.Remaining > 0 {
		t.Remaining--
	}
	if t.Remaining == 0 {
		t.Active = false
		return true
	}
	return false
}

// On reports whether the timer is running.
func (t Timer) On() bool {
	return t.Active && t.Remaining > 0
}

// StatusEffects are the timed debuffs hazards and attacks apply.
type StatusEffects struct {
	Burning   Timer
	Frozen    Timer
	Stunned   Timer
	Poisoned  Timer
	Possessed Timer
}

// Tick advances every status timer.
func (s *StatusEffects) Tick() {
	s.Burning.Tick()
	s.Frozen.Tick()
	s.Stunned.Tick()
	s.Poisoned.Tick()
	s.Possessed.Tick()
}

// Buffs are the timed power-up effects.
type Buffs struct {
	Speed     Timer
	SuperJump Timer
	Giant     Timer
	Shield    Timer
	RapidFire Timer
}

// Tick advances every buff timer.
func (b *Buffs) Tick() {
	b.Speed.Tick()
	b.SuperJump.Tick()
	b.Giant.Tick()
	b.Shield.Tick()
	b.RapidFire.Tick()
}

// Timer returns the buff timer for a power-up kind, or nil for an unknown
// kind.
func (b *Buffs) Timer(kind PowerUpKind) *Timer {
	switch kind {
	case PowerUpSpeed:
		return &b.Speed
	case PowerUpJump:
		return &b.SuperJump
	case PowerUpGiant:
		return &b.Giant
	case PowerUpShield:
		return &b.Shield
	case PowerUpRapidFire:
		return &b.RapidFire
	}
	return nil
}
