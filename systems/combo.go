package systems

import (
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
)

// comboRule maps a suffix of the recent action sequence to an attack.
type comboRule struct {
	suffix []cfg.ActionID
	attack cfg.AttackType
}

// Checked in order after the triple-tap rule.
var comboRules = []comboRule{
	{[]cfg.ActionID{cfg.ActionPunch, cfg.ActionPunch}, cfg.AttackKick},
	{[]cfg.ActionID{cfg.ActionPunch, cfg.ActionSecondary}, cfg.AttackUppercut},
	{[]cfg.ActionID{cfg.ActionSecondary, cfg.ActionPunch}, cfg.AttackUppercut},
	{[]cfg.ActionID{cfg.ActionMoveRight, cfg.ActionPunch}, cfg.AttackUppercut},
	{[]cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionPunch}, cfg.AttackKick},
	{[]cfg.ActionID{cfg.ActionJump, cfg.ActionPunch}, cfg.AttackSlam},
}

// RecognizeCombo matches one fighter's key history against the combo table
// and returns the recognized attack, or AttackNone. Keys that are not bound
// to one of the fighter's actions are ignored. It holds no state: the caller
// clears the history once the combo is used.
func RecognizeCombo(history components.KeyHistory, bindings cfg.PlayerBindings, frame int) cfg.AttackType {
	window := cfg.Combo.Window

	var recent []cfg.ActionID
	for _, kp := range history {
		if frame-kp.Frame >= window {
			continue
		}
		if a := bindings.Action(kp.Key); a != cfg.ActionNone {
			recent = append(recent, a)
		}
	}
	if len(recent) < cfg.Combo.MinKeys {
		return cfg.AttackNone
	}

	punch := cfg.ActionPunch
	if endsWith(recent, punch, punch, punch) {
		return cfg.AttackSlam
	}
	if endsWith(recent, punch, punch) && countRecent(history, bindings.Key(punch), frame, window*cfg.Combo.TripleWindowMul) >= 3 {
		return cfg.AttackSlam
	}

	for _, r := range comboRules {
		if endsWith(recent, r.suffix...) {
			return r.attack
		}
	}

	for _, a := range recent {
		if a == cfg.ActionSpecial {
			return cfg.AttackSpecial
		}
	}
	return cfg.AttackNone
}

func endsWith(seq []cfg.ActionID, suffix ...cfg.ActionID) bool {
	if len(suffix) > len(seq) {
		return false
	}
	off := len(seq) - len(suffix)
	for i, a := range suffix {
		if seq[off+i] != a {
			return false
		}
	}
	return true
}

// countRecent counts history entries of one key younger than window frames.
func countRecent(history components.KeyHistory, key cfg.Key, frame, window int) int {
	n := 0
	for _, kp := range history {
		if kp.Key == key && frame-kp.Frame < window {
			n++
		}
	}
	return n
}
