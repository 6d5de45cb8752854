package config

// Key is a logical key identifier as delivered by the host, e.g. "a" or
// "ArrowLeft".
type Key string

const (
	KeyA          Key = "a"
	KeyD          Key = "d"
	KeyW          Key = "w"
	KeyS          Key = "s"
	KeyF          Key = "f"
	KeyE          Key = "e"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeySlash      Key = "/"
	KeyPeriod     Key = "."
	KeyEscape     Key = "Escape"
	KeyEnter      Key = "Enter"
	KeyBackspace  Key = "Backspace"
)

// ActionID represents a logical fighter action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPunch
	ActionSecondary
	ActionSpecial
	ActionCount // Must be last - used for array sizing
)

// PlayerBindings maps each fighter action to one key.
type PlayerBindings struct {
	Keys [ActionCount]Key
}

// Key returns the key bound to an action.
func (b PlayerBindings) Key(action ActionID) Key {
	if action <= ActionNone || action >= ActionCount {
		return ""
	}
	return b.Keys[action]
}

// Action resolves a key to the action it is bound to. Unknown keys map to
// ActionNone.
func (b PlayerBindings) Action(k Key) ActionID {
	for a := ActionMoveLeft; a < ActionCount; a++ {
		if b.Keys[a] == k {
			return a
		}
	}
	return ActionNone
}

// InputConfig holds all input mappings.
type InputConfig struct {
	Players [2]PlayerBindings

	// Host-level keys, never seen by the simulation
	Pause      Key
	Confirm    Key
	BackToMenu Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Players: [2]PlayerBindings{
			{Keys: [ActionCount]Key{
				ActionMoveLeft:  KeyA,
				ActionMoveRight: KeyD,
				ActionJump:      KeyW,
				ActionPunch:     KeyS,
				ActionSecondary: KeyF,
				ActionSpecial:   KeyE,
			}},
			{Keys: [ActionCount]Key{
				ActionMoveLeft:  KeyArrowLeft,
				ActionMoveRight: KeyArrowRight,
				ActionJump:      KeyArrowUp,
				ActionPunch:     KeyArrowDown,
				ActionSecondary: KeySlash,
				ActionSpecial:   KeyPeriod,
			}},
		},
		Pause:      KeyEscape,
		Confirm:    KeyEnter,
		BackToMenu: KeyBackspace,
	}
}
