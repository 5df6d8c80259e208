package session

// Mode is the screen the session is on.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Action is a player intent decoded from keyboard input by a presenter.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotate
	ActionConfirm
	ActionCancel
	ActionBackspace
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionSoftDrop:
		return "soft drop"
	case ActionHardDrop:
		return "hard drop"
	case ActionRotate:
		return "rotate"
	case ActionConfirm:
		return "confirm"
	case ActionCancel:
		return "cancel"
	case ActionBackspace:
		return "backspace"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Cue is a feedback event a presenter may turn into sound.
type Cue int

const (
	CueRotate Cue = iota + 1
	CueLock
	CueClear
	CueGameOver
	CueSaved
)

func (c Cue) String() string {
	switch c {
	case CueRotate:
		return "rotate"
	case CueLock:
		return "lock"
	case CueClear:
		return "clear"
	case CueGameOver:
		return "game over"
	case CueSaved:
		return "saved"
	default:
		return "unknown"
	}
}
