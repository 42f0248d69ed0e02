package config

// StateID identifies a locomotion state of a character.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	Walk
	Running
	Jump
	Fall
	Crouch
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Walk:      "walk",
	Running:   "running",
	Jump:      "jump",
	Fall:      "fall",
	Crouch:    "crouch",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
