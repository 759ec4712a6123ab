package shared

type Page int

const (
	UNLOCK Page = iota
	CREATE
	UNLOCKED
	SETTINGS
)

const DefaultPinKey = "default"
