package domain

import "time"

// Status tells the top-level loop what to do after a dispatch cycle.
type Status int

const (
	StatusSuccess Status = iota
	StatusClarify
	StatusStandard
	StatusExit
	StatusRestart
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusClarify:
		return "clarify"
	case StatusStandard:
		return "standard"
	case StatusExit:
		return "exit"
	case StatusRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Result is produced exactly once per dispatch.
type Result struct {
	Status  Status
	Message string // shown in the chat
	Speech  string // spoken instead of Message when set

	// Suggestions holds near-miss trigger phrases for unknown commands.
	Suggestions []string

	// Voiced is set when the handler already spoke the reply itself.
	Voiced bool
}

// Spoken returns the text that should be voiced for the result.
func (r Result) Spoken() string {
	if r.Voiced {
		return ""
	}
	if r.Speech != "" {
		return r.Speech
	}
	return r.Message
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser    Role = "user"
	RoleProgram Role = "program"
	RoleSystem  Role = "center"
)

// Activity is reported through the status hook while the loop works.
type Activity string

const (
	ActivityListening Activity = "listening"
	ActivityThinking  Activity = "thinking"
	ActivitySpeaking  Activity = "speaking"
	ActivityNone      Activity = "none"
)

// ChatMessage is one entry of the shared chat log.
type ChatMessage struct {
	ID        int64
	Role      Role
	Text      string
	CreatedAt time.Time
}

// CommandEntry is a user-defined command: a trigger pattern with at most one
// [label] slot, and the shell action it runs.
type CommandEntry struct {
	Pattern string
	Action  string
}

// DeferredKind distinguishes reminders from alarms.
type DeferredKind string

const (
	DeferredReminder DeferredKind = "reminder"
	DeferredAlarm    DeferredKind = "alarm"
)

// DeferredAction is the handle of a scheduled reminder or alarm.
// It is immutable once scheduled and fires once.
type DeferredAction struct {
	ID     string
	Kind   DeferredKind
	FireAt time.Time
	Text   string
}

// MemoryStats describes physical memory usage.
type MemoryStats struct {
	UsedPercent float64
	Total       uint64
	Available   uint64
}

// Weather is the current weather for a city.
type Weather struct {
	City        string
	Temperature int
	FeelsLike   int
	Description string
}

// Location is the result of IP geolocation.
type Location struct {
	City    string
	Country string
}

// Program is an installed application found by the program index.
type Program struct {
	Name string // lower-cased display name
	Path string
}
