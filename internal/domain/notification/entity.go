package notification

import (
	"time"
)

// Level is the severity a page uses to style a toast
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// AllLevels returns all toast levels
func AllLevels() []Level {
	return []Level{LevelSuccess, LevelInfo, LevelWarning, LevelError}
}

// Toast is a user-facing, non-fatal message addressed to one page session
type Toast struct {
	SessionID string    `json:"-"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
