// Package commands holds the built-in command definitions. Each file
// contributes one definition; Definitions collects them in the order they are
// registered with the platform.
package commands

import (
	"github.com/echostudios/echobot/internal/command"
)

// Command categories.
const (
	CategoryGeneral        = "General"
	CategoryEntertainment  = "Entertainment"
	CategoryUtility        = "Utility"
	CategoryAdministration = "Administration"
)

// Definitions returns every built-in command definition.
func Definitions() []command.Definition {
	return []command.Definition{
		pingDefinition(),
		helpDefinition(),
		eightBallDefinition(),
		userInfoDefinition(),
		dbStatsDefinition(),
		setupVerifyDefinition(),
	}
}

func categoryEmoji(category string) string {
	switch category {
	case CategoryGeneral:
		return "📋"
	case CategoryEntertainment:
		return "🎮"
	case CategoryUtility:
		return "🔧"
	case CategoryAdministration:
		return "⚙️"
	default:
		return "📁"
	}
}
