package dispatchers

// CommandCategory groups builtin commands in the catalogue.
type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryConversation    // greeting, identity, goodbye
	CategoryWeb             // search, sites, music
	CategoryApps            // programs and windows
	CategoryInput           // mouse and keyboard
	CategoryMedia           // player keys
	CategoryInfo            // time, date, news, weather
	CategorySystem          // load, volume, power
	CategoryPlanning        // reminders, alarms, to-do
	CategorySettings        // settings changed by voice
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryConversation:
		return "розмова"
	case CategoryWeb:
		return "інтернет і музика"
	case CategoryApps:
		return "програми та вікна"
	case CategoryInput:
		return "миша і клавіатура"
	case CategoryMedia:
		return "медіа"
	case CategoryInfo:
		return "інформація"
	case CategorySystem:
		return "система"
	case CategoryPlanning:
		return "нагадування і справи"
	case CategorySettings:
		return "налаштування"
	default:
		return "інше"
	}
}

var categoryOrder = []CommandCategory{
	CategoryConversation,
	CategoryInfo,
	CategoryWeb,
	CategoryApps,
	CategoryInput,
	CategoryMedia,
	CategoryPlanning,
	CategorySystem,
	CategorySettings,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
