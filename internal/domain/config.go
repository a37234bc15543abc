package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in listings (Personal, Telegram, Permissions, ...)
	Hidden      bool   // Hidden keys are not written to a fresh settings file
}

// Setting names as they appear in settings.conf.
const (
	KeyName           = "name"
	KeyCity           = "city"
	KeyMusic          = "music"
	KeyTelegramOnline = "tgo"
	KeyTelegramPath   = "tgpath"
	KeyPCPower        = "pcpower"
	KeyTheme          = "theme"
	KeyAccentColor    = "accent_color"
	KeyHeadlines      = "num_headlines"
	KeySilentMode     = "silentmode"
	KeySaveChat       = "savechat"
	KeyLogLevel       = "log_level"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	DefaultMusicURL  = "https://music.youtube.com/"
	DefaultHeadlines = 5
	MinHeadlines     = 1
	MaxHeadlines     = 10
)

// AccentColors is the fixed cycle used by the "change accent colour" command.
var AccentColors = []string{"Deep Purple", "Indigo", "Blue", "Teal", "Green", "Orange", "Pink"}

// NextAccentColor returns the colour after current, wrapping to the first
// entry. Unknown values restart the cycle.
func NextAccentColor(current string) string {
	for i, c := range AccentColors {
		if c == current {
			return AccentColors[(i+1)%len(AccentColors)]
		}
	}
	return AccentColors[0]
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
// Order determines the order of a freshly written settings file.
var ConfigKeys = []ConfigKey{
	// Personal
	{
		Name:        KeyName,
		Default:     "",
		Description: "How the assistant addresses you",
		Section:     "Personal",
	},
	{
		Name:        KeyCity,
		Default:     "",
		Description: "City for weather; empty means detect by IP",
		Section:     "Personal",
	},
	{
		Name:        KeyMusic,
		Default:     DefaultMusicURL,
		Description: "Link opened by \"включи музику\"",
		Section:     "Personal",
	},
	// Telegram
	{
		Name:        KeyTelegramOnline,
		Default:     "false",
		Description: "Open Telegram in the browser instead of the desktop client (true/false)",
		Section:     "Telegram",
	},
	{
		Name:        KeyTelegramPath,
		Default:     "",
		Description: "Path to the Telegram desktop executable",
		Section:     "Telegram",
	},
	// Permissions
	{
		Name:        KeyPCPower,
		Default:     "false",
		Description: "Allow shutting down and restarting the computer (true/false)",
		Section:     "Permissions",
	},
	// Personalisation
	{
		Name:        KeyTheme,
		Default:     ThemeDark,
		Description: "Colour theme: dark, light",
		Section:     "Personalisation",
	},
	{
		Name:        KeyAccentColor,
		Default:     "Deep Purple",
		Description: "Accent colour: Deep Purple, Indigo, Blue, Teal, Green, Orange, Pink",
		Section:     "Personalisation",
	},
	{
		Name:        KeyHeadlines,
		Default:     "5",
		Description: "Number of news headlines to read (1-10)",
		Section:     "Personalisation",
	},
	{
		Name:        KeySilentMode,
		Default:     "false",
		Description: "Answer in the chat only, without speech (true/false)",
		Section:     "Personalisation",
	},
	// Chat
	{
		Name:        KeySaveChat,
		Default:     "true",
		Description: "Keep chat history between launches (true/false)",
		Section:     "Chat",
	},
	// Logging
	{
		Name:        KeyLogLevel,
		Default:     "info",
		Description: "Log level: debug, info, warn, error",
		Section:     "Logging",
		Hidden:      true,
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Personal", "Telegram", "Permissions", "Personalisation", "Chat", "Logging"}
}

// ConfigKeysBySection returns visible config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		if !key.Hidden {
			result[key.Section] = append(result[key.Section], key)
		}
	}
	return result
}
