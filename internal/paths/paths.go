package paths

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the data directory. Used by tests and portable installs.
const EnvHome = "AVRORA_HOME"

// AppDataDir returns the directory holding settings, commands, the to-do
// list, chat history and the log. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support/Avrora
//   - Linux: $XDG_CONFIG_HOME/avrora or ~/.config/avrora
//   - Windows: %AppData%\Avrora
func AppDataDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		_ = os.MkdirAll(dir, 0700)
		return dir
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// CacheDir returns the directory for throwaway files such as synthesized
// speech. Falls back to the system temp dir.
func CacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	path := filepath.Join(base, appDirName)
	_ = os.MkdirAll(path, 0700)
	return path
}

// SettingsFilePath returns the flat key=value settings file.
func SettingsFilePath() string {
	return filepath.Join(AppDataDir(), "settings.conf")
}

// CommandsFilePath returns the custom commands file.
func CommandsFilePath() string {
	return filepath.Join(AppDataDir(), "commands.conf")
}

// TodoFilePath returns the to-do list file.
func TodoFilePath() string {
	return filepath.Join(AppDataDir(), "todoList.txt")
}

// ChatDBPath returns the sqlite database holding the chat history.
func ChatDBPath() string {
	return filepath.Join(AppDataDir(), "chat.db")
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "avrora.log")
}
