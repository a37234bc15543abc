package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chronois/avrora/internal/commands"
	"github.com/chronois/avrora/internal/config"
	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/paths"
	"github.com/chronois/avrora/internal/ui/style"
	"github.com/chronois/avrora/internal/usage"
)

func runSubcommand(args []string, stdout io.Writer) error {
	switch args[0] {
	case "cc":
		return customCommand(commands.NewStore(paths.CommandsFilePath(), nil), args[1:], stdout)
	case "config":
		return configCommand(config.NewProvider(paths.SettingsFilePath(), nil), args[1:], stdout)
	default:
		return usage.UnknownCommand(args[0])
	}
}

// customCommand manages user-defined commands: list, add and rm.
func customCommand(store domain.CommandStore, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list", "ls":
		entries, err := store.Entries()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			_, _ = fmt.Fprintln(stdout, style.Muted("немає користувацьких команд"))
			return nil
		}
		for _, e := range entries {
			_, _ = fmt.Fprintf(stdout, "%s = %s\n", style.Info(e.Pattern), e.Action)
		}
		return nil

	case "add", "set":
		if len(args) < 3 {
			return usage.MissingArgument("pattern and action")
		}
		if err := store.Set(args[1], strings.Join(args[2:], " ")); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(stdout, style.Success("збережено: ")+strings.ToLower(strings.TrimSpace(args[1])))
		return nil

	case "rm", "remove", "delete":
		if len(args) < 2 {
			return usage.MissingArgument("pattern")
		}
		removed, err := store.Delete(args[1])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("no custom command %q", args[1])
		}
		_, _ = fmt.Fprintln(stdout, style.Success("видалено: ")+args[1])
		return nil

	default:
		return usage.UnknownCommand("cc " + args[0])
	}
}

// configCommand reads and edits settings.conf.
func configCommand(cfg domain.ConfigProvider, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list", "ls":
		all, err := cfg.GetAll()
		if err != nil {
			return err
		}
		section := ""
		for _, key := range domain.VisibleConfigKeys() {
			if key.Section != section {
				section = key.Section
				_, _ = fmt.Fprintln(stdout, style.Header(section))
			}
			_, _ = fmt.Fprintf(stdout, "  %s=%s  %s\n", key.Name, all[key.Name], style.Muted(key.Description))
		}
		return nil

	case "get":
		if len(args) < 2 {
			return usage.MissingArgument("key")
		}
		if !domain.IsValidConfigKey(args[1]) {
			return usage.InvalidConfigKey(args[1])
		}
		v, _ := cfg.Get(args[1])
		_, _ = fmt.Fprintln(stdout, v)
		return nil

	case "set":
		if len(args) < 3 {
			return usage.MissingArgument("key and value")
		}
		return cfg.Set(args[1], strings.Join(args[2:], " "))

	case "unset":
		if len(args) < 2 {
			return usage.MissingArgument("key")
		}
		return cfg.Unset(args[1])

	default:
		return usage.UnknownCommand("config " + args[0])
	}
}
