package dispatchers

import (
	"github.com/chronois/avrora/internal/phrases"
)

// Table is the ordered list of builtin commands. The first rule with a
// matching trigger wins, so more specific phrases come first.
type Table struct {
	rules []Rule
}

// NewTable returns a table holding rules in the given order.
func NewTable(rules ...Rule) *Table {
	return &Table{rules: rules}
}

// Rules returns the rules in match order.
func (t *Table) Rules() []Rule {
	return t.rules
}

// Lookup returns the first rule whose trigger text starts with.
func (t *Table) Lookup(text string) (*Rule, string, bool) {
	for i := range t.rules {
		if trigger, ok := t.rules[i].Matches(text); ok {
			return &t.rules[i], trigger, true
		}
	}
	return nil, "", false
}

// Triggers returns every trigger phrase in match order.
func (t *Table) Triggers() []string {
	var out []string
	for _, r := range t.rules {
		out = append(out, r.Triggers...)
	}
	return out
}

// BuildTable returns the builtin commands in match order.
func BuildTable() *Table {
	return NewTable(
		Rule{Name: "search", Summary: "пошук у Google", Category: CategoryWeb, Triggers: phrases.Search, Handle: handleSearch},
		Rule{Name: "open", Summary: "відкрити сайт або програму", Category: CategoryApps, Triggers: phrases.Open, Handle: handleOpen},
		Rule{Name: "play-music", Summary: "увімкнути музику з налаштувань", Category: CategoryWeb, Triggers: phrases.PlayMusic, Handle: handlePlayMusic},
		Rule{Name: "play-song", Summary: "знайти і увімкнути пісню", Category: CategoryWeb, Triggers: phrases.PlaySong, Handle: handlePlaySong},
		Rule{Name: "restart-app", Summary: "перезапустити асистента", Category: CategoryConversation, Triggers: phrases.RestartApp, Handle: handleRestartApp},
		Rule{Name: "greeting", Summary: "привітання", Category: CategoryConversation, Triggers: phrases.Greeting, Handle: handleGreeting},
		Rule{Name: "who-are-you", Summary: "хто я така", Category: CategoryConversation, Triggers: phrases.WhoAreYou, Handle: handleWhoAreYou},
		Rule{Name: "goodbye", Summary: "завершити роботу", Category: CategoryConversation, Triggers: phrases.Goodbye, Handle: handleGoodbye},
		Rule{Name: "cpu", Summary: "навантаження на процесор", Category: CategorySystem, Triggers: phrases.CPULoad, Handle: handleCPU},
		Rule{Name: "ram", Summary: "використання пам'яті", Category: CategorySystem, Triggers: phrases.RAMLoad, Handle: handleRAM},
		Rule{Name: "time", Summary: "поточний час", Category: CategoryInfo, Triggers: phrases.WhatTime, Handle: handleTime},
		Rule{Name: "news", Summary: "останні новини", Category: CategoryInfo, Triggers: phrases.News, Handle: handleNews},
		Rule{Name: "thanks", Summary: "подяка", Category: CategoryConversation, Triggers: phrases.ThankYou, Handle: handleThanks},
		Rule{Name: "cursor", Summary: "посунути курсор вверх, вниз, вліво чи вправо", Category: CategoryInput, Triggers: phrases.MoveCursor, Handle: handleCursor},
		Rule{Name: "double-click", Summary: "подвійний клік", Category: CategoryInput, Triggers: phrases.DoubleClick, Handle: handleDoubleClick},
		Rule{Name: "click", Summary: "клік", Category: CategoryInput, Triggers: phrases.Click, Handle: handleClick},
		Rule{Name: "scroll", Summary: "прокрутити вверх чи вниз", Category: CategoryInput, Triggers: phrases.Scroll, Handle: handleScroll},
		Rule{Name: "reminder", Summary: "нагадай про <що> через <N> <секунд|хвилин|годин>", Category: CategoryPlanning, Triggers: phrases.Remind, Handle: handleReminder},
		Rule{Name: "alarm", Summary: "будильник на ГГ:ХХ", Category: CategoryPlanning, Triggers: phrases.SetAlarm, Handle: handleAlarm},
		Rule{Name: "weather", Summary: "погода у вашому місті", Category: CategoryInfo, Triggers: phrases.Weather, Handle: handleWeather},
		Rule{Name: "location", Summary: "де я знаходжусь", Category: CategoryInfo, Triggers: phrases.Location, Handle: handleLocation},
		Rule{Name: "calculate", Summary: "порахувати вираз", Category: CategoryInfo, Triggers: phrases.Calculate, Handle: handleCalculate},
		Rule{Name: "shutdown-pc", Summary: "вимкнути комп'ютер", Category: CategorySystem, Triggers: phrases.ShutdownPC, Handle: handleShutdownPC},
		Rule{Name: "restart-pc", Summary: "перезавантажити комп'ютер", Category: CategorySystem, Triggers: phrases.RestartPC, Handle: handleRestartPC},
		Rule{Name: "minimize", Summary: "згорнути вікно", Category: CategoryApps, Triggers: phrases.HideWindow, Handle: hotkeyHandler(phrases.HidingWindow, phrases.HotkeyMinimize, phrases.HotkeyMinimize)},
		Rule{Name: "maximize", Summary: "розгорнути вікно", Category: CategoryApps, Triggers: phrases.ShowWindow, Handle: hotkeyHandler(phrases.ShowingWindow, phrases.HotkeyMaximize)},
		Rule{Name: "show-desktop", Summary: "згорнути всі вікна", Category: CategoryApps, Triggers: phrases.HideAllWindows, Handle: hotkeyHandler(phrases.HidingAllWindows, phrases.HotkeyDesktop)},
		Rule{Name: "show-all", Summary: "розгорнути всі вікна", Category: CategoryApps, Triggers: phrases.ShowAllWindows, Handle: hotkeyHandler(phrases.ShowingAllWindows, phrases.HotkeyRestoreAll)},
		Rule{Name: "close-window", Summary: "закрити вікно", Category: CategoryApps, Triggers: phrases.CloseProgram, Handle: hotkeyHandler(phrases.ClosingWindow, phrases.HotkeyClose)},
		Rule{Name: "switch-window", Summary: "перейти до іншого вікна", Category: CategoryApps, Triggers: phrases.SwitchWindow, Handle: hotkeyHandler(phrases.SwitchingWindow, phrases.HotkeySwitchApp)},
		Rule{Name: "switch-tab", Summary: "наступна вкладка", Category: CategoryApps, Triggers: phrases.SwitchTab, Handle: hotkeyHandler(phrases.SwitchingTab, phrases.HotkeySwitchTab)},
		Rule{Name: "hide-self", Summary: "сховати асистента", Category: CategoryApps, Triggers: phrases.HideSelf, Handle: handleHideSelf},
		Rule{Name: "date", Summary: "сьогоднішня дата", Category: CategoryInfo, Triggers: phrases.Date, Handle: handleDate},
		Rule{Name: "volume", Summary: "гучність на 0-100", Category: CategorySystem, Triggers: phrases.SetVolume, Handle: handleVolume},
		Rule{Name: "todo-show", Summary: "показати список справ", Category: CategoryPlanning, Triggers: phrases.ShowTodo, Handle: handleTodoShow},
		Rule{Name: "todo-clear", Summary: "очистити список справ", Category: CategoryPlanning, Triggers: phrases.ClearTodo, Handle: handleTodoClear},
		Rule{Name: "todo-add", Summary: "додати справу", Category: CategoryPlanning, Triggers: phrases.AddTodo, Handle: handleTodoAdd},
		Rule{Name: "todo-remove", Summary: "видалити справу", Category: CategoryPlanning, Triggers: phrases.RemoveTodo, Handle: handleTodoRemove},
		Rule{Name: "pause", Summary: "пауза", Category: CategoryMedia, Triggers: phrases.PauseSong, Handle: keyHandler(phrases.Pausing, phrases.KeyPlayPause)},
		Rule{Name: "resume", Summary: "продовжити відтворення", Category: CategoryMedia, Triggers: phrases.ResumeSong, Handle: keyHandler(phrases.Resuming, phrases.KeyPlayPause)},
		Rule{Name: "next-track", Summary: "наступний трек", Category: CategoryMedia, Triggers: phrases.NextSong, Handle: hotkeyHandler(phrases.NextTrack, phrases.HotkeyNextSong)},
		Rule{Name: "previous-track", Summary: "попередній трек", Category: CategoryMedia, Triggers: phrases.PreviousSong, Handle: hotkeyHandler(phrases.PreviousTrack, phrases.HotkeyPrevSong)},
		Rule{Name: "write", Summary: "надрукувати текст", Category: CategoryInput, Triggers: phrases.WriteText, Handle: handleWrite},
		Rule{Name: "clear-chat", Summary: "очистити чат", Category: CategorySettings, Triggers: phrases.ClearChat, Handle: handleClearChat},
		Rule{Name: "name-me", Summary: "змінити ваше ім'я", Category: CategorySettings, Triggers: phrases.NameMe, Handle: handleNameMe},
		Rule{Name: "city", Summary: "запам'ятати ваше місто", Category: CategorySettings, Triggers: phrases.IAmInCity, Handle: handleCity},
		Rule{Name: "silent-on", Summary: "увімкнути тихий режим", Category: CategorySettings, Triggers: phrases.SilentModeOn, Handle: silentHandler(true)},
		Rule{Name: "silent-off", Summary: "вимкнути тихий режим", Category: CategorySettings, Triggers: phrases.SilentModeOff, Handle: silentHandler(false)},
		Rule{Name: "headlines", Summary: "кількість новин 1-10", Category: CategorySettings, Triggers: phrases.SetHeadlines, Handle: handleHeadlines},
		Rule{Name: "theme", Summary: "змінити тему", Category: CategorySettings, Triggers: phrases.ChangeTheme, Handle: handleTheme},
		Rule{Name: "accent", Summary: "змінити колір акценту", Category: CategorySettings, Triggers: phrases.ChangeAccent, Handle: handleAccent},
	)
}
