package phrases

// AppFullName is what the assistant's name stands for.
const AppFullName = "Advanced Voice-Activated Robot for Optimized Reliable Assistance"

const (
	Present              Key = "present"
	UnknownAfterWakeWord Key = "unknown_after_wake_word"
	Clarify              Key = "clarify"
	WhoAmI               Key = "who_am_i"
	RestartingApp        Key = "restarting_app"
	Greet                Key = "greet"
	Bye                  Key = "bye"
	Searching            Key = "searching"
	Opening              Key = "opening"
	SearchingProgram     Key = "searching_program"
	OpeningProgram       Key = "opening_program"
	ProgramFailed        Key = "program_failed"
	TurningOnMusic       Key = "turning_on_music"
	WhichSong            Key = "which_song"
	TurningOnSong        Key = "turning_on_song"
	SongNotFound         Key = "song_not_found"
	MeasuringCPU         Key = "measuring_cpu"
	CPUResult            Key = "cpu_result"
	RAMResult            Key = "ram_result"
	StatsFailed          Key = "stats_failed"
	CurrentTime          Key = "current_time"
	SearchingNews        Key = "searching_news"
	LatestNews           Key = "latest_news"
	NewsSourceSpoken     Key = "news_source_spoken"
	NewsSourceChat       Key = "news_source_chat"
	NewsEmpty            Key = "news_empty"
	NewsFailed           Key = "news_failed"
	YouAreWelcome        Key = "you_are_welcome"
	MovingCursor         Key = "moving_cursor"
	UnknownDirection     Key = "unknown_direction"
	Clicking             Key = "clicking"
	Scrolling            Key = "scrolling"
	ReminderSet          Key = "reminder_set"
	ReminderFired        Key = "reminder_fired"
	AlarmSet             Key = "alarm_set"
	AlarmFired           Key = "alarm_fired"
	AlarmBadFormat       Key = "alarm_bad_format"
	AlarmPlaybackFailed  Key = "alarm_playback_failed"
	LocationResult       Key = "location_result"
	LocationFailed       Key = "location_failed"
	WeatherNoCity        Key = "weather_no_city"
	WeatherCurrent       Key = "weather_current"
	WeatherFailed        Key = "weather_failed"
	CalcInvalid          Key = "calc_invalid"
	CalcResult           Key = "calc_result"
	CalcFailed           Key = "calc_failed"
	ShuttingDown         Key = "shutting_down"
	RestartingPC         Key = "restarting_pc"
	PowerDenied          Key = "power_denied"
	PowerShutdownWord    Key = "power_shutdown_word"
	PowerRestartWord     Key = "power_restart_word"
	HidingWindow         Key = "hiding_window"
	ShowingWindow        Key = "showing_window"
	HidingAllWindows     Key = "hiding_all_windows"
	ShowingAllWindows    Key = "showing_all_windows"
	ClosingWindow        Key = "closing_window"
	SwitchingWindow      Key = "switching_window"
	SwitchingTab         Key = "switching_tab"
	HidingSelf           Key = "hiding_self"
	CurrentDate          Key = "current_date"
	SettingVolume        Key = "setting_volume"
	VolumeFailed         Key = "volume_failed"
	TodoShow             Key = "todo_show"
	TodoEmpty            Key = "todo_empty"
	TodoAdded            Key = "todo_added"
	TodoExists           Key = "todo_exists"
	TodoRemoved          Key = "todo_removed"
	TodoNotFound         Key = "todo_not_found"
	TodoCleared          Key = "todo_cleared"
	TodoFailed           Key = "todo_failed"
	Pausing              Key = "pausing"
	Resuming             Key = "resuming"
	NextTrack            Key = "next_track"
	PreviousTrack        Key = "previous_track"
	Written              Key = "written"
	NothingToWrite       Key = "nothing_to_write"
	ActionFailed         Key = "action_failed"
	CustomExecuting      Key = "custom_executing"
	CustomError          Key = "custom_error"
	UnknownCommand       Key = "unknown_command"
	DidYouMean           Key = "did_you_mean"
	NewName              Key = "new_name"
	Remembered           Key = "remembered"
	SettingsChanged      Key = "settings_changed"
	SettingsFailed       Key = "settings_failed"
	HeadlinesOutOfRange  Key = "headlines_out_of_range"
	Fatal                Key = "fatal"
)

var replies = map[Key]string{
	Present:              "Я тут, %s",
	UnknownAfterWakeWord: "Не розумію команду після кодового слова, %s",
	Clarify:              "Не розумію, можете уточнити?",
	WhoAmI:               "%s, я голосовий помічник AVRORA що розшифровується як " + AppFullName + ", чим я можу вам допомогти?",
	RestartingApp:        "Перезавантажуюся, %s",
	Greet:                "Вітаю, %s, все готово до роботи",
	Bye:                  "До побачення, %s",
	Searching:            "Шукаю, %s",
	Opening:              "відкриваю, %s",
	SearchingProgram:     "Шукаю вашу програму, %s",
	OpeningProgram:       "Відкриваю %s",
	ProgramFailed:        "Не вдалося запустити %s",
	TurningOnMusic:       "Вмикаю, %s",
	WhichSong:            "Яку пісню увімкнути?",
	TurningOnSong:        "Вмикаю %s на YouTube Music, %s",
	SongNotFound:         "На жаль, не вдалося знайти пісню %s.",
	MeasuringCPU:         "заміряю %s",
	CPUResult:            "%s%% %s",
	RAMResult:            "Використано %s%%. всього пам'яті %.2f гігабайти. доступно пам'яті %.2f гігабайти",
	StatsFailed:          "Вибачте, %s, не вдалося отримати дані про систему.",
	CurrentTime:          "%s, зараз %s",
	SearchingNews:        "Шукаю новини, %s",
	LatestNews:           "Ось останні %d новин: \n",
	NewsSourceSpoken:     " Новини отримано з ресурсу: посилання видалено.",
	NewsSourceChat:       "\nНовини отримано з ресурсу: %s",
	NewsEmpty:            "Вибачте, %s, не вдалося отримати новини.",
	NewsFailed:           "Вибачте, %s, виникла помилка при отриманні новин.",
	YouAreWelcome:        "Завжди до ваших послуг, %s",
	MovingCursor:         "Пересуваю, %s",
	UnknownDirection:     "Не можу зрозуміти напрямок, повторіть будь ласка, %s",
	Clicking:             "Натискаю, %s",
	Scrolling:            "Прогортаю, %s",
	ReminderSet:          "Добре, нагадаю про %s через %d %s, %s",
	ReminderFired:        "Нагадую, %s: %s",
	AlarmSet:             "Будильник встановлено на %s, %s.",
	AlarmFired:           "Будильник! %s, зараз %s.",
	AlarmBadFormat:       "Неправильний формат часу. Будь ласка, вкажіть час у форматі ГГ:ХХ, %s. Помилка: %s",
	AlarmPlaybackFailed:  "Будильник спрацював, але виникла помилка відтворення звуку: %s",
	LocationResult:       "Ви знаходитесь у місті %s, %s.",
	LocationFailed:       "Не вдалося визначити ваше місцезнаходження.",
	WeatherNoCity:        "Не вдалося визначити ваше місто. Спробуйте вказати його в налаштуваннях.",
	WeatherCurrent:       "Погода в місті %s зараз така: Температура %d градусів Цельсія, а відчувається як %d. На небі %s.",
	WeatherFailed:        "Вибачте, не вдалося отримати дані про погоду.",
	CalcInvalid:          "Вибачте, %s, я не можу обчислити цей вираз. Будь ласка, використовуйте лише числа та основні операції.",
	CalcResult:           "Результат: %s",
	CalcFailed:           "Не можу порахувати. Перевірте вираз. Помилка: %s",
	ShuttingDown:         "Вимкнення пк, %s",
	RestartingPC:         "Перезавантаження пк, %s",
	PowerDenied:          "Вибачте, але немає доступу для %s пк, %s",
	PowerShutdownWord:    "вимкнення",
	PowerRestartWord:     "перезавантаження",
	HidingWindow:         "Згортаю, %s",
	ShowingWindow:        "Розгортаю, %s",
	HidingAllWindows:     "Згортаю всі вікна, %s",
	ShowingAllWindows:    "Розгортаю всі вікна, %s",
	ClosingWindow:        "Закриваю вікно, %s",
	SwitchingWindow:      "Перемикаю, %s",
	SwitchingTab:         "Змінюю вкладку, %s",
	HidingSelf:           "Звісно, %s",
	CurrentDate:          "%s, сьогодні %s %d.%d.%d",
	SettingVolume:        "Змінюю звук, %s",
	VolumeFailed:         "Вибачте, %s, не вдалося змінити гучність.",
	TodoShow:             "Ось ваш список справ, %s:\n%s",
	TodoEmpty:            "У вас немає справ, %s",
	TodoAdded:            "Додаю %s до списку справ, %s",
	TodoExists:           "Не вдалося додати до списку справ, пункт %s уже існує",
	TodoRemoved:          "Видаляю з списку справ, %s",
	TodoNotFound:         "Не вдалося видалити з списку справ, %s, такого пункту не існує",
	TodoCleared:          "Очищую список справ, %s",
	TodoFailed:           "Вибачте, %s, не вдалося прочитати список справ.",
	Pausing:              "Призупиняю, %s",
	Resuming:             "Відновлюю, %s",
	NextTrack:            "Наступний трек, %s",
	PreviousTrack:        "Попередній трек, %s",
	Written:              "Написала, %s",
	NothingToWrite:       "Що саме написати, %s?",
	ActionFailed:         "Вибачте, %s, не вдалося виконати дію.",
	CustomExecuting:      "Виконую, %s",
	CustomError:          "Помилка з користувацькою командою, %s",
	UnknownCommand:       "Не розумію команду '%s', %s",
	DidYouMean:           "Можливо, ви мали на увазі: %s",
	NewName:              "Добре, тепер я називатиму вас %s",
	Remembered:           "Запам'ятала, %s",
	SettingsChanged:      "Налаштування змінено, %s",
	SettingsFailed:       "Вибачте, %s, не вдалося зберегти налаштування.",
	HeadlinesOutOfRange:  "Кількість новин має бути від 1 до 10, %s",
	Fatal:                "Сталася помилка: %s",
}

// Affirmatives are the generic acknowledgements used for the standard status.
var Affirmatives = []string{"Секунду, %s", "Зараз, %s", "Звісно, %s"}
