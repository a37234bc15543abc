package phrases

// Trigger phrases. A command matches when the text after the wake word
// starts with one of them.
var (
	Greeting       = []string{"вітаю", "startup."}
	WhoAreYou      = []string{"хто ти"}
	Goodbye        = []string{"до побачення"}
	RestartApp     = []string{"перезавантаження"}
	Search         = []string{"знайди "}
	Open           = []string{"відкрий "}
	PlayMusic      = []string{"включи музику", "ввімкни музику", "увімкни музику"}
	PlaySong       = []string{"включи пісню", "ввімкни пісню", "увімкни пісню"}
	CPULoad        = []string{"навантаження на процесор"}
	RAMLoad        = []string{"навантаження на оперативну пам'ять"}
	WhatTime       = []string{"котра година"}
	News           = []string{"які новини", "покажи новини"}
	ThankYou       = []string{"дякую"}
	MoveCursor     = []string{"курсор "}
	DoubleClick    = []string{"натисни 2 рази", "натисни два рази"}
	Click          = []string{"натисни"}
	Scroll         = []string{"прокрути "}
	Remind         = []string{"нагадай про"}
	SetAlarm       = []string{"будильник на "}
	Weather        = []string{"яка погода", "погода", "прогноз погоди"}
	Location       = []string{"де я", "місто"}
	Calculate      = []string{"порахуй "}
	ShutdownPC     = []string{"вимкни пк"}
	RestartPC      = []string{"перезапусти пк"}
	HideWindow     = []string{"сховай вікно", "згорни вікно", "сховай програму", "згорни програму"}
	ShowWindow     = []string{"покажи вікно", "розгорнеш вікно", "розгорни вікно", "покажи програму", "розгорнеш програму", "розгорни програму"}
	HideAllWindows = []string{"сховай всі вікна", "покажи робочий стіл", "згорни всі вікна", "сховай всі програми", "згорни всі програми"}
	ShowAllWindows = []string{"покажи всі вікна", "розгорнеш всі вікна", "розгорни всі вікна", "покажи всі програми", "розгорнеш всі програми", "розгорни всі програми"}
	CloseProgram   = []string{"закрий програму", "закрий вікно"}
	SwitchWindow   = []string{"зміни вікно", "зміни програму"}
	SwitchTab      = []string{"зміни вкладку"}
	HideSelf       = []string{"сховаєшся"}
	Date           = []string{"дата"}
	SetVolume      = []string{"звук на ", "гучність на "}
	ShowTodo       = []string{"що в мене в списку справ", "що в списку справ", "список справ"}
	ClearTodo      = []string{"очисти список справ", "очистити список справ"}
	AddTodo        = []string{"додай до списку справ "}
	RemoveTodo     = []string{"видали з списку справ "}
	PauseSong      = []string{"пауза", "пауза трека", "пауза пісні", "призупини трек", "призупини пісню", "призупини", "постав на паузу"}
	ResumeSong     = []string{"віднови пісню", "віднови трек", "продовжити трек", "продовжи пісню", "зніми з паузи"}
	NextSong       = []string{"наступна пісня", "наступний трек", "переключи трек", "переключи пісню"}
	PreviousSong   = []string{"попередня пісня", "попередній трек"}
	WriteText      = []string{"напиши "}
	ClearChat      = []string{"очисти чат", "очистити чат"}
	NameMe         = []string{"називай мене "}
	IAmInCity      = []string{"я в місті "}
	SilentModeOn   = []string{"увімкни тихий режим", "ввімкни тихий режим"}
	SilentModeOff  = []string{"вимкни тихий режим"}
	SetHeadlines   = []string{"кількість новин "}
	ChangeTheme    = []string{"зміни тему"}
	ChangeAccent   = []string{"зміни колір"}
)

// Parameters inside commands.
const (
	DirectionUp    = "вверх"
	DirectionDown  = "вниз"
	DirectionLeft  = "вліво"
	DirectionRight = "вправо"

	ReminderSeparator = "через"
)

var (
	UnitsSeconds = []string{"секунд", "секунда", "секунди"}
	UnitsMinutes = []string{"хвилин", "хвилина", "хвилини"}
	UnitsHours   = []string{"годин", "година", "години"}

	CalcPlus  = []string{"плюс", "додати"}
	CalcMinus = []string{"мінус", "відняти"}
	CalcMul   = []string{"помножити на", "помножити"}
	CalcDiv   = []string{"ділення на", "ділення", "поділити на", "поділити"}
)

// Targets of "відкрий ...".
var (
	OpenYouTube  = []string{"youtube", "ютуб"}
	OpenTelegram = []string{"telegram", "телеграм"}
	OpenGemini   = []string{"gemini", "джеміні"}
	OpenChatGPT  = []string{"chat gpt", "chatgpt", "чат гпт", "чат gpt"}
	OpenMusic    = []string{"музику"}
)

// Web addresses.
const (
	YouTubeURL      = "https://www.youtube.com"
	TelegramWebURL  = "https://web.telegram.org/k/"
	GoogleSearchURL = "https://www.google.com.ua/search?q="
	GeminiURL       = "https://gemini.google.com/?hl=uk"
	ChatGPTURL      = "https://chatgpt.com"
	NewsURL         = "https://www.pravda.com.ua/news/"
	NewsHeaderClass = "article_header"
)

// Hotkeys.
var (
	HotkeyMinimize   = []string{"super", "Down"}
	HotkeyMaximize   = []string{"super", "Up"}
	HotkeyDesktop    = []string{"super", "m"}
	HotkeyRestoreAll = []string{"super", "shift", "m"}
	HotkeyClose      = []string{"alt", "F4"}
	HotkeySwitchApp  = []string{"alt", "Tab"}
	HotkeySwitchTab  = []string{"ctrl", "Tab"}
	HotkeyNextSong   = []string{"shift", "n"}
	HotkeyPrevSong   = []string{"shift", "p"}
	KeyPlayPause     = "space"
	KeyEnter         = "Return"
)
