package styles

// Built-in theme ids.
const (
	ArbDark         = "arb-dark"
	ArbLight        = "arb-light"
	CatppuccinMocha = "catppuccin-mocha"
	CatppuccinLatte = "catppuccin-latte"
	DraculaPlus     = "dracula-plus"
	TokyoNight      = "tokyo-night"
	TokyoNightDay   = "tokyo-night-day"
	GruvboxDark     = "gruvbox-dark"
)

// Built-in themes. New themes are appended to Builtins; ids already
// persisted by users must keep resolving, so entries are never removed.
var (
	// ArbDarkTheme is the house dark theme and the default for dark mode.
	ArbDarkTheme = Definition{
		ID:           ArbDark,
		DisplayName:  "Arb Dark",
		Background:   "#15141b",
		Foreground:   "#edecee",
		CursorBg:     "#a277ff",
		CursorFg:     "#15141b",
		CursorBorder: "#a277ff",
		SelectionBg:  "#29263c",
		SelectionFg:  "#edecee",
		ANSI:         [8]string{"#110f18", "#ff6767", "#61ffca", "#ffca85", "#a277ff", "#f694ff", "#61ffca", "#edecee"},
		Brights:      [8]string{"#4d4d4d", "#ff6767", "#61ffca", "#ffca85", "#a277ff", "#f694ff", "#61ffca", "#edecee"},
		TabBar: TabBarPalette{
			Background:       "#15141b",
			InactiveTabEdge:  "#15141b",
			ActiveTab:        TabColors{Bg: "#29263c", Fg: "#edecee"},
			InactiveTab:      TabColors{Bg: "#15141b", Fg: "#6d6d6d"},
			InactiveTabHover: TabColors{Bg: "#1f1d28", Fg: "#edecee"},
			NewTab:           TabColors{Bg: "#15141b", Fg: "#6d6d6d"},
			NewTabHover:      TabColors{Bg: "#1f1d28", Fg: "#edecee"},
		},
		Split: "#3b3948",
	}

	ArbLightTheme = Definition{
		ID:           ArbLight,
		DisplayName:  "Arb Light",
		Background:   "#fafafa",
		Foreground:   "#2e2c3a",
		CursorBg:     "#6e4fd6",
		CursorFg:     "#fafafa",
		CursorBorder: "#6e4fd6",
		SelectionBg:  "#e4def8",
		SelectionFg:  "#2e2c3a",
		ANSI:         [8]string{"#2e2c3a", "#d2394a", "#1f9d75", "#b7791f", "#6e4fd6", "#b74fc2", "#1f8a9d", "#d4d4dc"},
		Brights:      [8]string{"#8a8896", "#e5484d", "#2bb58a", "#cf8e2b", "#8466e8", "#cc62d6", "#2ba1b5", "#f0f0f4"},
	}

	CatppuccinMochaTheme = Definition{
		ID:           CatppuccinMocha,
		DisplayName:  "Catppuccin Mocha",
		Background:   "#1e1e2e",
		Foreground:   "#cdd6f4",
		CursorBg:     "#f5e0dc",
		CursorFg:     "#11111b",
		CursorBorder: "#f5e0dc",
		SelectionBg:  "#585b70",
		SelectionFg:  "#cdd6f4",
		ANSI:         [8]string{"#45475a", "#f38ba8", "#a6e3a1", "#f9e2af", "#89b4fa", "#f5c2e7", "#94e2d5", "#bac2de"},
		Brights:      [8]string{"#585b70", "#f38ba8", "#a6e3a1", "#f9e2af", "#89b4fa", "#f5c2e7", "#94e2d5", "#a6adc8"},
		TabBar: TabBarPalette{
			Background:  "#11111b",
			ActiveTab:   TabColors{Bg: "#cba6f7", Fg: "#11111b"},
			InactiveTab: TabColors{Bg: "#181825", Fg: "#cdd6f4"},
		},
	}

	CatppuccinLatteTheme = Definition{
		ID:           CatppuccinLatte,
		DisplayName:  "Catppuccin Latte",
		Background:   "#eff1f5",
		Foreground:   "#4c4f69",
		CursorBg:     "#dc8a78",
		CursorFg:     "#eff1f5",
		CursorBorder: "#dc8a78",
		SelectionBg:  "#acb0be",
		SelectionFg:  "#4c4f69",
		ANSI:         [8]string{"#5c5f77", "#d20f39", "#40a02b", "#df8e1d", "#1e66f5", "#ea76cb", "#179299", "#acb0be"},
		Brights:      [8]string{"#6c6f85", "#d20f39", "#40a02b", "#df8e1d", "#1e66f5", "#ea76cb", "#179299", "#bcc0cc"},
		TabBar: TabBarPalette{
			Background:  "#dce0e8",
			ActiveTab:   TabColors{Bg: "#8839ef", Fg: "#dce0e8"},
			InactiveTab: TabColors{Bg: "#e6e9ef", Fg: "#4c4f69"},
		},
	}

	DraculaPlusTheme = Definition{
		ID:           DraculaPlus,
		DisplayName:  "Dracula+",
		Background:   "#212121",
		Foreground:   "#f8f8f2",
		CursorBg:     "#eceff4",
		CursorFg:     "#282828",
		CursorBorder: "#eceff4",
		SelectionBg:  "#f8f8f2",
		SelectionFg:  "#545454",
		ANSI:         [8]string{"#21222c", "#ff5555", "#50fa7b", "#ffcb6b", "#82aaff", "#c792ea", "#8be9fd", "#f8f8f2"},
		Brights:      [8]string{"#545454", "#ff6e6e", "#69ff94", "#ffcb6b", "#d6acff", "#ff92df", "#a4ffff", "#f8f8f2"},
	}

	TokyoNightTheme = Definition{
		ID:           TokyoNight,
		DisplayName:  "Tokyo Night",
		Background:   "#1a1b26",
		Foreground:   "#c0caf5",
		CursorBg:     "#c0caf5",
		CursorFg:     "#1a1b26",
		CursorBorder: "#c0caf5",
		SelectionBg:  "#283457",
		SelectionFg:  "#c0caf5",
		ANSI:         [8]string{"#15161e", "#f7768e", "#9ece6a", "#e0af68", "#7aa2f7", "#bb9af7", "#7dcfff", "#a9b1d6"},
		Brights:      [8]string{"#414868", "#f7768e", "#9ece6a", "#e0af68", "#7aa2f7", "#bb9af7", "#7dcfff", "#c0caf5"},
		TabBar: TabBarPalette{
			Background:       "#16161e",
			InactiveTabEdge:  "#16161e",
			ActiveTab:        TabColors{Bg: "#7aa2f7", Fg: "#16161e"},
			InactiveTab:      TabColors{Bg: "#292e42", Fg: "#545c7e"},
			InactiveTabHover: TabColors{Bg: "#292e42", Fg: "#7aa2f7"},
			NewTab:           TabColors{Bg: "#16161e", Fg: "#7aa2f7"},
			NewTabHover:      TabColors{Bg: "#16161e", Fg: "#7aa2f7"},
		},
	}

	TokyoNightDayTheme = Definition{
		ID:           TokyoNightDay,
		DisplayName:  "Tokyo Night Day",
		Background:   "#e1e2e7",
		Foreground:   "#3760bf",
		CursorBg:     "#3760bf",
		CursorFg:     "#e1e2e7",
		CursorBorder: "#3760bf",
		SelectionBg:  "#99a7df",
		SelectionFg:  "#3760bf",
		ANSI:         [8]string{"#e9e9ed", "#f52a65", "#587539", "#8c6c3e", "#2e7de9", "#9854f1", "#007197", "#6172b0"},
		Brights:      [8]string{"#a1a6c5", "#f52a65", "#587539", "#8c6c3e", "#2e7de9", "#9854f1", "#007197", "#3760bf"},
	}

	GruvboxDarkTheme = Definition{
		ID:           GruvboxDark,
		DisplayName:  "Gruvbox Dark",
		Background:   "#282828",
		Foreground:   "#ebdbb2",
		CursorBg:     "#ebdbb2",
		CursorFg:     "#282828",
		CursorBorder: "#ebdbb2",
		SelectionBg:  "#504945",
		SelectionFg:  "#ebdbb2",
		ANSI:         [8]string{"#282828", "#cc241d", "#98971a", "#d79921", "#458588", "#b16286", "#689d6a", "#a89984"},
		Brights:      [8]string{"#928374", "#fb4934", "#b8bb26", "#fabd2f", "#83a598", "#d3869b", "#8ec07c", "#ebdbb2"},
	}
)

// Builtins returns the built-in definitions in display order.
func Builtins() []Definition {
	return []Definition{
		ArbDarkTheme,
		ArbLightTheme,
		CatppuccinMochaTheme,
		CatppuccinLatteTheme,
		DraculaPlusTheme,
		TokyoNightTheme,
		TokyoNightDayTheme,
		GruvboxDarkTheme,
	}
}

// NewBuiltinRegistry returns a registry holding the built-in themes.
func NewBuiltinRegistry() *Registry {
	r, err := NewRegistry(Builtins()...)
	if err != nil {
		// Builtins are covered by tests; a failure here is a programming error.
		panic(err)
	}
	return r
}

// Pair associates a theme with each appearance. It is the fallback when no
// override names a theme.
type Pair struct {
	Dark  string `json:"dark"`
	Light string `json:"light"`
}

// DefaultPair is the pair used when the config file names none.
func DefaultPair() Pair {
	return Pair{Dark: ArbDark, Light: CatppuccinLatte}
}
