package styles

// TitleBarColors are the window title bar colors for focused and
// unfocused windows.
type TitleBarColors struct {
	Bg         string `json:"bg"`
	Fg         string `json:"fg"`
	InactiveBg string `json:"inactiveBg"`
	InactiveFg string `json:"inactiveFg"`
}

// Derived is the set of visual attributes computed from a theme and
// pushed into a window's overrides. It is always recomputable from the
// Definition alone.
type Derived struct {
	TabBar   TabBarPalette  `json:"tabBar"`
	Split    string         `json:"split"`
	TitleBar TitleBarColors `json:"titleBar"`
}

// Derive computes tab-bar, split-separator and title-bar colors for def.
// Colors set explicitly on the definition win; anything missing is
// derived from the background, foreground and palette.
func Derive(def Definition) Derived {
	bg := def.Background
	fg := def.Foreground
	dark := def.IsDark()

	barBg := Darken(bg, 0.03)
	muted := EnsureContrast(def.Brights[0], barBg, 3.0)
	hoverBg := shade(bg, 0.06, dark)

	tab := TabBarPalette{
		Background:       barBg,
		InactiveTabEdge:  shade(bg, 0.10, dark),
		ActiveTab:        TabColors{Bg: bg, Fg: EnsureContrast(fg, bg, 4.5)},
		InactiveTab:      TabColors{Bg: barBg, Fg: muted},
		InactiveTabHover: TabColors{Bg: hoverBg, Fg: EnsureContrast(fg, hoverBg, 4.5)},
	}
	tab.NewTab = tab.InactiveTab
	tab.NewTabHover = tab.InactiveTabHover
	mergeTabBar(&tab, def.TabBar)

	split := def.Split
	if split == "" {
		split = Blend(def.Brights[0], bg, 0.35)
	}

	return Derived{
		TabBar: tab,
		Split:  split,
		TitleBar: TitleBarColors{
			Bg:         tab.Background,
			Fg:         EnsureContrast(fg, tab.Background, 4.5),
			InactiveBg: tab.Background,
			InactiveFg: EnsureContrast(Blend(fg, tab.Background, 0.45), tab.Background, 2.5),
		},
	}
}

// mergeTabBar layers the non-empty fields of src onto dst.
func mergeTabBar(dst *TabBarPalette, src TabBarPalette) {
	setIf(&dst.Background, src.Background)
	setIf(&dst.InactiveTabEdge, src.InactiveTabEdge)
	mergeTab(&dst.ActiveTab, src.ActiveTab)
	mergeTab(&dst.InactiveTab, src.InactiveTab)
	mergeTab(&dst.InactiveTabHover, src.InactiveTabHover)
	mergeTab(&dst.NewTab, src.NewTab)
	mergeTab(&dst.NewTabHover, src.NewTabHover)
}

func mergeTab(dst *TabColors, src TabColors) {
	setIf(&dst.Bg, src.Bg)
	setIf(&dst.Fg, src.Fg)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
