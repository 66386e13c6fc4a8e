// Package theme holds the named visual presets applied to every generated
// page. Themes are plain data: colors, fonts, spacing and block chrome.
// Lookup never fails, unknown ids fall back to the minimal theme so a stale
// template id in saved settings cannot break an export.
package theme

// HeadingStyle describes one heading level.
type HeadingStyle struct {
	Size         string
	Weight       int
	LineHeight   string
	MarginBottom string
}

// TextStyle describes running text.
type TextStyle struct {
	Size         string
	LineHeight   string
	MarginBottom string
}

// BlockPalette colors one semantic callout block (tip, warning and so on).
type BlockPalette struct {
	Background string
	Border     string
	Text       string
	Icon       string
}

// CoverPalette colors the cover page. BackgroundGradient always has two
// stops.
type CoverPalette struct {
	Background         string
	BackgroundGradient [2]string
	Text               string
	TextSecondary      string
}

// Colors is the full palette of a theme.
type Colors struct {
	Text          string
	TextSecondary string
	TextMuted     string
	Background    string
	Surface       string
	SurfaceAlt    string
	Accent        string
	AccentStrong  string
	AccentSoft    string
	AccentLight   string
	Border        string
	BorderLight   string

	InfoBlock    BlockPalette
	WarningBlock BlockPalette
	TipBlock     BlockPalette
	DangerBlock  BlockPalette

	Cover CoverPalette
}

// Typography bundles the font stacks and sizing scale.
type Typography struct {
	HeadingFont string
	BodyFont    string
	MonoFont    string

	H1 HeadingStyle
	H2 HeadingStyle
	H3 HeadingStyle
	H4 HeadingStyle

	Body    TextStyle
	Small   TextStyle
	Caption TextStyle
}

// Spacing holds the page and block spacing values, already unit-suffixed.
type Spacing struct {
	PagePadding     string
	SectionSpacing  string
	BlockSpacing    string
	ElementSpacing  string
	ContentMaxWidth string
	ColumnGap       string
}

// Blocks is the chrome shared by content blocks.
type Blocks struct {
	BorderRadius string
	Shadow       string
	BorderWidth  string
}

// Theme is one immutable preset. Instances in the registry are never
// mutated; Get hands out copies.
type Theme struct {
	Name        string
	DisplayName string
	Description string
	Colors      Colors
	Typography  Typography
	Spacing     Spacing
	Blocks      Blocks
}

// DefaultName is the fallback preset id.
const DefaultName = "minimal"

var registry = map[string]Theme{
	"minimal":     minimalTheme,
	"classic":     classicTheme,
	"modern":      modernTheme,
	"sepia":       sepiaTheme,
	"black-white": blackWhiteTheme,
	"newspaper":   newspaperTheme,
}

// Get returns the preset registered under id, or the minimal theme when the
// id is unknown or empty.
func Get(id string) Theme {
	if t, ok := registry[id]; ok {
		return t
	}
	return registry[DefaultName]
}

// Names returns every registered preset id in a fixed order.
func Names() []string {
	return []string{"minimal", "classic", "modern", "sepia", "black-white", "newspaper"}
}

func defaultTypography() Typography {
	return Typography{
		HeadingFont: "'Inter', 'Helvetica Neue', Arial, sans-serif",
		BodyFont:    "'Inter', 'Helvetica Neue', Arial, sans-serif",
		MonoFont:    "'JetBrains Mono', 'Courier New', monospace",
		H1:          HeadingStyle{Size: "32pt", Weight: 700, LineHeight: "1.2", MarginBottom: "16pt"},
		H2:          HeadingStyle{Size: "24pt", Weight: 600, LineHeight: "1.25", MarginBottom: "12pt"},
		H3:          HeadingStyle{Size: "18pt", Weight: 600, LineHeight: "1.3", MarginBottom: "10pt"},
		H4:          HeadingStyle{Size: "14pt", Weight: 600, LineHeight: "1.35", MarginBottom: "8pt"},
		Body:        TextStyle{Size: "11pt", LineHeight: "1.6", MarginBottom: "8pt"},
		Small:       TextStyle{Size: "9pt", LineHeight: "1.5"},
		Caption:     TextStyle{Size: "8pt", LineHeight: "1.4"},
	}
}

func defaultSpacing() Spacing {
	return Spacing{
		PagePadding:     "25mm",
		SectionSpacing:  "24pt",
		BlockSpacing:    "16pt",
		ElementSpacing:  "8pt",
		ContentMaxWidth: "160mm",
		ColumnGap:       "18pt",
	}
}

var minimalTheme = Theme{
	Name:        "minimal",
	DisplayName: "Минимализм",
	Description: "Чистая светлая тема с большим количеством воздуха",
	Colors: Colors{
		Text:          "#1a1a1a",
		TextSecondary: "#4a4a4a",
		TextMuted:     "#8a8a8a",
		Background:    "#ffffff",
		Surface:       "#fafafa",
		SurfaceAlt:    "#f2f2f2",
		Accent:        "#2563eb",
		AccentStrong:  "#1d4ed8",
		AccentSoft:    "#dbeafe",
		AccentLight:   "#eff6ff",
		Border:        "#e0e0e0",
		BorderLight:   "#f0f0f0",
		InfoBlock:     BlockPalette{Background: "#eff6ff", Border: "#2563eb", Text: "#1e3a8a", Icon: "#2563eb"},
		WarningBlock:  BlockPalette{Background: "#fffbeb", Border: "#f59e0b", Text: "#78350f", Icon: "#f59e0b"},
		TipBlock:      BlockPalette{Background: "#f0fdf4", Border: "#22c55e", Text: "#14532d", Icon: "#22c55e"},
		DangerBlock:   BlockPalette{Background: "#fef2f2", Border: "#ef4444", Text: "#7f1d1d", Icon: "#ef4444"},
		Cover: CoverPalette{
			Background:         "#1e3a8a",
			BackgroundGradient: [2]string{"#1e3a8a", "#2563eb"},
			Text:               "#ffffff",
			TextSecondary:      "#dbeafe",
		},
	},
	Typography: defaultTypography(),
	Spacing:    defaultSpacing(),
	Blocks:     Blocks{BorderRadius: "6px", Shadow: "0 1px 3px rgba(0,0,0,0.08)", BorderWidth: "1px"},
}

var classicTheme = Theme{
	Name:        "classic",
	DisplayName: "Классика",
	Description: "Традиционная книжная верстка с засечками",
	Colors: Colors{
		Text:          "#2b2117",
		TextSecondary: "#55493c",
		TextMuted:     "#8c8070",
		Background:    "#fffdf8",
		Surface:       "#faf6ec",
		SurfaceAlt:    "#f3ecdc",
		Accent:        "#8b5e34",
		AccentStrong:  "#6f4a27",
		AccentSoft:    "#ead9c4",
		AccentLight:   "#f6eee2",
		Border:        "#d9cdb8",
		BorderLight:   "#ece3d2",
		InfoBlock:     BlockPalette{Background: "#f6eee2", Border: "#8b5e34", Text: "#4a3b28", Icon: "#8b5e34"},
		WarningBlock:  BlockPalette{Background: "#fbf3dd", Border: "#b8860b", Text: "#5c4308", Icon: "#b8860b"},
		TipBlock:      BlockPalette{Background: "#eef3e6", Border: "#6b8e23", Text: "#33461a", Icon: "#6b8e23"},
		DangerBlock:   BlockPalette{Background: "#f9e8e4", Border: "#a0402e", Text: "#5c2418", Icon: "#a0402e"},
		Cover: CoverPalette{
			Background:         "#3e2f1f",
			BackgroundGradient: [2]string{"#3e2f1f", "#6f4a27"},
			Text:               "#fffdf8",
			TextSecondary:      "#ead9c4",
		},
	},
	Typography: Typography{
		HeadingFont: "'Playfair Display', 'Times New Roman', serif",
		BodyFont:    "'PT Serif', Georgia, serif",
		MonoFont:    "'Courier New', monospace",
		H1:          HeadingStyle{Size: "34pt", Weight: 700, LineHeight: "1.2", MarginBottom: "18pt"},
		H2:          HeadingStyle{Size: "24pt", Weight: 700, LineHeight: "1.25", MarginBottom: "12pt"},
		H3:          HeadingStyle{Size: "18pt", Weight: 700, LineHeight: "1.3", MarginBottom: "10pt"},
		H4:          HeadingStyle{Size: "14pt", Weight: 700, LineHeight: "1.35", MarginBottom: "8pt"},
		Body:        TextStyle{Size: "11.5pt", LineHeight: "1.7", MarginBottom: "9pt"},
		Small:       TextStyle{Size: "9.5pt", LineHeight: "1.5"},
		Caption:     TextStyle{Size: "8.5pt", LineHeight: "1.4"},
	},
	Spacing: Spacing{
		PagePadding:     "28mm",
		SectionSpacing:  "26pt",
		BlockSpacing:    "18pt",
		ElementSpacing:  "9pt",
		ContentMaxWidth: "150mm",
		ColumnGap:       "20pt",
	},
	Blocks: Blocks{BorderRadius: "3px", Shadow: "none", BorderWidth: "1px"},
}

var modernTheme = Theme{
	Name:        "modern",
	DisplayName: "Модерн",
	Description: "Контрастная тема с крупной типографикой",
	Colors: Colors{
		Text:          "#111827",
		TextSecondary: "#374151",
		TextMuted:     "#9ca3af",
		Background:    "#ffffff",
		Surface:       "#f9fafb",
		SurfaceAlt:    "#f3f4f6",
		Accent:        "#7c3aed",
		AccentStrong:  "#6d28d9",
		AccentSoft:    "#ede9fe",
		AccentLight:   "#f5f3ff",
		Border:        "#e5e7eb",
		BorderLight:   "#f3f4f6",
		InfoBlock:     BlockPalette{Background: "#f5f3ff", Border: "#7c3aed", Text: "#4c1d95", Icon: "#7c3aed"},
		WarningBlock:  BlockPalette{Background: "#fff7ed", Border: "#ea580c", Text: "#7c2d12", Icon: "#ea580c"},
		TipBlock:      BlockPalette{Background: "#ecfdf5", Border: "#10b981", Text: "#064e3b", Icon: "#10b981"},
		DangerBlock:   BlockPalette{Background: "#fff1f2", Border: "#e11d48", Text: "#881337", Icon: "#e11d48"},
		Cover: CoverPalette{
			Background:         "#4c1d95",
			BackgroundGradient: [2]string{"#4c1d95", "#7c3aed"},
			Text:               "#ffffff",
			TextSecondary:      "#ede9fe",
		},
	},
	Typography: Typography{
		HeadingFont: "'Montserrat', 'Helvetica Neue', sans-serif",
		BodyFont:    "'Source Sans Pro', 'Helvetica Neue', sans-serif",
		MonoFont:    "'Fira Code', monospace",
		H1:          HeadingStyle{Size: "36pt", Weight: 800, LineHeight: "1.15", MarginBottom: "16pt"},
		H2:          HeadingStyle{Size: "26pt", Weight: 700, LineHeight: "1.2", MarginBottom: "12pt"},
		H3:          HeadingStyle{Size: "19pt", Weight: 700, LineHeight: "1.3", MarginBottom: "10pt"},
		H4:          HeadingStyle{Size: "14pt", Weight: 700, LineHeight: "1.35", MarginBottom: "8pt"},
		Body:        TextStyle{Size: "11pt", LineHeight: "1.6", MarginBottom: "8pt"},
		Small:       TextStyle{Size: "9pt", LineHeight: "1.5"},
		Caption:     TextStyle{Size: "8pt", LineHeight: "1.4"},
	},
	Spacing: defaultSpacing(),
	Blocks:  Blocks{BorderRadius: "10px", Shadow: "0 2px 8px rgba(17,24,39,0.10)", BorderWidth: "1px"},
}

var sepiaTheme = Theme{
	Name:        "sepia",
	DisplayName: "Сепия",
	Description: "Теплая винтажная тема в коричневых тонах",
	Colors: Colors{
		Text:          "#3e2723",
		TextSecondary: "#5d4037",
		TextMuted:     "#8d6e63",
		Background:    "#f5f1e8",
		Surface:       "#efe7d8",
		SurfaceAlt:    "#e7dcc8",
		Accent:        "#8d6e63",
		AccentStrong:  "#6d4c41",
		AccentSoft:    "#d7ccc8",
		AccentLight:   "#efebe9",
		Border:        "#d7ccc8",
		BorderLight:   "#e7dfd8",
		InfoBlock:     BlockPalette{Background: "#efebe9", Border: "#8d6e63", Text: "#4e342e", Icon: "#8d6e63"},
		WarningBlock:  BlockPalette{Background: "#f3e8d2", Border: "#b08840", Text: "#5f4a1e", Icon: "#b08840"},
		TipBlock:      BlockPalette{Background: "#e8ede2", Border: "#7a8b5c", Text: "#3d4829", Icon: "#7a8b5c"},
		DangerBlock:   BlockPalette{Background: "#f0e2dc", Border: "#9c5142", Text: "#52281e", Icon: "#9c5142"},
		Cover: CoverPalette{
			Background:         "#4e342e",
			BackgroundGradient: [2]string{"#4e342e", "#8d6e63"},
			Text:               "#f5f1e8",
			TextSecondary:      "#d7ccc8",
		},
	},
	Typography: Typography{
		HeadingFont: "'Merriweather', Georgia, serif",
		BodyFont:    "'Crimson Text', Georgia, serif",
		MonoFont:    "'Courier New', monospace",
		H1:          HeadingStyle{Size: "32pt", Weight: 700, LineHeight: "1.25", MarginBottom: "16pt"},
		H2:          HeadingStyle{Size: "23pt", Weight: 700, LineHeight: "1.3", MarginBottom: "12pt"},
		H3:          HeadingStyle{Size: "17pt", Weight: 700, LineHeight: "1.35", MarginBottom: "10pt"},
		H4:          HeadingStyle{Size: "14pt", Weight: 700, LineHeight: "1.4", MarginBottom: "8pt"},
		Body:        TextStyle{Size: "11.5pt", LineHeight: "1.65", MarginBottom: "9pt"},
		Small:       TextStyle{Size: "9.5pt", LineHeight: "1.5"},
		Caption:     TextStyle{Size: "8.5pt", LineHeight: "1.4"},
	},
	Spacing: Spacing{
		PagePadding:     "26mm",
		SectionSpacing:  "24pt",
		BlockSpacing:    "16pt",
		ElementSpacing:  "8pt",
		ContentMaxWidth: "155mm",
		ColumnGap:       "18pt",
	},
	Blocks: Blocks{BorderRadius: "8px", Shadow: "0 1px 4px rgba(62,39,35,0.12)", BorderWidth: "1.5px"},
}

var blackWhiteTheme = Theme{
	Name:        "black-white",
	DisplayName: "Черно-белая",
	Description: "Строгая монохромная тема для черно-белой печати",
	Colors: Colors{
		Text:          "#111111",
		TextSecondary: "#3d3d3d",
		TextMuted:     "#757575",
		Background:    "#ffffff",
		Surface:       "#f7f7f7",
		SurfaceAlt:    "#ededed",
		Accent:        "#000000",
		AccentStrong:  "#000000",
		AccentSoft:    "#e0e0e0",
		AccentLight:   "#f2f2f2",
		Border:        "#bdbdbd",
		BorderLight:   "#e0e0e0",
		InfoBlock:     BlockPalette{Background: "#f2f2f2", Border: "#424242", Text: "#212121", Icon: "#424242"},
		WarningBlock:  BlockPalette{Background: "#ededed", Border: "#616161", Text: "#212121", Icon: "#616161"},
		TipBlock:      BlockPalette{Background: "#f7f7f7", Border: "#757575", Text: "#212121", Icon: "#757575"},
		DangerBlock:   BlockPalette{Background: "#e8e8e8", Border: "#212121", Text: "#111111", Icon: "#212121"},
		Cover: CoverPalette{
			Background:         "#111111",
			BackgroundGradient: [2]string{"#111111", "#3d3d3d"},
			Text:               "#ffffff",
			TextSecondary:      "#bdbdbd",
		},
	},
	Typography: Typography{
		HeadingFont: "'Helvetica Neue', Helvetica, Arial, sans-serif",
		BodyFont:    "Georgia, 'Times New Roman', serif",
		MonoFont:    "'Courier New', monospace",
		H1:          HeadingStyle{Size: "32pt", Weight: 700, LineHeight: "1.2", MarginBottom: "16pt"},
		H2:          HeadingStyle{Size: "24pt", Weight: 700, LineHeight: "1.25", MarginBottom: "12pt"},
		H3:          HeadingStyle{Size: "18pt", Weight: 700, LineHeight: "1.3", MarginBottom: "10pt"},
		H4:          HeadingStyle{Size: "14pt", Weight: 700, LineHeight: "1.35", MarginBottom: "8pt"},
		Body:        TextStyle{Size: "11pt", LineHeight: "1.6", MarginBottom: "8pt"},
		Small:       TextStyle{Size: "9pt", LineHeight: "1.5"},
		Caption:     TextStyle{Size: "8pt", LineHeight: "1.4"},
	},
	Spacing: defaultSpacing(),
	Blocks:  Blocks{BorderRadius: "4px", Shadow: "none", BorderWidth: "2px"},
}

var newspaperTheme = Theme{
	Name:        "newspaper",
	DisplayName: "Цветная газета",
	Description: "Плотная колоночная верстка в духе воскресных газет",
	Colors: Colors{
		Text:          "#1b1b1b",
		TextSecondary: "#3c3c3c",
		TextMuted:     "#6e6e6e",
		Background:    "#fdfcf7",
		Surface:       "#f6f4ea",
		SurfaceAlt:    "#eeebdd",
		Accent:        "#c8102e",
		AccentStrong:  "#a00d26",
		AccentSoft:    "#f6d4da",
		AccentLight:   "#fbeef0",
		Border:        "#1b1b1b",
		BorderLight:   "#c9c5b4",
		InfoBlock:     BlockPalette{Background: "#f0f4f8", Border: "#1d4e79", Text: "#123148", Icon: "#1d4e79"},
		WarningBlock:  BlockPalette{Background: "#fdf3dc", Border: "#c78a00", Text: "#5c4003", Icon: "#c78a00"},
		TipBlock:      BlockPalette{Background: "#eef4e8", Border: "#3d6b2a", Text: "#243f19", Icon: "#3d6b2a"},
		DangerBlock:   BlockPalette{Background: "#fbeef0", Border: "#c8102e", Text: "#6b0a19", Icon: "#c8102e"},
		Cover: CoverPalette{
			Background:         "#1b1b1b",
			BackgroundGradient: [2]string{"#1b1b1b", "#c8102e"},
			Text:               "#fdfcf7",
			TextSecondary:      "#f6d4da",
		},
	},
	Typography: Typography{
		HeadingFont: "'Libre Franklin', 'Franklin Gothic Medium', sans-serif",
		BodyFont:    "'PT Serif', Georgia, serif",
		MonoFont:    "'Courier New', monospace",
		H1:          HeadingStyle{Size: "42pt", Weight: 900, LineHeight: "1.05", MarginBottom: "14pt"},
		H2:          HeadingStyle{Size: "26pt", Weight: 800, LineHeight: "1.15", MarginBottom: "10pt"},
		H3:          HeadingStyle{Size: "18pt", Weight: 800, LineHeight: "1.25", MarginBottom: "8pt"},
		H4:          HeadingStyle{Size: "13pt", Weight: 800, LineHeight: "1.3", MarginBottom: "6pt"},
		Body:        TextStyle{Size: "10.5pt", LineHeight: "1.5", MarginBottom: "7pt"},
		Small:       TextStyle{Size: "8.5pt", LineHeight: "1.4"},
		Caption:     TextStyle{Size: "8pt", LineHeight: "1.35"},
	},
	Spacing: Spacing{
		PagePadding:     "20mm",
		SectionSpacing:  "18pt",
		BlockSpacing:    "12pt",
		ElementSpacing:  "6pt",
		ContentMaxWidth: "170mm",
		ColumnGap:       "14pt",
	},
	Blocks: Blocks{BorderRadius: "2px", Shadow: "none", BorderWidth: "2px"},
}
