package entitlement

// Theme ids. The catalog is a closed set; unknown ids are rejected at the
// service boundary.
const (
	ThemeDefault         = "default"
	ThemeSunset          = "sunset"
	ThemePremiumMidnight = "premium_midnight"
)

// Palette holds the display colors of a theme.
type Palette struct {
	Background  string `json:"background"`
	Surface     string `json:"surface"`
	Accent      string `json:"accent"`
	TextPrimary string `json:"text_primary"`
}

// ThemeSpec is one catalog entry: pricing, gating and display data.
type ThemeSpec struct {
	ID                   string  `json:"id"`
	DisplayName          string  `json:"display_name"`
	Price                int     `json:"price"`
	RequiresSubscription bool    `json:"requires_subscription"`
	Palette              Palette `json:"palette"`
}

// Purchasable reports whether the theme can be bought with coins.
// Subscription-gated themes never are, and the free default has nothing to buy.
func (s ThemeSpec) Purchasable() bool {
	return !s.RequiresSubscription && s.Price > 0
}

var themeCatalog = []ThemeSpec{
	{
		ID:          ThemeDefault,
		DisplayName: "Classic",
		Price:       0,
		Palette: Palette{
			Background:  "#FFFFFF",
			Surface:     "#F2F2F7",
			Accent:      "#007AFF",
			TextPrimary: "#1C1C1E",
		},
	},
	{
		ID:          ThemeSunset,
		DisplayName: "Sunset",
		Price:       30,
		Palette: Palette{
			Background:  "#FFF3E0",
			Surface:     "#FFE0B2",
			Accent:      "#FF7043",
			TextPrimary: "#4E342E",
		},
	},
	{
		ID:                   ThemePremiumMidnight,
		DisplayName:          "Midnight",
		RequiresSubscription: true,
		Palette: Palette{
			Background:  "#0D1117",
			Surface:     "#161B22",
			Accent:      "#58A6FF",
			TextPrimary: "#E6EDF3",
		},
	},
}

// Catalog returns the theme catalog in display order.
func Catalog() []ThemeSpec {
	out := make([]ThemeSpec, len(themeCatalog))
	copy(out, themeCatalog)
	return out
}

// ThemeByID looks up a catalog entry.
func ThemeByID(id string) (ThemeSpec, bool) {
	for _, s := range themeCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return ThemeSpec{}, false
}
