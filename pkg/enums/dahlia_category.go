package enums

import "fmt"

// DahliaCategory represents the canonical bloom classes carried by the catalog.
type DahliaCategory string

const (
	DahliaCategoryDinnerplate DahliaCategory = "dinnerplate"
	DahliaCategoryBall        DahliaCategory = "ball"
	DahliaCategoryPompon      DahliaCategory = "pompon"
	DahliaCategoryCactus      DahliaCategory = "cactus"
	DahliaCategoryDecorative  DahliaCategory = "decorative"
	DahliaCategoryWaterlily   DahliaCategory = "waterlily"
	DahliaCategoryCollarette  DahliaCategory = "collarette"
	DahliaCategoryAnemone     DahliaCategory = "anemone"
	DahliaCategoryStellar     DahliaCategory = "stellar"
	DahliaCategorySingle      DahliaCategory = "single"
)

var validDahliaCategories = []DahliaCategory{
	DahliaCategoryDinnerplate,
	DahliaCategoryBall,
	DahliaCategoryPompon,
	DahliaCategoryCactus,
	DahliaCategoryDecorative,
	DahliaCategoryWaterlily,
	DahliaCategoryCollarette,
	DahliaCategoryAnemone,
	DahliaCategoryStellar,
	DahliaCategorySingle,
}

var dahliaCategoryLabels = map[DahliaCategory]string{
	DahliaCategoryDinnerplate: "Dinnerplate",
	DahliaCategoryBall:        "Ball",
	DahliaCategoryPompon:      "Pompon",
	DahliaCategoryCactus:      "Cactus",
	DahliaCategoryDecorative:  "Decorative",
	DahliaCategoryWaterlily:   "Waterlily",
	DahliaCategoryCollarette:  "Collarette",
	DahliaCategoryAnemone:     "Anemone",
	DahliaCategoryStellar:     "Stellar",
	DahliaCategorySingle:      "Single",
}

// String implements fmt.Stringer.
func (c DahliaCategory) String() string {
	return string(c)
}

// Label returns the display name shown in filter summaries.
func (c DahliaCategory) Label() string {
	if label, ok := dahliaCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// IsValid reports whether the value is a known DahliaCategory.
func (c DahliaCategory) IsValid() bool {
	for _, candidate := range validDahliaCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseDahliaCategory converts raw input into a DahliaCategory.
func ParseDahliaCategory(value string) (DahliaCategory, error) {
	for _, candidate := range validDahliaCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid dahlia category %q", value)
}
