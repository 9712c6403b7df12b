package enums

import "fmt"

// FilterGroup identifies a collapsible filter disclosure. At most one group is
// open at a time; FilterGroupNone means everything is collapsed.
type FilterGroup string

const (
	FilterGroupNone     FilterGroup = "none"
	FilterGroupCategory FilterGroup = "category"
	FilterGroupColor    FilterGroup = "color"
)

var validFilterGroups = []FilterGroup{
	FilterGroupNone,
	FilterGroupCategory,
	FilterGroupColor,
}

// String implements fmt.Stringer.
func (g FilterGroup) String() string {
	return string(g)
}

// IsValid reports whether the value is a known FilterGroup.
func (g FilterGroup) IsValid() bool {
	for _, candidate := range validFilterGroups {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseFilterGroup converts raw input into a FilterGroup.
func ParseFilterGroup(value string) (FilterGroup, error) {
	for _, candidate := range validFilterGroups {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid filter group %q", value)
}
