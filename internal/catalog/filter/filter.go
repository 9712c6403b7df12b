package filter

import (
	"fmt"
	"sort"

	"github.com/opheliasgarden/nursery-backend/internal/catalog"
	"github.com/opheliasgarden/nursery-backend/pkg/enums"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// State captures the active filter selections plus which disclosure group is
// open. Values are immutable: every transition returns a new State. Having a
// single open-group field makes a "both groups open" state unrepresentable.
type State struct {
	categories  map[string]struct{}
	colors      map[string]struct{}
	inStockOnly bool
	open        enums.FilterGroup
}

// Result is the derived output of applying a State to the catalog.
type Result struct {
	Entries   []catalog.Entry `json:"entries"`
	Count     int             `json:"count"`
	NoResults bool            `json:"no_results"`
}

// NewState returns the empty filter state: nothing selected, all groups closed.
func NewState() State {
	return State{open: enums.FilterGroupNone}
}

// NewStateFromSelections seeds a state from raw selections, deduplicating as a
// set. Unknown values are kept; they simply match no catalog entry.
func NewStateFromSelections(categories, colors []string, inStockOnly bool) State {
	s := NewState()
	for _, c := range categories {
		if !s.categorySelected(c) {
			s = s.ToggleCategory(c)
		}
	}
	for _, c := range colors {
		if !s.colorSelected(c) {
			s = s.ToggleColor(c)
		}
	}
	if inStockOnly {
		s = s.ToggleInStock()
	}
	return s
}

// ToggleCategory adds the category to the selection, or removes it if present.
func (s State) ToggleCategory(category string) State {
	s.categories = toggle(s.categories, category)
	return s
}

// ToggleColor adds the color to the selection, or removes it if present.
func (s State) ToggleColor(color string) State {
	s.colors = toggle(s.colors, color)
	return s
}

// ToggleInStock flips the in-stock-only restriction.
func (s State) ToggleInStock() State {
	s.inStockOnly = !s.inStockOnly
	return s
}

// Open marks the given disclosure group as the open one, implicitly closing
// whichever group was open before.
func (s State) Open(group enums.FilterGroup) State {
	if !group.IsValid() {
		group = enums.FilterGroupNone
	}
	s.open = group
	return s
}

// CloseAll collapses every disclosure group; it models a click or focus
// outside the filter controls.
func (s State) CloseAll() State {
	s.open = enums.FilterGroupNone
	return s
}

// OpenGroup returns the currently open disclosure group.
func (s State) OpenGroup() enums.FilterGroup {
	if s.open == "" {
		return enums.FilterGroupNone
	}
	return s.open
}

// InStockOnly reports whether sold-out varieties are being hidden.
func (s State) InStockOnly() bool {
	return s.inStockOnly
}

// SelectedCategories returns the selected categories in stable order.
func (s State) SelectedCategories() []string {
	return sortedKeys(s.categories)
}

// SelectedColors returns the selected colors in stable order.
func (s State) SelectedColors() []string {
	return sortedKeys(s.colors)
}

// Apply computes the visible subset of the catalog, preserving catalog order.
// Selections union within a dimension and intersect across dimensions; an
// empty dimension matches everything.
func (s State) Apply(entries []catalog.Entry) Result {
	visible := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		if s.matches(entry) {
			visible = append(visible, entry)
		}
	}
	return Result{
		Entries:   visible,
		Count:     len(visible),
		NoResults: len(visible) == 0,
	}
}

// SummaryLabel renders the collapsed label for a filter group: the "all"
// default, a single selection's display name, or "N selected".
func (s State) SummaryLabel(group enums.FilterGroup) string {
	switch group {
	case enums.FilterGroupCategory:
		return summarize(s.categories, "All Categories", categoryLabel)
	case enums.FilterGroupColor:
		return summarize(s.colors, "All Colors", colorLabel)
	default:
		return ""
	}
}

func (s State) matches(entry catalog.Entry) bool {
	if len(s.categories) > 0 && !s.categorySelected(entry.Category.String()) {
		return false
	}
	if len(s.colors) > 0 && !s.anyColorSelected(entry.Colors) {
		return false
	}
	if s.inStockOnly && entry.Stock == enums.StockStatusSoldOut {
		return false
	}
	return true
}

func (s State) categorySelected(category string) bool {
	_, ok := s.categories[category]
	return ok
}

func (s State) colorSelected(color string) bool {
	_, ok := s.colors[color]
	return ok
}

func (s State) anyColorSelected(colors []string) bool {
	for _, color := range colors {
		if s.colorSelected(color) {
			return true
		}
	}
	return false
}

func toggle(set map[string]struct{}, value string) map[string]struct{} {
	next := make(map[string]struct{}, len(set)+1)
	for k := range set {
		next[k] = struct{}{}
	}
	if _, ok := next[value]; ok {
		delete(next, value)
	} else {
		next[value] = struct{}{}
	}
	return next
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func summarize(set map[string]struct{}, allLabel string, display func(string) string) string {
	switch len(set) {
	case 0:
		return allLabel
	case 1:
		return display(sortedKeys(set)[0])
	default:
		return fmt.Sprintf("%d selected", len(set))
	}
}

func categoryLabel(value string) string {
	if category, err := enums.ParseDahliaCategory(value); err == nil {
		return category.Label()
	}
	return value
}

func colorLabel(value string) string {
	return cases.Title(language.AmericanEnglish).String(value)
}
