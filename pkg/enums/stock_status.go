package enums

import "fmt"

// StockStatus tracks the availability of a catalog variety.
type StockStatus string

const (
	StockStatusAvailable StockStatus = "available"
	StockStatusLow       StockStatus = "low"
	StockStatusSoldOut   StockStatus = "sold-out"
)

var validStockStatuses = []StockStatus{
	StockStatusAvailable,
	StockStatusLow,
	StockStatusSoldOut,
}

// String implements fmt.Stringer.
func (s StockStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StockStatus.
func (s StockStatus) IsValid() bool {
	for _, candidate := range validStockStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockStatus converts raw input into a StockStatus.
func ParseStockStatus(value string) (StockStatus, error) {
	for _, candidate := range validStockStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock status %q", value)
}
