package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/opheliasgarden/nursery-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var skuPattern = regexp.MustCompile(`^DAH-[A-Z]+-\d{3}$`)

// entryDoc is the on-disk shape of one variety file.
type entryDoc struct {
	Name        string   `yaml:"name"`
	SKU         string   `yaml:"sku"`
	Price       float64  `yaml:"price"`
	Stock       string   `yaml:"stock"`
	Category    string   `yaml:"category"`
	Colors      []string `yaml:"colors"`
	BloomSize   string   `yaml:"bloomSize"`
	Height      string   `yaml:"height"`
	Image       string   `yaml:"image"`
	Description string   `yaml:"description"`
}

// Load reads every .yaml/.yml file under dir into an immutable catalog.
// Catalog order is fixed by file name. Schema failures are accumulated so a
// broken content drop reports every bad file at once.
func Load(dir string) (*Catalog, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(de.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, de.Name())
	}
	sort.Strings(names)

	var loadErr error
	catalog := &Catalog{bySKU: make(map[string]int, len(names))}
	for _, name := range names {
		path := filepath.Join(dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			loadErr = multierr.Append(loadErr, fmt.Errorf("%s: %w", name, err))
			continue
		}
		var doc entryDoc
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			loadErr = multierr.Append(loadErr, fmt.Errorf("%s: %w", name, err))
			continue
		}
		entry, err := doc.toEntry()
		if err != nil {
			loadErr = multierr.Append(loadErr, fmt.Errorf("%s: %w", name, err))
			continue
		}
		if _, dup := catalog.bySKU[entry.SKU]; dup {
			loadErr = multierr.Append(loadErr, fmt.Errorf("%s: duplicate sku %s", name, entry.SKU))
			continue
		}
		catalog.bySKU[entry.SKU] = len(catalog.entries)
		catalog.entries = append(catalog.entries, entry)
	}

	if loadErr != nil {
		return nil, loadErr
	}
	return catalog, nil
}

func (d entryDoc) toEntry() (Entry, error) {
	var err error
	if d.Name == "" {
		err = multierr.Append(err, fmt.Errorf("name is required"))
	}
	if !skuPattern.MatchString(d.SKU) {
		err = multierr.Append(err, fmt.Errorf("invalid sku %q", d.SKU))
	}
	if d.Price <= 0 {
		err = multierr.Append(err, fmt.Errorf("price must be positive, got %v", d.Price))
	}
	stock, stockErr := enums.ParseStockStatus(d.Stock)
	if stockErr != nil {
		err = multierr.Append(err, stockErr)
	}
	category, categoryErr := enums.ParseDahliaCategory(d.Category)
	if categoryErr != nil {
		err = multierr.Append(err, categoryErr)
	}
	if len(d.Colors) == 0 {
		err = multierr.Append(err, fmt.Errorf("at least one color is required"))
	}
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		SKU:         d.SKU,
		Name:        d.Name,
		Price:       decimal.NewFromFloat(d.Price),
		Stock:       stock,
		Category:    category,
		Colors:      append([]string(nil), d.Colors...),
		BloomSize:   d.BloomSize,
		Height:      d.Height,
		Image:       d.Image,
		Description: d.Description,
	}, nil
}
