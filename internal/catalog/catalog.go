// Package catalog holds the reference tables for non-flight redemptions:
// hotel award categories, gift cards, statement credits and transfer partners.
package catalog

import (
	"fmt"
	"math"
	"os"

	"github.com/Veraticus/the-points-must-flow/internal/common"
	"gopkg.in/yaml.v3"
)

// StatementCreditUnits is the balance quoted for a statement credit redemption.
const StatementCreditUnits = 10000

// HotelAward is the price of one night in a chain's award category.
type HotelAward struct {
	Chain     string  `yaml:"chain"`
	Category  int     `yaml:"category"`
	Points    int     `yaml:"points"`
	CashValue float64 `yaml:"cash_value"`
}

// GiftCard is a fixed-denomination gift card redemption.
type GiftCard struct {
	Merchant string  `yaml:"merchant"`
	Points   int     `yaml:"points"`
	Value    float64 `yaml:"value"`
}

// StatementCredit converts points to cash at a fixed rate in cents per point.
type StatementCredit struct {
	Program       string  `yaml:"program"`
	CentsPerPoint float64 `yaml:"cents_per_point"`
	Points        int     `yaml:"points"`
}

// CashValue is the dollar amount the credit pays out.
func (s StatementCredit) CashValue() float64 {
	return float64(s.Points) * s.CentsPerPoint / 100
}

// Transfer is a partner transfer: points move at Ratio and gain Bonus
// (0.25 is a 25% bonus).
type Transfer struct {
	Name  string  `yaml:"name"`
	Ratio float64 `yaml:"ratio"`
	Bonus float64 `yaml:"bonus"`
}

// Apply returns how many partner units a balance becomes.
func (t Transfer) Apply(units int) int {
	if units <= 0 {
		return 0
	}
	return int(math.Floor(float64(units) * t.Ratio * (1 + t.Bonus)))
}

// Catalog is the full set of reference tables. Every table is an ordered
// slice; callers iterate in file order.
type Catalog struct {
	Hotels           []HotelAward      `yaml:"hotels"`
	GiftCards        []GiftCard        `yaml:"gift_cards"`
	StatementCredits []StatementCredit `yaml:"statement_credits"`
	Transfers        []Transfer        `yaml:"transfers"`
}

// Default returns the built-in tables.
func Default() *Catalog {
	return &Catalog{
		Hotels:           defaultHotels(),
		GiftCards:        defaultGiftCards(),
		StatementCredits: defaultStatementCredits(),
		Transfers:        defaultTransfers(),
	}
}

// LoadFile reads a YAML catalog. Sections present in the file replace the
// built-in section; missing sections keep the defaults.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", common.ErrCatalog, path, err)
	}
	return Parse(data)
}

// Parse decodes YAML catalog data on top of the defaults and validates the result.
func Parse(data []byte) (*Catalog, error) {
	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parsing: %w", common.ErrCatalog, err)
	}

	cat := Default()
	if file.Hotels != nil {
		cat.Hotels = file.Hotels
	}
	if file.GiftCards != nil {
		cat.GiftCards = file.GiftCards
	}
	if file.StatementCredits != nil {
		cat.StatementCredits = file.StatementCredits
	}
	if file.Transfers != nil {
		cat.Transfers = file.Transfers
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Validate checks every entry for usable values.
func (c *Catalog) Validate() error {
	for i, h := range c.Hotels {
		switch {
		case h.Chain == "":
			return fmt.Errorf("%w: hotel %d: chain is required", common.ErrCatalog, i)
		case h.Category < 1:
			return fmt.Errorf("%w: hotel %s: category must be at least 1, got %d", common.ErrCatalog, h.Chain, h.Category)
		case h.Points <= 0:
			return fmt.Errorf("%w: hotel %s category %d: points must be positive", common.ErrCatalog, h.Chain, h.Category)
		case h.CashValue < 0:
			return fmt.Errorf("%w: hotel %s category %d: cash value must not be negative", common.ErrCatalog, h.Chain, h.Category)
		}
	}
	for i, g := range c.GiftCards {
		switch {
		case g.Merchant == "":
			return fmt.Errorf("%w: gift card %d: merchant is required", common.ErrCatalog, i)
		case g.Points <= 0:
			return fmt.Errorf("%w: gift card %s: points must be positive", common.ErrCatalog, g.Merchant)
		case g.Value < 0:
			return fmt.Errorf("%w: gift card %s: value must not be negative", common.ErrCatalog, g.Merchant)
		}
	}
	for i, s := range c.StatementCredits {
		switch {
		case s.Program == "":
			return fmt.Errorf("%w: statement credit %d: program is required", common.ErrCatalog, i)
		case s.Points <= 0:
			return fmt.Errorf("%w: statement credit %s: points must be positive", common.ErrCatalog, s.Program)
		case s.CentsPerPoint < 0:
			return fmt.Errorf("%w: statement credit %s: rate must not be negative", common.ErrCatalog, s.Program)
		}
	}
	for i, t := range c.Transfers {
		switch {
		case t.Name == "":
			return fmt.Errorf("%w: transfer %d: name is required", common.ErrCatalog, i)
		case t.Ratio <= 0:
			return fmt.Errorf("%w: transfer %s: ratio must be positive", common.ErrCatalog, t.Name)
		case t.Bonus < 0:
			return fmt.Errorf("%w: transfer %s: bonus must not be negative", common.ErrCatalog, t.Name)
		}
	}
	return nil
}
