package kurashi

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord is one observed price for one item at one shop.
//
// Records are immutable once created: a correction is a new record, and
// UnitPrice is a snapshot computed at creation time, never recomputed
// from quantity/volume afterwards. The json tags follow the column names
// of the bottom_prices table.
type PriceRecord struct {
	ID        string          `json:"id"`
	ItemName  string          `json:"item_name"`
	Category  string          `json:"category"`
	Price     Yen             `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Volume    decimal.Decimal `json:"volume"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ShopName  string          `json:"shop_name"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewPriceRecord validates a submission and stamps its unit price.
//
// A blank quantity or volume (decimal zero value) defaults to 1, matching
// the entry form. The ID is left empty; the store assigns one on create.
// On any validation failure the zero record and an ErrInvalidInput
// wrapped error are returned, and nothing must be persisted.
func NewPriceRecord(itemName, category string, price Yen, quantity, volume decimal.Decimal, shopName string, createdAt time.Time) (PriceRecord, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return PriceRecord{}, fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}

	quantity = orOne(quantity)
	volume = orOne(volume)

	unit, err := UnitPrice(price, quantity, volume)
	if err != nil {
		return PriceRecord{}, err
	}

	return PriceRecord{
		ItemName:  itemName,
		Category:  strings.TrimSpace(category),
		Price:     price,
		Quantity:  quantity,
		Volume:    volume,
		UnitPrice: unit,
		ShopName:  strings.TrimSpace(shopName),
		CreatedAt: createdAt,
	}, nil
}

// Validate checks the invariants a persisted record must uphold: a
// non-negative price and a finite, non-negative unit price. Decoded
// streams (import, API payloads) go through it before reaching the store.
func (r PriceRecord) Validate() error {
	if r.ItemName == "" {
		return fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if r.Price < 0 {
		return fmt.Errorf("%w: price %d must not be negative", ErrInvalidInput, r.Price)
	}
	if !r.Quantity.IsPositive() || !r.Volume.IsPositive() {
		return fmt.Errorf("%w: quantity and volume must be positive", ErrInvalidInput)
	}
	if r.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price %s must not be negative", ErrInvalidInput, r.UnitPrice)
	}
	return nil
}
