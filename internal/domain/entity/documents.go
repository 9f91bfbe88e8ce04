package entity

import "encoding/json"

// Category names one of the per-account documents.
type Category string

const (
	CategoryProfile   Category = "profile"
	CategoryShop      Category = "shop"
	CategoryPurchases Category = "purchases"
	CategoryPlants    Category = "plants"
	CategoryInventory Category = "inventory"
	CategoryGarden    Category = "garden"
	CategoryUpgrades  Category = "upgrades"
	CategorySupplies  Category = "supplies"
	CategorySeeds     Category = "seeds"
)

// InitializedCategories are the eight documents created next to the profile at registration.
var InitializedCategories = []Category{
	CategoryShop,
	CategoryPurchases,
	CategoryPlants,
	CategoryInventory,
	CategoryGarden,
	CategoryUpgrades,
	CategorySupplies,
	CategorySeeds,
}

// AllCategories is every per-account document, profile first.
var AllCategories = append([]Category{CategoryProfile}, InitializedCategories...)

// Record is an opaque client-defined object (a plant, a purchase, a supply...).
type Record map[string]any

// ID returns the record's "id" field rendered as a string, or "" when absent.
func (r Record) ID() string {
	switch v := r["id"].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}

		return string(b)
	}
}

// Count returns the numeric "count" field, or 0 when absent or not a number.
func (r Record) Count() int {
	switch v := r["count"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}

		return int(n)
	default:
		return 0
	}
}

// DuplicateRecordID returns the first id that appears twice, if any.
func DuplicateRecordID(records []Record) (string, bool) {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		id := r.ID()
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}

	return "", false
}

// Shop is the current storefront offer.
type Shop struct {
	ID   AccountID      `json:"_id"`
	Shop map[string]any `json:"shop"`
}

// Purchases is the append-mostly purchase history.
type Purchases struct {
	ID        AccountID `json:"_id"`
	Purchases []Record  `json:"purchases"`
}

// Plants holds the active planted instances. Ids are unique within the list.
type Plants struct {
	ID     AccountID `json:"_id"`
	Plants []Record  `json:"plants"`
}

// Inventory maps item names to their records; InventoryCount caches the sum of counts.
type Inventory struct {
	ID             AccountID         `json:"_id"`
	Inventory      map[string]Record `json:"inventory"`
	InventoryCount int               `json:"inventoryCount"`
}

// SetItems replaces the items and recomputes the cached total.
func (inv *Inventory) SetItems(items map[string]Record) {
	if items == nil {
		items = map[string]Record{}
	}
	total := 0
	for _, item := range items {
		total += item.Count()
	}
	inv.Inventory = items
	inv.InventoryCount = total
}

// Garden maps plot ids to occupant state.
type Garden struct {
	ID     AccountID      `json:"_id"`
	Garden map[string]any `json:"garden"`
}

// Upgrades lists owned upgrades.
type Upgrades struct {
	ID       AccountID `json:"_id"`
	Upgrades []Record  `json:"upgrades"`
}

// Supplies lists owned supply items. Ids are unique within the list.
type Supplies struct {
	ID       AccountID `json:"_id"`
	Supplies []Record  `json:"supplies"`
}

// Seeds lists the seed types an account owns or has unlocked.
type Seeds struct {
	ID    AccountID `json:"_id"`
	Seeds []Seed    `json:"seeds"`
}

// Find returns the index of the named seed or -1.
func (s *Seeds) Find(name string) int {
	for i := range s.Seeds {
		if s.Seeds[i].Name == name {
			return i
		}
	}

	return -1
}
