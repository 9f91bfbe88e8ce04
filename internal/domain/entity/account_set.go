package entity

// AccountDocuments is the full set of category documents initialized for one account.
type AccountDocuments struct {
	Profile   *Profile
	Shop      *Shop
	Purchases *Purchases
	Plants    *Plants
	Inventory *Inventory
	Garden    *Garden
	Upgrades  *Upgrades
	Supplies  *Supplies
	Seeds     *Seeds
}

// NewAccountDocuments builds the default shape of every category document for id.
// seeds is used verbatim as the starting seed list.
func NewAccountDocuments(profile *Profile, seeds []Seed) *AccountDocuments {
	id := profile.ID

	return &AccountDocuments{
		Profile:   profile,
		Shop:      &Shop{ID: id, Shop: map[string]any{}},
		Purchases: &Purchases{ID: id, Purchases: []Record{}},
		Plants:    &Plants{ID: id, Plants: []Record{}},
		Inventory: &Inventory{ID: id, Inventory: map[string]Record{}, InventoryCount: 0},
		Garden:    &Garden{ID: id, Garden: map[string]any{}},
		Upgrades:  &Upgrades{ID: id, Upgrades: []Record{}},
		Supplies:  &Supplies{ID: id, Supplies: []Record{}},
		Seeds:     &Seeds{ID: id, Seeds: CloneSeeds(seeds)},
	}
}
