package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "alice", NormalizeUsername("Alice"))
	assert.Equal(t, "bob123", NormalizeUsername("  BoB123 "))
}

func TestAccountID_TextRoundTrip(t *testing.T) {
	id := AccountID(uuid.New())

	parsed, err := ParseAccountID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
	assert.False(t, id.IsNil())
	assert.True(t, NilAccountID.IsNil())

	body, err := json.Marshal(map[string]AccountID{"_id": id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"`+id.String()+`"}`, string(body))

	_, err = ParseAccountID("not-a-uuid")
	assert.Error(t, err)
}

func TestNewProfile_Defaults(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	id := AccountID(uuid.New())

	p := NewProfile(id, "bob123", now)

	assert.Equal(t, id, p.ID)
	assert.Equal(t, ModeRegistered, p.Mode)
	assert.Equal(t, "light", p.Theme)
	assert.False(t, p.OnboardingComplete)
	assert.Equal(t, 60, p.Balance)
	assert.Equal(t, GameState{PlantCapacity: 3, CalculatedPlantCapacity: 3, UsedPlantCapacity: 0}, p.Game)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.LastActive)
	assert.True(t, p.Game.HasFreeCapacity())
}

func TestNewAccountDocuments_SharesIdentifier(t *testing.T) {
	id := AccountID(uuid.New())
	catalog := []Seed{{Name: "tomato", Count: 5, Unlocked: true}}

	docs := NewAccountDocuments(NewProfile(id, "alice", time.Now()), catalog)

	assert.Equal(t, id, docs.Shop.ID)
	assert.Equal(t, id, docs.Purchases.ID)
	assert.Equal(t, id, docs.Plants.ID)
	assert.Equal(t, id, docs.Inventory.ID)
	assert.Equal(t, id, docs.Garden.ID)
	assert.Equal(t, id, docs.Upgrades.ID)
	assert.Equal(t, id, docs.Supplies.ID)
	assert.Equal(t, id, docs.Seeds.ID)

	assert.Empty(t, docs.Shop.Shop)
	assert.NotNil(t, docs.Purchases.Purchases)
	assert.Empty(t, docs.Inventory.Inventory)
	assert.Zero(t, docs.Inventory.InventoryCount)
	assert.Equal(t, catalog, docs.Seeds.Seeds)

	// The seed list must not alias the catalog slice.
	docs.Seeds.Seeds[0].Count = 0
	assert.Equal(t, 5, catalog[0].Count)
}

func TestRecord_IDAndCount(t *testing.T) {
	var decoded []Record
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"p1","count":2},{"id":7,"count":3.0},{"name":"x"}]`), &decoded))

	assert.Equal(t, "p1", decoded[0].ID())
	assert.Equal(t, "7", decoded[1].ID())
	assert.Equal(t, "", decoded[2].ID())
	assert.Equal(t, 2, decoded[0].Count())
	assert.Equal(t, 3, decoded[1].Count())
	assert.Equal(t, 0, decoded[2].Count())
}

func TestDuplicates(t *testing.T) {
	id, dup := DuplicateRecordID([]Record{{"id": "a"}, {"id": "b"}, {"id": "a"}})
	assert.True(t, dup)
	assert.Equal(t, "a", id)

	_, dup = DuplicateRecordID([]Record{{"id": "a"}, {}, {}})
	assert.False(t, dup)

	name, dup := DuplicateSeedName([]Seed{{Name: "tomato"}, {Name: "tomato"}})
	assert.True(t, dup)
	assert.Equal(t, "tomato", name)
}

func TestInventory_SetItemsRecomputesCount(t *testing.T) {
	inv := &Inventory{}
	inv.SetItems(map[string]Record{
		"tomato": {"count": float64(4)},
		"carrot": {"count": 2},
		"hat":    {"name": "hat"},
	})

	assert.Equal(t, 6, inv.InventoryCount)

	inv.SetItems(nil)
	assert.NotNil(t, inv.Inventory)
	assert.Zero(t, inv.InventoryCount)
}

func TestSeeds_Find(t *testing.T) {
	s := &Seeds{Seeds: []Seed{{Name: "tomato"}, {Name: "carrot"}}}
	assert.Equal(t, 1, s.Find("carrot"))
	assert.Equal(t, -1, s.Find("kale"))
}
