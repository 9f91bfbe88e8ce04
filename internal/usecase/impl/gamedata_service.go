package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "garden/internal/delivery/context"
	"garden/internal/domain/entity"
	domainerrors "garden/internal/domain/errors"
	"garden/internal/domain/repository"
	"garden/internal/errors"
	"garden/internal/usecase"
)

// gameDataService implements the GameDataUsecase interface.
type gameDataService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewGameDataService is the constructor for gameDataService.
func NewGameDataService(txManager repository.TransactionManager, logger *slog.Logger) usecase.GameDataUsecase {
	return &gameDataService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *gameDataService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type repoPicker[T any] func(repository.RepositoryFactory) repository.DocumentRepository[T]

func profiles(f repository.RepositoryFactory) repository.DocumentRepository[entity.Profile] {
	return f.ProfileRepo()
}

func seedDocs(f repository.RepositoryFactory) repository.DocumentRepository[entity.Seeds] {
	return f.SeedsRepo()
}

func inventories(f repository.RepositoryFactory) repository.DocumentRepository[entity.Inventory] {
	return f.InventoryRepo()
}

func shops(f repository.RepositoryFactory) repository.DocumentRepository[entity.Shop] {
	return f.ShopRepo()
}

func purchaseDocs(f repository.RepositoryFactory) repository.DocumentRepository[entity.Purchases] {
	return f.PurchasesRepo()
}

func plantDocs(f repository.RepositoryFactory) repository.DocumentRepository[entity.Plants] {
	return f.PlantsRepo()
}

func upgradeDocs(f repository.RepositoryFactory) repository.DocumentRepository[entity.Upgrades] {
	return f.UpgradesRepo()
}

func supplyDocs(f repository.RepositoryFactory) repository.DocumentRepository[entity.Supplies] {
	return f.SuppliesRepo()
}

func gardens(f repository.RepositoryFactory) repository.DocumentRepository[entity.Garden] {
	return f.GardenRepo()
}

// readDocument loads one document of the account.
func readDocument[T any](ctx context.Context, txManager repository.TransactionManager, pick repoPicker[T], id entity.AccountID) (*T, error) {
	var doc *T
	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		doc, err = pick(repoFactory).Find(ctx, id)

		return err
	})
	if err != nil {
		return nil, mapDocumentError(err)
	}

	return doc, nil
}

// updateDocument locks the document, applies mutate and writes the whole document back.
// If mutate fails nothing is written.
func updateDocument[T any](
	ctx context.Context,
	txManager repository.TransactionManager,
	pick repoPicker[T],
	id entity.AccountID,
	mutate func(doc *T) error,
) (*T, error) {
	var doc *T
	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := pick(repoFactory)

		current, err := repo.FindForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := mutate(current); err != nil {
			return err
		}
		if err := repo.Replace(ctx, id, current); err != nil {
			return err
		}
		doc = current

		return nil
	})
	if err != nil {
		return nil, mapDocumentError(err)
	}

	return doc, nil
}

func mapDocumentError(err error) error {
	if errors.Is(err, repository.ErrDocumentNotFound) {
		return domainerrors.ErrDocumentNotFound
	}

	return err
}

// --- Profile ---

func (srv *gameDataService) GetProfile(ctx context.Context, id entity.AccountID) (*entity.Profile, error) {
	return readDocument(ctx, srv.txManager, profiles, id)
}

// UpdateBalance sets the balance. Negative balances are rejected.
func (srv *gameDataService) UpdateBalance(ctx context.Context, id entity.AccountID, balance int) (*entity.Profile, error) {
	if balance < 0 {
		return nil, domainerrors.NewValidationError("Balance cannot be negative")
	}

	return updateDocument(ctx, srv.txManager, profiles, id, func(p *entity.Profile) error {
		p.Balance = balance

		return nil
	})
}

// IncrementUsedPlantCapacity takes one plant slot, failing when none is free.
func (srv *gameDataService) IncrementUsedPlantCapacity(ctx context.Context, id entity.AccountID) (*entity.Profile, error) {
	return updateDocument(ctx, srv.txManager, profiles, id, func(p *entity.Profile) error {
		if !p.Game.HasFreeCapacity() {
			return domainerrors.NewValidationError("Plant capacity reached")
		}
		p.Game.UsedPlantCapacity++

		return nil
	})
}

func (srv *gameDataService) UpdateOnboardingStatus(ctx context.Context, id entity.AccountID, complete bool) (*entity.Profile, error) {
	return updateDocument(ctx, srv.txManager, profiles, id, func(p *entity.Profile) error {
		p.OnboardingComplete = complete

		return nil
	})
}

// UpdateProfile overwrites the supplied mutable fields and re-checks the profile invariants.
func (srv *gameDataService) UpdateProfile(ctx context.Context, id entity.AccountID, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	return updateDocument(ctx, srv.txManager, profiles, id, func(p *entity.Profile) error {
		if input.Theme != nil {
			p.Theme = *input.Theme
		}
		if input.OnboardingComplete != nil {
			p.OnboardingComplete = *input.OnboardingComplete
		}
		if input.Balance != nil {
			p.Balance = *input.Balance
		}
		if input.Game != nil {
			p.Game = *input.Game
		}
		if input.LastActive != nil {
			p.LastActive = input.LastActive.UTC()
		}
		if input.LastAtShop != nil {
			p.LastAtShop = input.LastAtShop.UTC()
		}

		return validateProfile(p)
	})
}

func validateProfile(p *entity.Profile) error {
	var problems []string
	if p.Balance < 0 {
		problems = append(problems, "Balance cannot be negative")
	}
	if p.Game.UsedPlantCapacity < 0 {
		problems = append(problems, "Used plant capacity cannot be negative")
	}
	if p.Game.UsedPlantCapacity > p.Game.PlantCapacity {
		problems = append(problems, "Used plant capacity cannot exceed plant capacity")
	}

	return domainerrors.NewValidationError(problems...)
}

// --- Seeds ---

func (srv *gameDataService) GetSeeds(ctx context.Context, id entity.AccountID) (*entity.Seeds, error) {
	return readDocument(ctx, srv.txManager, seedDocs, id)
}

// DecrementSeed uses one seed of the named type. Counts never drop below zero.
func (srv *gameDataService) DecrementSeed(ctx context.Context, id entity.AccountID, name string) (*entity.Seeds, error) {
	if name == "" {
		return nil, domainerrors.NewValidationError("Seed name is required")
	}

	return updateDocument(ctx, srv.txManager, seedDocs, id, func(s *entity.Seeds) error {
		idx := s.Find(name)
		if idx < 0 {
			return errors.Wrapf(domainerrors.ErrItemNotFound, "seed %q", name)
		}
		if s.Seeds[idx].Count <= 0 {
			return domainerrors.NewValidationError(fmt.Sprintf("No %s seeds left", name))
		}
		s.Seeds[idx].Count--

		return nil
	})
}

// ReplaceSeeds overwrites the seed list. Names must be present and unique, counts non-negative.
func (srv *gameDataService) ReplaceSeeds(ctx context.Context, id entity.AccountID, seeds []entity.Seed) (*entity.Seeds, error) {
	if err := validateSeeds(seeds); err != nil {
		return nil, err
	}

	return updateDocument(ctx, srv.txManager, seedDocs, id, func(s *entity.Seeds) error {
		s.Seeds = entity.CloneSeeds(seeds)

		return nil
	})
}

func validateSeeds(seeds []entity.Seed) error {
	if len(seeds) == 0 {
		return domainerrors.NewValidationError("Seeds cannot be empty")
	}

	var problems []string
	for _, seed := range seeds {
		if seed.Name == "" {
			problems = append(problems, "Every seed needs a name")

			break
		}
	}
	for _, seed := range seeds {
		if seed.Count < 0 {
			problems = append(problems, fmt.Sprintf("Seed %s has a negative count", seed.Name))
		}
	}
	if name, dup := entity.DuplicateSeedName(seeds); dup {
		problems = append(problems, fmt.Sprintf("Seed %s appears more than once", name))
	}

	return domainerrors.NewValidationError(problems...)
}

// --- Inventory ---

func (srv *gameDataService) GetInventory(ctx context.Context, id entity.AccountID) (*entity.Inventory, error) {
	return readDocument(ctx, srv.txManager, inventories, id)
}

// ReplaceInventory stores the items and recomputes inventoryCount from their counts.
func (srv *gameDataService) ReplaceInventory(ctx context.Context, id entity.AccountID, items map[string]entity.Record) (*entity.Inventory, error) {
	for name, item := range items {
		if item.Count() < 0 {
			return nil, domainerrors.NewValidationError(fmt.Sprintf("Inventory item %s has a negative count", name))
		}
	}

	return updateDocument(ctx, srv.txManager, inventories, id, func(inv *entity.Inventory) error {
		inv.SetItems(items)

		return nil
	})
}

// --- Shop, purchases, garden ---

func (srv *gameDataService) GetShop(ctx context.Context, id entity.AccountID) (*entity.Shop, error) {
	return readDocument(ctx, srv.txManager, shops, id)
}

func (srv *gameDataService) ReplaceShop(ctx context.Context, id entity.AccountID, shop map[string]any) (*entity.Shop, error) {
	return updateDocument(ctx, srv.txManager, shops, id, func(s *entity.Shop) error {
		s.Shop = nonNilMap(shop)

		return nil
	})
}

func (srv *gameDataService) GetPurchases(ctx context.Context, id entity.AccountID) (*entity.Purchases, error) {
	return readDocument(ctx, srv.txManager, purchaseDocs, id)
}

func (srv *gameDataService) ReplacePurchases(ctx context.Context, id entity.AccountID, purchases []entity.Record) (*entity.Purchases, error) {
	return updateDocument(ctx, srv.txManager, purchaseDocs, id, func(p *entity.Purchases) error {
		p.Purchases = nonNilRecords(purchases)

		return nil
	})
}

func (srv *gameDataService) GetGarden(ctx context.Context, id entity.AccountID) (*entity.Garden, error) {
	return readDocument(ctx, srv.txManager, gardens, id)
}

func (srv *gameDataService) ReplaceGarden(ctx context.Context, id entity.AccountID, garden map[string]any) (*entity.Garden, error) {
	return updateDocument(ctx, srv.txManager, gardens, id, func(g *entity.Garden) error {
		g.Garden = nonNilMap(garden)

		return nil
	})
}

// --- Plants ---

func (srv *gameDataService) GetPlants(ctx context.Context, id entity.AccountID) (*entity.Plants, error) {
	return readDocument(ctx, srv.txManager, plantDocs, id)
}

// AddPlant appends a plant. Its id must be set and not already planted.
func (srv *gameDataService) AddPlant(ctx context.Context, id entity.AccountID, plant entity.Record) (*entity.Plants, error) {
	if plant.ID() == "" {
		return nil, domainerrors.NewValidationError("Plant id is required")
	}

	return updateDocument(ctx, srv.txManager, plantDocs, id, func(p *entity.Plants) error {
		if indexOfRecord(p.Plants, plant.ID()) >= 0 {
			return domainerrors.NewValidationError(fmt.Sprintf("Plant %s already exists", plant.ID()))
		}
		p.Plants = append(p.Plants, plant)

		return nil
	})
}

func (srv *gameDataService) RemovePlant(ctx context.Context, id entity.AccountID, plantID string) (*entity.Plants, error) {
	if plantID == "" {
		return nil, domainerrors.NewValidationError("Plant id is required")
	}

	return updateDocument(ctx, srv.txManager, plantDocs, id, func(p *entity.Plants) error {
		idx := indexOfRecord(p.Plants, plantID)
		if idx < 0 {
			return errors.Wrapf(domainerrors.ErrItemNotFound, "plant %q", plantID)
		}
		p.Plants = append(p.Plants[:idx], p.Plants[idx+1:]...)

		return nil
	})
}

// ReplacePlants overwrites the plant list. Plant ids must be unique.
func (srv *gameDataService) ReplacePlants(ctx context.Context, id entity.AccountID, plants []entity.Record) (*entity.Plants, error) {
	if dupID, dup := entity.DuplicateRecordID(plants); dup {
		return nil, domainerrors.NewValidationError(fmt.Sprintf("Plant %s appears more than once", dupID))
	}

	return updateDocument(ctx, srv.txManager, plantDocs, id, func(p *entity.Plants) error {
		p.Plants = nonNilRecords(plants)

		return nil
	})
}

// --- Upgrades ---

func (srv *gameDataService) GetUpgrades(ctx context.Context, id entity.AccountID) (*entity.Upgrades, error) {
	return readDocument(ctx, srv.txManager, upgradeDocs, id)
}

func (srv *gameDataService) AddUpgrade(ctx context.Context, id entity.AccountID, upgrade entity.Record) (*entity.Upgrades, error) {
	if len(upgrade) == 0 {
		return nil, domainerrors.NewValidationError("Upgrade is required")
	}

	return updateDocument(ctx, srv.txManager, upgradeDocs, id, func(u *entity.Upgrades) error {
		u.Upgrades = append(u.Upgrades, upgrade)

		return nil
	})
}

// --- Supplies ---

func (srv *gameDataService) GetSupplies(ctx context.Context, id entity.AccountID) (*entity.Supplies, error) {
	return readDocument(ctx, srv.txManager, supplyDocs, id)
}

func (srv *gameDataService) AddSupply(ctx context.Context, id entity.AccountID, supply entity.Record) (*entity.Supplies, error) {
	if supply.ID() == "" {
		return nil, domainerrors.NewValidationError("Supply id is required")
	}

	return updateDocument(ctx, srv.txManager, supplyDocs, id, func(s *entity.Supplies) error {
		if indexOfRecord(s.Supplies, supply.ID()) >= 0 {
			return domainerrors.NewValidationError(fmt.Sprintf("Supply %s already exists", supply.ID()))
		}
		s.Supplies = append(s.Supplies, supply)

		return nil
	})
}

func (srv *gameDataService) RemoveSupply(ctx context.Context, id entity.AccountID, supplyID string) (*entity.Supplies, error) {
	if supplyID == "" {
		return nil, domainerrors.NewValidationError("Supply id is required")
	}

	return updateDocument(ctx, srv.txManager, supplyDocs, id, func(s *entity.Supplies) error {
		idx := indexOfRecord(s.Supplies, supplyID)
		if idx < 0 {
			srv.log(ctx).Debug("Supply not owned", slog.String("supply_id", supplyID))

			return errors.Wrapf(domainerrors.ErrItemNotFound, "supply %q", supplyID)
		}
		s.Supplies = append(s.Supplies[:idx], s.Supplies[idx+1:]...)

		return nil
	})
}

func indexOfRecord(records []entity.Record, id string) int {
	for i, r := range records {
		if r.ID() == id {
			return i
		}
	}

	return -1
}

func nonNilRecords(records []entity.Record) []entity.Record {
	if records == nil {
		return []entity.Record{}
	}

	return records
}

func nonNilMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}

	return m
}
