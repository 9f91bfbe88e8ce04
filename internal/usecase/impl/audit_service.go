package impl

import (
	"context"
	"log/slog"

	deliverycontext "garden/internal/delivery/context"
	"garden/internal/domain/entity"
	"garden/internal/domain/repository"
	"garden/internal/errors"
	"garden/internal/usecase"
)

type auditService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(txManager repository.TransactionManager, logger *slog.Logger) usecase.AuditUsecase {
	return &auditService{
		txManager: txManager,
		logger:    logger,
	}
}

// AuditAccount reads back the credential and every category document of id.
// Absent artifacts are reported, not returned as errors.
func (srv *auditService) AuditAccount(ctx context.Context, id entity.AccountID) (*usecase.AuditReport, error) {
	report := &usecase.AuditReport{AccountID: id}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.CredentialRepo().FindByID(ctx, id)
		switch {
		case err == nil:
			report.CredentialFound = true
		case errors.Is(err, repository.ErrCredentialNotFound):
		default:
			return errors.Wrap(err, "find credential")
		}

		for _, category := range entity.AllCategories {
			found, err := documentExists(ctx, repoFactory, category, id)
			if err != nil {
				return errors.Wrapf(err, "find %s document", category)
			}
			if !found {
				report.Missing = append(report.Missing, category)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !report.Complete() {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Account incomplete",
			slog.String("account_id", id.String()),
			slog.Bool("credential_found", report.CredentialFound),
			slog.Any("missing", report.Missing),
		)
	}

	return report, nil
}

func documentExists(ctx context.Context, f repository.RepositoryFactory, category entity.Category, id entity.AccountID) (bool, error) {
	var err error
	switch category {
	case entity.CategoryProfile:
		_, err = f.ProfileRepo().Find(ctx, id)
	case entity.CategoryShop:
		_, err = f.ShopRepo().Find(ctx, id)
	case entity.CategoryPurchases:
		_, err = f.PurchasesRepo().Find(ctx, id)
	case entity.CategoryPlants:
		_, err = f.PlantsRepo().Find(ctx, id)
	case entity.CategoryInventory:
		_, err = f.InventoryRepo().Find(ctx, id)
	case entity.CategoryGarden:
		_, err = f.GardenRepo().Find(ctx, id)
	case entity.CategoryUpgrades:
		_, err = f.UpgradesRepo().Find(ctx, id)
	case entity.CategorySupplies:
		_, err = f.SuppliesRepo().Find(ctx, id)
	case entity.CategorySeeds:
		_, err = f.SeedsRepo().Find(ctx, id)
	default:
		return false, errors.Errorf("unknown category %s", category)
	}

	if errors.Is(err, repository.ErrDocumentNotFound) {
		return false, nil
	}

	return err == nil, err
}
