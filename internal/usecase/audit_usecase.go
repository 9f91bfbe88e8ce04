package usecase

import (
	"context"

	"garden/internal/domain/entity"
)

// AuditReport describes which artifacts of a provisioned account could be read back.
type AuditReport struct {
	AccountID       entity.AccountID
	CredentialFound bool
	Missing         []entity.Category
}

// Complete reports whether the credential and all nine category documents exist.
func (r *AuditReport) Complete() bool {
	return r.CredentialFound && len(r.Missing) == 0
}

// AuditUsecase verifies accounts after the provisioning event is received.
type AuditUsecase interface {
	AuditAccount(ctx context.Context, id entity.AccountID) (*AuditReport, error)
}
