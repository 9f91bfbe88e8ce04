// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"garden/config"
	deliverycontext "garden/internal/delivery/context"
	"garden/internal/domain/entity"
	domainerrors "garden/internal/domain/errors"
	"garden/internal/domain/repository"
	"garden/internal/domain/service"
	"garden/internal/errors"
	"garden/internal/usecase"

	"go.uber.org/fx"
)

const defaultProvisionTimeout = 30 * time.Second

// registrationState names the steps of one registration. Only used for logging.
type registrationState string

const (
	stateStart                 registrationState = "start"
	stateValidating            registrationState = "validating"
	stateCheckingUsername      registrationState = "checking_username"
	statePersistingCredential  registrationState = "persisting_credential"
	stateInitializingDocuments registrationState = "initializing_documents"
	stateCommitting            registrationState = "committing"
	stateSuccess               registrationState = "success"
	stateRolledBack            registrationState = "rolled_back"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	validator        service.CredentialValidator
	publisher        service.EventPublisher
	initializer      *documentInitializer
	provisionTimeout time.Duration
	logger           *slog.Logger
	now              func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Validator    service.CredentialValidator
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	provisionTimeout := defaultProvisionTimeout
	// Zero lets the initializer issue every category insert at once.
	fanOutLimit := 0
	if params.Config != nil {
		if params.Config.Storage.ProvisionTimeout > 0 {
			provisionTimeout = params.Config.Storage.ProvisionTimeout
		}
		if params.Config.Storage.FanOutLimit > 0 {
			fanOutLimit = params.Config.Storage.FanOutLimit
		}
	}

	return &accountService{
		txManager:        params.TxManager,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		validator:        params.Validator,
		publisher:        params.Publisher,
		initializer:      newDocumentInitializer(fanOutLimit),
		provisionTimeout: provisionTimeout,
		logger:           params.Logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) advance(ctx context.Context, state registrationState, username string) {
	srv.log(ctx).Debug("Registration state", slog.String("state", string(state)), slog.String("username", username))
}

// Register provisions a new account. The credential, profile and the eight category
// documents are written in one scope; either all of them commit or none do.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	username := entity.NormalizeUsername(input.Username)
	srv.advance(ctx, stateStart, username)

	srv.advance(ctx, stateValidating, username)
	if err := domainerrors.NewValidationError(srv.validator.ValidateRegistration(username, input.Password)...); err != nil {
		srv.log(ctx).Info("Registration rejected by validation", slog.String("username", username), slog.Any("error", err))

		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Join(domainerrors.ErrProvisioningFailed, errors.Wrap(err, "hash password"))
	}

	// The scope must finish as a unit even if the client goes away mid-request.
	scopeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.provisionTimeout)
	defer cancel()

	now := srv.now()
	var docs *entity.AccountDocuments

	err = srv.txManager.Execute(scopeCtx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.CredentialRepo()

		srv.advance(ctx, stateCheckingUsername, username)
		if _, err := credentialRepo.FindByUsername(scopeCtx, username); err == nil {
			return domainerrors.ErrUsernameTaken
		} else if !errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(err, "check username")
		}

		srv.advance(ctx, statePersistingCredential, username)
		credential := &entity.Credential{
			Username:     username,
			PasswordHash: passwordHash,
			CreatedAt:    now,
		}
		if err := credentialRepo.Create(scopeCtx, credential); err != nil {
			return errors.Wrap(err, "create credential")
		}

		seeds, err := repoFactory.SeedCatalogRepo().FindAll(scopeCtx)
		if err != nil {
			return errors.Join(domainerrors.ErrCatalogUnavailable, errors.Wrap(err, "load default seeds"))
		}

		srv.advance(ctx, stateInitializingDocuments, username)
		docs = entity.NewAccountDocuments(entity.NewProfile(credential.ID, username, now), seeds)
		if err := srv.initializer.Initialize(scopeCtx, repoFactory, docs); err != nil {
			return err
		}

		srv.advance(ctx, stateCommitting, username)

		return nil
	})
	if err != nil {
		srv.advance(ctx, stateRolledBack, username)

		return nil, srv.registrationFailure(ctx, username, err)
	}

	srv.advance(ctx, stateSuccess, username)
	accountID := docs.Profile.ID

	token, err := srv.tokenService.GenerateToken(accountID, username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration",
			slog.String("account_id", accountID.String()), slog.Any("error", err))

		return nil, errors.Join(domainerrors.ErrTokenIssueFailed, err)
	}

	srv.publishProvisioned(ctx, docs, now)

	srv.log(ctx).Info("Account provisioned",
		slog.String("account_id", accountID.String()),
		slog.String("username", username),
		slog.Int("seed_count", len(docs.Seeds.Seeds)),
	)

	return &usecase.AuthOutput{Token: token, AccountID: accountID, Username: username}, nil
}

// registrationFailure keeps conflicts user-visible and turns everything else into an opaque failure.
func (srv *accountService) registrationFailure(ctx context.Context, username string, err error) error {
	switch {
	case errors.Is(err, domainerrors.ErrUsernameTaken):
		srv.log(ctx).Info("Registration rejected, username taken", slog.String("username", username))

		return domainerrors.ErrUsernameTaken
	case errors.Is(err, domainerrors.ErrCatalogUnavailable):
		srv.log(ctx).Error("Registration aborted, seed catalog unavailable",
			slog.String("username", username), slog.Any("error", err))

		return err
	default:
		srv.log(ctx).Error("Registration rolled back",
			slog.String("username", username), slog.Any("error", err))

		return errors.Join(domainerrors.ErrProvisioningFailed, err)
	}
}

// publishProvisioned is best effort. The account is already committed.
func (srv *accountService) publishProvisioned(ctx context.Context, docs *entity.AccountDocuments, at time.Time) {
	event := &service.AccountProvisionedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		AccountID:     docs.Profile.ID.String(),
		Username:      docs.Profile.Username,
		SeedCount:     len(docs.Seeds.Seeds),
		ProvisionedAt: at,
	}

	if err := srv.publisher.PublishAccountProvisioned(context.WithoutCancel(ctx), event); err != nil {
		srv.log(ctx).Warn("Failed to publish AccountProvisioned event",
			slog.String("account_id", event.AccountID), slog.Any("error", err))
	}
}

// Login checks the password against the stored hash and issues a token.
// Unknown usernames and wrong passwords produce the same error.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	username := entity.NormalizeUsername(input.Username)
	if err := domainerrors.NewValidationError(srv.validator.ValidateLogin(username, input.Password)...); err != nil {
		return nil, err
	}

	var credential *entity.Credential
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		credential, err = repoFactory.CredentialRepo().FindByUsername(ctx, username)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Info("Login failed, unknown username", slog.String("username", username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Info("Login failed, password mismatch", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(credential.ID, credential.Username)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrTokenIssueFailed, err)
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("account_id", credential.ID.String()))

	return &usecase.AuthOutput{Token: token, AccountID: credential.ID, Username: credential.Username}, nil
}
