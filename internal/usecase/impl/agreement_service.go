// Package impl contains the implementation of the application's business
// logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	deliverycontext "bmshub/internal/delivery/context"
	"bmshub/internal/domain/entity"
	domainerrors "bmshub/internal/domain/errors"
	"bmshub/internal/domain/repository"
	"bmshub/internal/errors"
	"bmshub/internal/usecase"
)

// agreementService implements the AgreementUsecase interface. It is the
// single authoritative transition function set for the agreement state
// machine; handlers never touch agreement status or roles directly.
type agreementService struct {
	agreementRepo repository.AgreementRepository
	userRepo      repository.UserRepository
	logger        *slog.Logger
}

// AgreementServiceParams holds dependencies for agreementService,
// injected by Fx.
type AgreementServiceParams struct {
	fx.In

	AgreementRepo repository.AgreementRepository
	UserRepo      repository.UserRepository
	Logger        *slog.Logger
}

// NewAgreementService is the constructor for agreementService.
func NewAgreementService(params AgreementServiceParams) usecase.AgreementUsecase {
	return &agreementService{
		agreementRepo: params.AgreementRepo,
		userRepo:      params.UserRepo,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back
// to the service's logger.
func (srv *agreementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *agreementService) Submit(ctx context.Context, input *usecase.SubmitAgreementInput) (*entity.Agreement, error) {
	agreement := &entity.Agreement{
		UserEmail:   input.UserEmail,
		UserName:    input.UserName,
		ApartmentNo: input.ApartmentNo,
		Floor:       input.Floor,
		Block:       input.Block,
		Rent:        input.Rent,
		Status:      entity.AgreementPending,
		CreatedAt:   time.Now(),
	}

	// The store's partial unique index rejects a second pending agreement
	// for the same pair atomically, so no duplicate-check read happens here.
	id, err := srv.agreementRepo.Insert(ctx, agreement)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAgreement) {
			return nil, domainerrors.ErrDuplicateAgreement
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create agreement")
	}
	agreement.ID = id

	srv.log(ctx).Info("Agreement submitted",
		slog.String("agreementID", agreement.ID),
		slog.String("userEmail", agreement.UserEmail),
		slog.String("apartmentNo", agreement.ApartmentNo))

	return agreement, nil
}

// Accept flips the agreement to checked and promotes the stored user email
// to the member role. The role lookup uses the agreement's own userEmail,
// never a caller-supplied one. When the agreement or user document is
// missing the transition still succeeds and the role side effect is
// skipped; both cases are logged as partial failures.
func (srv *agreementService) Accept(ctx context.Context, id string) error {
	modified, err := srv.transition(ctx, id, entity.AgreementChecked)
	if err != nil {
		return err
	}
	if modified == 0 {
		srv.log(ctx).Warn("Accept matched no pending agreement", slog.String("agreementID", id))
	}

	agreement, err := srv.agreementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAgreementNotFound) {
			srv.log(ctx).Warn("Agreement missing after accept, role side effect skipped",
				slog.String("agreementID", id))

			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to load accepted agreement")
	}

	promoted, err := srv.userRepo.UpdateRoleByEmail(ctx, agreement.UserEmail, entity.RoleMember)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to promote user to member")
	}
	if promoted == 0 {
		srv.log(ctx).Warn("No user matched accepted agreement, role side effect skipped",
			slog.String("agreementID", id),
			slog.String("userEmail", agreement.UserEmail))
	}

	return nil
}

// Reject is a status-only transition; the user's role is untouched.
func (srv *agreementService) Reject(ctx context.Context, id string) error {
	if _, err := srv.transition(ctx, id, entity.AgreementChecked); err != nil {
		return err
	}

	return nil
}

func (srv *agreementService) transition(ctx context.Context, id string, status entity.AgreementStatus) (int64, error) {
	modified, err := srv.agreementRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return 0, domainerrors.ErrInvalidID
		}

		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to update agreement status")
	}

	return modified, nil
}

func (srv *agreementService) Get(ctx context.Context, id string) (*entity.Agreement, error) {
	agreement, err := srv.agreementRepo.FindByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return nil, domainerrors.ErrInvalidID
		case errors.Is(err, repository.ErrAgreementNotFound):
			return nil, domainerrors.ErrAgreementNotFound
		default:
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch agreement")
		}
	}

	return agreement, nil
}

func (srv *agreementService) ListByEmail(ctx context.Context, email string) ([]*entity.Agreement, error) {
	agreements, err := srv.agreementRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch agreements")
	}

	return agreements, nil
}

func (srv *agreementService) ListAll(ctx context.Context) ([]*entity.Agreement, error) {
	agreements, err := srv.agreementRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch all agreements")
	}

	return agreements, nil
}

func (srv *agreementService) Delete(ctx context.Context, id string) error {
	deleted, err := srv.agreementRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return domainerrors.ErrInvalidID
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete agreement")
	}
	if deleted == 0 {
		return domainerrors.ErrAgreementNotFound
	}

	return nil
}
