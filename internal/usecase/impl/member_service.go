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

// memberService implements the MemberUsecase interface.
type memberService struct {
	memberRepo repository.MemberRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// MemberServiceParams holds dependencies for memberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	MemberRepo repository.MemberRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		memberRepo: params.MemberRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *memberService) Apply(ctx context.Context, input *usecase.ApplyMemberInput) (string, error) {
	member := &entity.Member{
		Name:      input.Name,
		Email:     input.Email,
		Status:    entity.MemberPending,
		CreatedAt: time.Now(),
	}

	id, err := srv.memberRepo.Insert(ctx, member)
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to add member")
	}

	return id, nil
}

func (srv *memberService) List(ctx context.Context) ([]*entity.Member, error) {
	members, err := srv.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch members")
	}

	return members, nil
}

func (srv *memberService) ListPending(ctx context.Context) ([]*entity.Member, error) {
	members, err := srv.memberRepo.FindByStatus(ctx, entity.MemberPending)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch pending members")
	}

	return members, nil
}

// UpdateStatus moves the application and, on activation, promotes the
// member's stored email to the member role. The email comes from the
// member document itself, not from the caller, so the promotion cannot be
// pointed at an arbitrary account.
func (srv *memberService) UpdateStatus(ctx context.Context, id string, status entity.MemberStatus) error {
	modified, err := srv.memberRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return domainerrors.ErrInvalidID
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update member status")
	}
	if modified == 0 {
		return domainerrors.ErrMemberNotFound
	}

	if status != entity.MemberActive {
		return nil
	}

	member, err := srv.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			srv.log(ctx).Warn("Member missing after activation, role side effect skipped",
				slog.String("memberID", id))

			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to load activated member")
	}

	promoted, err := srv.userRepo.UpdateRoleByEmail(ctx, member.Email, entity.RoleMember)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to promote user to member")
	}
	if promoted == 0 {
		srv.log(ctx).Warn("No user matched activated member, role side effect skipped",
			slog.String("memberID", id),
			slog.String("email", member.Email))
	}

	return nil
}
