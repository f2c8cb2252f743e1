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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register stores a user on first sign-in. Registration is idempotent per
// email: a repeated sign-in returns the stored document without mutation.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterUserOutput, error) {
	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return &usecase.RegisterUserOutput{User: existing, Created: false}, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up user")
	}

	now := time.Now()
	user := &entity.User{
		Email:     input.Email,
		Name:      input.Name,
		PhotoURL:  input.PhotoURL,
		Role:      entity.RoleUser,
		CreatedAt: now,
		LastLogin: now,
	}
	if user.Name == "" {
		user.Name = "Anonymous"
	}
	if user.PhotoURL == "" {
		user.PhotoURL = entity.DefaultPhotoURL
	}

	if _, err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save user")
	}

	srv.log(ctx).Info("User registered", slog.String("email", user.Email))

	return &usecase.RegisterUserOutput{User: user, Created: true}, nil
}

func (srv *userService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch user")
	}

	return user, nil
}

// GetRole resolves unknown emails to the default role without creating a
// document.
func (srv *userService) GetRole(ctx context.Context, email string) (entity.Role, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.RoleUser, nil
		}

		return "", domainerrors.NewDatabaseExecuteError(err, "failed to resolve role")
	}

	if user.Role == "" {
		return entity.RoleUser, nil
	}

	return user.Role, nil
}

func (srv *userService) ListMembers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindByRole(ctx, entity.RoleMember)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch members")
	}

	return users, nil
}

func (srv *userService) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	modified, err := srv.userRepo.UpdateRoleByID(ctx, id, role)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return domainerrors.ErrInvalidID
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update role")
	}
	if modified == 0 {
		return domainerrors.ErrUserNotFound.WithDetails("user not found or role already set")
	}

	return nil
}

func (srv *userService) RemoveMember(ctx context.Context, id string) error {
	return srv.UpdateRole(ctx, id, entity.RoleUser)
}
