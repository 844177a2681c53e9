package usecase

import (
	"context"
	"time"

	"slotswapper/internal/domain/user"
	"slotswapper/internal/infra"
	"slotswapper/internal/pkg/clock"
	"slotswapper/internal/pkg/errs"
	"slotswapper/internal/pkg/jwt"
	"slotswapper/internal/pkg/password"
	"slotswapper/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("user already exists")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserNotFound       = errs.New("user not found")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string, now time.Time) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error)
}

type AuthUseCase interface {
	Signup(ctx context.Context, name, email, plainPassword string) (string, *queries.UserView, error)
	Login(ctx context.Context, email, plainPassword string) (string, *queries.UserView, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authUseCaseImpl) Signup(ctx context.Context, name, email, plainPassword string) (string, *queries.UserView, error) {
	nameVO, err := user.NewName(name)
	if err != nil {
		return "", nil, err
	}
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return "", nil, err
	}
	passwordVO, err := user.NewPassword(plainPassword)
	if err != nil {
		return "", nil, err
	}

	hash, err := password.HashPassword(passwordVO.Value())
	if err != nil {
		return "", nil, err
	}

	id, err := a.userRepo.Create(ctx, nameVO.Value(), emailVO.Value(), hash, a.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(id)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	view := &queries.UserView{ID: id, Name: nameVO.Value(), Email: emailVO.Value()}
	return token, view, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (string, *queries.UserView, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	view, hash, err := a.userRepo.FindByEmail(ctx, emailVO.Value())
	if err != nil {
		// Missing user and wrong password read the same to the caller.
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hash, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, view, nil
}
