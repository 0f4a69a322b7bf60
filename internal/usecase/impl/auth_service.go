package impl

import (
	"context"
	"log/slog"
	"strings"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/domain/service"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identity    service.IdentityProvider
	verifier    service.TokenVerifier
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Identity    service.IdentityProvider
	Verifier    service.TokenVerifier
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		identity:    params.Identity,
		verifier:    params.Verifier,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

// SignUp registers the user with the identity provider and creates the profile.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.Profile, *entity.AuthSession, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleBuyer
	}
	if !role.IsValid() || role == entity.RoleAdmin {
		return nil, nil, errors.Wrapf(domainerrors.ErrInvalidRole, "role %q cannot be self-assigned", role)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	fullName := strings.TrimSpace(input.FullName)

	identity, session, err := srv.identity.SignUp(ctx, email, input.Password, map[string]any{
		"full_name": fullName,
		"role":      role.String(),
	})
	if err != nil {
		return nil, nil, mapIdentityError(err)
	}

	profile := &entity.Profile{
		ID:         identity.ID,
		Email:      identity.Email,
		FullName:   fullName,
		Role:       role,
		DealerName: strings.TrimSpace(input.DealerName),
	}
	if profile.Email == "" {
		profile.Email = email
	}

	if err := srv.profileRepo.CreateProfile(ctx, profile); err != nil {
		if !errors.Is(err, repository.ErrDuplicateProfile) {
			return nil, nil, errors.Wrap(err, "failed to create profile")
		}

		// Signing up again before confirming the email returns the same auth user.
		existing, findErr := srv.profileRepo.FindProfileByID(ctx, identity.ID)
		if findErr != nil {
			return nil, nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "profile exists for another account")
		}
		profile = existing
	}

	contextLogger(ctx, srv.logger).Info("User signed up",
		slog.String("user_id", profile.ID.String()),
		slog.String("role", profile.Role.String()),
		slog.Bool("confirmed", session != nil),
	)

	if session != nil {
		session.Profile = profile
	}

	return profile, session, nil
}

// SignIn exchanges credentials for a session carrying the profile.
func (srv *authService) SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	identity, session, err := srv.identity.SignIn(ctx, strings.ToLower(strings.TrimSpace(email)), password)
	if err != nil {
		return nil, mapIdentityError(err)
	}

	profile, err := srv.ensureProfile(ctx, identity)
	if err != nil {
		return nil, err
	}
	if profile.IsSuspended {
		return nil, errors.WithStack(domainerrors.ErrAccountSuspended)
	}

	session.Profile = profile

	return session, nil
}

// Refresh rotates the session.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error) {
	identity, session, err := srv.identity.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, mapIdentityError(err)
	}

	profile, err := srv.ensureProfile(ctx, identity)
	if err != nil {
		return nil, err
	}
	if profile.IsSuspended {
		return nil, errors.WithStack(domainerrors.ErrAccountSuspended)
	}

	session.Profile = profile

	return session, nil
}

// SignOut revokes the caller's session.
func (srv *authService) SignOut(ctx context.Context, accessToken string) error {
	if err := srv.identity.SignOut(ctx, accessToken); err != nil {
		return mapIdentityError(err)
	}

	return nil
}

// Authenticate verifies the token and returns the caller's profile.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.Profile, error) {
	claims, err := srv.verifier.Verify(accessToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	profile, err := srv.ensureProfile(ctx, &entity.Identity{ID: claims.UserID, Email: claims.Email})
	if err != nil {
		return nil, err
	}
	if profile.IsSuspended {
		return nil, errors.WithStack(domainerrors.ErrAccountSuspended)
	}

	return profile, nil
}

// ensureProfile loads the profile of an auth user, creating a buyer profile for users
// that were registered outside the API.
func (srv *authService) ensureProfile(ctx context.Context, identity *entity.Identity) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindProfileByID(ctx, identity.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile = &entity.Profile{
		ID:    identity.ID,
		Email: identity.Email,
		Role:  entity.RoleBuyer,
	}
	if err := srv.profileRepo.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateProfile) {
			return srv.profileRepo.FindProfileByID(ctx, identity.ID)
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	contextLogger(ctx, srv.logger).Info("Created missing profile", slog.String("user_id", identity.ID.String()))

	return profile, nil
}

func mapIdentityError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return errors.Wrap(domainerrors.ErrInvalidCredentials, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, err.Error())
	case errors.Is(err, service.ErrInvalidRefreshToken):
		return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	default:
		return errors.Wrap(domainerrors.ErrIdentityProviderFailed.WithDetails(err.Error()), "identity provider call failed")
	}
}
