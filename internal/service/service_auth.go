package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/roya-gateway/internal/config"
	"github.com/MKhiriev/roya-gateway/internal/crypto"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/store"
	"github.com/MKhiriev/roya-gateway/internal/utils"
	"github.com/MKhiriev/roya-gateway/models"
)

// authService is the concrete implementation of AuthService.
// It looks users up through the UserRepository and checks passwords with the
// PasswordHasher. Input is expected to be validated already.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign session tokens. Empty
	// disables token issuing.
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser hashes the password, normalises email and phone number and
// inserts the user. A duplicate reported by the remote schema is returned as
// is so that the caller can mirror it.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return models.PublicUser{}, fmt.Errorf("error hashing password: %w", err)
	}

	newUser := models.NewUser{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        normalizedEmail(req.Email),
		PhoneNumber:  normalizedPhone(req.PhoneNumber),
		Username:     req.Username,
		PasswordHash: hash,
		Birthday:     req.Birthday,
	}

	user, err := a.userRepository.InsertUser(ctx, newUser)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Str("username", req.Username).Msg("user creation ended with error")
		return models.PublicUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login classifies the identifier, fetches at most one matching user and
// verifies the password against the stored hash.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	identifier := ClassifyIdentifier(req.ResolvedIdentifier())

	user, err := a.userRepository.FindUserByIdentifier(ctx, identifier)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "*authService.Login").Stringer("kind", identifier.Kind).Msg("no user for identifier")
		return models.PublicUser{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by identifier failed")
		return models.PublicUser{}, fmt.Errorf("user search by identifier failed: %w", err)
	}

	if err = a.hasher.Verify(user.PasswordHash, req.Password); err != nil {
		log.Info().Err(err).Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("password verification failed")
		return models.PublicUser{}, ErrInvalidCredentials
	}

	if a.hasher.NeedsRehash(user.PasswordHash) {
		log.Info().Int64("user_id", user.ID).Msg("stored password hash uses a legacy scheme")
	}

	return user.Public(), nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.PublicUser) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, ErrTokenSigningDisabled
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies signature, issuer and expiry of signed.
func (a *authService) ParseToken(ctx context.Context, signed string) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, ErrTokenSigningDisabled
	}

	token, err := utils.ValidateAndParseJWTToken(signed, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token, nil
}

// normalizedEmail lowercases and trims email. Blank values become nil.
func normalizedEmail(email *string) *string {
	if email == nil {
		return nil
	}
	out := utils.NormalizeEmail(*email)
	if out == "" {
		return nil
	}
	return &out
}

// normalizedPhone keeps only the digits of phone. Values without digits
// become nil.
func normalizedPhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	out := utils.DigitsOnly(*phone)
	if out == "" {
		return nil
	}
	return &out
}
