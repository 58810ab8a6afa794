package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/AndrivA89/mindnotes/internal/domain"
)

type userKey struct{}

// WithUser returns a context carrying the signed-in user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the user stored by WithUser, or nil.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey{}).(*domain.User)
	return user
}

type SessionUseCase struct {
	store  UserStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewSessionUseCase(store UserStore, logger zerolog.Logger) *SessionUseCase {
	return &SessionUseCase{
		store:  store,
		logger: logger.With().Str("component", "session").Logger(),
		now:    time.Now,
	}
}

// Login accepts the demo account or any non-empty email with a password of
// at least six characters.
func (uc *SessionUseCase) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	if !creds.IsDemo() {
		if err := validate.Struct(creds); err != nil {
			uc.logger.Warn().Bool("email_present", creds.Email != "").Msg("login rejected")
			return nil, validationError(err)
		}
	}
	return uc.start(ctx, creds.Email, "login")
}

func (uc *SessionUseCase) Register(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	if err := validate.Struct(creds); err != nil {
		uc.logger.Warn().Bool("email_present", creds.Email != "").Msg("registration rejected")
		return nil, validationError(err)
	}
	return uc.start(ctx, creds.Email, "register")
}

func (uc *SessionUseCase) start(ctx context.Context, email, action string) (*domain.User, error) {
	user := domain.NewUser(email, uc.now().UTC())
	if err := uc.store.SaveUser(ctx, &user); err != nil {
		uc.logger.Error().Err(err).Str("action", action).Msg("persist session failed")
		return nil, err
	}
	uc.logger.Info().Str("action", action).Str("user_id", user.ID).Msg("session started")
	return &user, nil
}

func (uc *SessionUseCase) Logout(ctx context.Context) error {
	if err := uc.store.ClearUser(ctx); err != nil {
		uc.logger.Error().Err(err).Msg("clear session failed")
		return err
	}
	uc.logger.Info().Msg("session cleared")
	return nil
}

// CurrentUser returns the persisted session user or domain.ErrNoSession.
func (uc *SessionUseCase) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, err := uc.store.LoadUser(ctx)
	if err != nil && !errors.Is(err, domain.ErrNoSession) {
		uc.logger.Error().Err(err).Msg("load session failed")
	}
	return user, err
}
