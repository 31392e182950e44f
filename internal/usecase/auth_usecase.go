package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/6DaddyCoders9/Salon-App/internal/converter"
	"github.com/6DaddyCoders9/Salon-App/internal/delivery/dto"
	"github.com/6DaddyCoders9/Salon-App/internal/delivery/http/middleware"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/repository"
	"github.com/6DaddyCoders9/Salon-App/internal/service"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
	"github.com/6DaddyCoders9/Salon-App/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotAuthenticated   = errors.New("session not found in context")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	LogoutAll(ctx context.Context) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context) (*dto.UserResponse, error)
}

type authUsecase struct {
	client         *appwrite.Client
	log            *logrus.Logger
	accountRepo    repository.AccountRepository
	userRepo       repository.UserRepository
	jwtService     *jwt.JWTService
	sessionService *service.SessionService
	auditService   service.AuditService
}

func NewAuthUsecase(
	client *appwrite.Client,
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	sessionService *service.SessionService,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		client:         client,
		log:            log,
		accountRepo:    accountRepo,
		userRepo:       userRepo,
		jwtService:     jwtService,
		sessionService: sessionService,
		auditService:   auditService,
	}
}

// Register creates the platform account, signs it in and stores the profile document.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	account, err := u.accountRepo.Create(ctx, u.client, req.Email, req.Password, req.Username)
	if err != nil {
		if appwrite.IsConflict(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create account for %s: %+v", req.Email, err)
		return nil, fmt.Errorf("create account: %w", err)
	}

	avatarURL := u.accountRepo.InitialsAvatar(u.client, req.Username)

	session, err := u.signIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		AccountID: account.ID,
		Email:     req.Email,
		Username:  req.Username,
		Avatar:    avatarURL,
	}
	if err := u.userRepo.Create(ctx, u.client.WithSession(session.Secret), user); err != nil {
		u.log.Warnf("Failed to create user document for account %s: %+v", account.ID, err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	tokens, err := u.issueTokens(ctx, account.ID, req.Email, session)
	if err != nil {
		return nil, err
	}

	u.auditService.LogCreate(ctx, account.ID, entity.AuditActionUserRegister, "user", user.ID, converter.UserToResponse(user))
	u.log.Infof("User registered: account=%s, user=%s", account.ID, user.ID)

	return &dto.AuthResponse{
		User:  converter.UserToResponse(user),
		Token: tokens,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	session, err := u.signIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	tokens, err := u.issueTokens(ctx, session.AccountID, req.Email, session)
	if err != nil {
		return nil, err
	}

	u.auditService.LogEvent(ctx, session.AccountID, entity.AuditActionUserLogin, entity.JSON{"session_id": session.ID})

	return &dto.AuthResponse{Token: tokens}, nil
}

// signIn opens an email/password session on the platform.
func (u *authUsecase) signIn(ctx context.Context, email, password string) (*entity.Session, error) {
	session, err := u.accountRepo.CreateSession(ctx, u.client, email, password)
	if err != nil {
		if appwrite.IsUnauthorized(err) || appwrite.IsBadRequest(err) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Failed to create session for %s: %+v", email, err)
		return nil, fmt.Errorf("create session: %w", err)
	}
	if session.Secret == "" {
		u.log.Warnf("Session %s was created without a secret", session.ID)
		return nil, errors.New("create session: platform returned no session secret")
	}
	return session, nil
}

// Logout deletes the current platform session and revokes the issued tokens.
func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}
	secret, ok := middleware.GetSessionSecretFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	// An already expired platform session still gets its tokens revoked
	if err := u.accountRepo.DeleteCurrentSession(ctx, u.client.WithSession(secret)); err != nil && !appwrite.IsUnauthorized(err) {
		u.log.Warnf("Failed to delete session for account %s: %+v", accountID, err)
		return fmt.Errorf("delete session: %w", err)
	}

	if err := u.sessionService.Revoke(ctx, jwt.AccessToken, accountID, accessTokenID); err != nil {
		return err
	}
	if refreshTokenID != "" {
		if err := u.sessionService.Revoke(ctx, jwt.RefreshToken, accountID, refreshTokenID); err != nil {
			return err
		}
	}

	sessionID, _ := middleware.GetSessionIDFromContext(ctx)
	u.auditService.LogEvent(ctx, accountID, entity.AuditActionUserLogout, entity.JSON{"session_id": sessionID})
	return nil
}

// LogoutAll deletes every platform session of the account and revokes all
// tokens issued to it, on every device.
func (u *authUsecase) LogoutAll(ctx context.Context) error {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}
	secret, ok := middleware.GetSessionSecretFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	if err := u.accountRepo.DeleteAllSessions(ctx, u.client.WithSession(secret)); err != nil && !appwrite.IsUnauthorized(err) {
		u.log.Warnf("Failed to delete sessions for account %s: %+v", accountID, err)
		return fmt.Errorf("delete sessions: %w", err)
	}

	if err := u.sessionService.RevokeAll(ctx, accountID); err != nil {
		return err
	}

	u.auditService.LogEvent(ctx, accountID, entity.AuditActionUserLogoutAll, nil)
	return nil
}

// RefreshToken rotates the token pair; the platform session stays the same.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	secret, err := u.sessionService.Lookup(ctx, jwt.RefreshToken, claims.AccountID, claims.TokenID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return nil, ErrTokenRevoked
		}
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}

	if err := u.sessionService.Revoke(ctx, jwt.RefreshToken, claims.AccountID, claims.TokenID); err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, claims.AccountID, claims.Email, &entity.Session{
		ID:        claims.SessionID,
		AccountID: claims.AccountID,
		Secret:    secret,
	})
}

// GetCurrentUser returns the profile document of the signed-in account.
func (u *authUsecase) GetCurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	user, err := CurrentUser(ctx, u.client, u.accountRepo, u.userRepo)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) && !errors.Is(err, ErrNotAuthenticated) {
			u.log.Warnf("Failed to get current user: %+v", err)
		}
		return nil, err
	}
	return converter.UserToResponse(user), nil
}

// CurrentUser resolves the account behind the request session and its profile document.
func CurrentUser(ctx context.Context, client *appwrite.Client, accountRepo repository.AccountRepository, userRepo repository.UserRepository) (*entity.User, error) {
	secret, ok := middleware.GetSessionSecretFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	sessionClient := client.WithSession(secret)

	account, err := accountRepo.Get(ctx, sessionClient)
	if err != nil {
		if appwrite.IsUnauthorized(err) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	user, err := userRepo.FindByAccountID(ctx, sessionClient, account.ID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, accountID, email string, session *entity.Session) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(accountID, email, session.ID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(accountID, email, session.ID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.sessionService.Store(ctx, jwt.AccessToken, accountID, accessTokenID, session.Secret, u.jwtService.GetAccessExpiry()); err != nil {
		return nil, err
	}
	if err := u.sessionService.Store(ctx, jwt.RefreshToken, accountID, refreshTokenID, session.Secret, u.jwtService.GetRefreshExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
