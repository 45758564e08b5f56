package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/delivery/http/middleware"
	"maternal-care-backend/internal/domain/entity"
	"maternal-care-backend/internal/domain/repository"
	"maternal-care-backend/internal/service"
	"maternal-care-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserNotInContext   = errors.New("user not found in context")
	ErrInvalidRole        = errors.New("invalid role")
	ErrWrongPassword      = errors.New("old password is incorrect")
)

const tokenScanBatch = 100

type AuthUsecase interface {
	Login(ctx context.Context, role string, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	midwifeRepo  repository.MidwifeRepository
	motherRepo   repository.MotherRepository
	mohRepo      repository.MOHOfficerRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	midwifeRepo repository.MidwifeRepository,
	motherRepo repository.MotherRepository,
	mohRepo repository.MOHOfficerRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		midwifeRepo:  midwifeRepo,
		motherRepo:   motherRepo,
		mohRepo:      mohRepo,
		auditService: auditService,
		jwtService:   jwtService,
		redisClient:  redisClient,
	}
}

// account is the credential view shared by the three account tables
type account struct {
	ID        uuid.UUID
	Username  string
	Password  string
	Suspended bool
}

func (u *authUsecase) findAccountByUsername(db *gorm.DB, role, username string) (*account, error) {
	switch role {
	case entity.RoleMidwife:
		m, err := u.midwifeRepo.FindByUsername(db, username)
		if err != nil || m == nil {
			return nil, err
		}
		return &account{ID: m.ID, Username: m.Username, Password: m.Password, Suspended: m.IsSuspended()}, nil
	case entity.RoleMother:
		m, err := u.motherRepo.FindByNIC(db, username)
		if err != nil || m == nil {
			return nil, err
		}
		return &account{ID: m.ID, Username: username, Password: m.Password}, nil
	case entity.RoleMOH:
		o, err := u.mohRepo.FindByUsername(db, username)
		if err != nil || o == nil {
			return nil, err
		}
		return &account{ID: o.ID, Username: o.Username, Password: o.Password}, nil
	}
	return nil, ErrInvalidRole
}

func (u *authUsecase) findAccountByID(db *gorm.DB, role string, id uuid.UUID) (*account, error) {
	switch role {
	case entity.RoleMidwife:
		m, err := u.midwifeRepo.FindByID(db, id)
		if err != nil || m == nil {
			return nil, err
		}
		return &account{ID: m.ID, Username: m.Username, Password: m.Password, Suspended: m.IsSuspended()}, nil
	case entity.RoleMother:
		m, err := u.motherRepo.FindByID(db, id)
		if err != nil || m == nil {
			return nil, err
		}
		return &account{ID: m.ID, Username: stringOrEmpty(m.NIC), Password: m.Password}, nil
	case entity.RoleMOH:
		o, err := u.mohRepo.FindByID(db, id)
		if err != nil || o == nil {
			return nil, err
		}
		return &account{ID: o.ID, Username: o.Username, Password: o.Password}, nil
	}
	return nil, ErrInvalidRole
}

func (u *authUsecase) Login(ctx context.Context, role string, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	acct, err := u.findAccountByUsername(u.db.WithContext(ctx), role, req.Username)
	if err != nil {
		if errors.Is(err, ErrInvalidRole) {
			return nil, err
		}
		u.log.Warnf("Failed to find %s account %s: %+v", role, req.Username, err)
		return nil, err
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if acct.Suspended {
		return nil, ErrAccountSuspended
	}

	tokens, err := u.issueTokens(ctx, acct.ID, acct.Username, role)
	if err != nil {
		return nil, err
	}

	u.recordSessionEvent(middleware.WithIdentity(ctx, acct.ID, role), entity.AuditActionUserLogin, role, acct.ID)

	u.log.Infof("User %s logged in as %s", acct.ID, role)
	return tokens, nil
}

func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotInContext
	}

	keys := make([]string, 0, 2)
	if tokenID, ok := middleware.GetTokenIDFromContext(ctx); ok {
		keys = append(keys, middleware.AccessTokenKey(userID, tokenID))
	}

	if refreshToken != "" {
		claims, err := u.jwtService.ValidateToken(refreshToken)
		if err == nil && claims.TokenType == jwt.RefreshToken && claims.UserID == userID {
			keys = append(keys, middleware.RefreshTokenKey(userID, claims.TokenID))
		}
	}

	if len(keys) > 0 {
		if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
			u.log.Warnf("Failed to delete tokens for user %s: %+v", userID, err)
			return err
		}
	}

	role, _ := middleware.GetRoleFromContext(ctx)
	u.recordSessionEvent(ctx, entity.AuditActionUserLogout, role, userID)
	return nil
}

// recordSessionEvent audits login and logout. Failures do not block the session.
func (u *authUsecase) recordSessionEvent(ctx context.Context, action, role string, userID uuid.UUID) {
	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), action, role, userID.String(), nil); err != nil {
		u.log.Warnf("Failed to audit %s for %s: %+v", action, userID, err)
	}
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken || !entity.IsValidRole(claims.Role) {
		return nil, ErrInvalidToken
	}

	// Check if refresh token exists in Redis
	refreshKey := middleware.RefreshTokenKey(claims.UserID, claims.TokenID)
	deleted, err := u.redisClient.Del(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to consume refresh token: %+v", err)
		return nil, err
	}
	if deleted == 0 {
		return nil, ErrTokenRevoked
	}

	acct, err := u.findAccountByID(u.db.WithContext(ctx), claims.Role, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find account %s: %+v", claims.UserID, err)
		return nil, err
	}
	if acct == nil {
		return nil, ErrUserNotFound
	}
	if acct.Suspended {
		return nil, ErrAccountSuspended
	}

	return u.issueTokens(ctx, acct.ID, acct.Username, claims.Role)
}

func (u *authUsecase) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotInContext
	}
	role, _ := middleware.GetRoleFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	acct, err := u.findAccountByID(tx, role, userID)
	if err != nil {
		u.log.Warnf("Failed to find account %s: %+v", userID, err)
		return err
	}
	if acct == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.Password), []byte(req.OldPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	switch role {
	case entity.RoleMidwife:
		err = u.midwifeRepo.UpdatePassword(tx, userID, hashed)
	case entity.RoleMother:
		err = u.motherRepo.UpdatePassword(tx, userID, hashed)
	case entity.RoleMOH:
		err = u.mohRepo.UpdatePassword(tx, userID, hashed)
	}
	if err != nil {
		u.log.Warnf("Failed to update password for %s: %+v", userID, err)
		return err
	}

	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionPasswordChange, role, userID.String(), nil, nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	// Every session of the account ends with the old password.
	return u.revokeAllUserTokens(ctx, userID)
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, username, role string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, username, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, username, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	pipe := u.redisClient.TxPipeline()
	pipe.Set(ctx, middleware.AccessTokenKey(userID, accessTokenID), role, u.jwtService.GetAccessExpiry())
	pipe.Set(ctx, middleware.RefreshTokenKey(userID, refreshTokenID), role, u.jwtService.GetRefreshExpiry())
	if _, err := pipe.Exec(ctx); err != nil {
		u.log.Warnf("Failed to store tokens in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		Role:         role,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// revokeAllUserTokens revokes all tokens for a user
func (u *authUsecase) revokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	for _, pattern := range []string{
		fmt.Sprintf("access_token:%s:*", userID.String()),
		fmt.Sprintf("refresh_token:%s:*", userID.String()),
	} {
		iter := u.redisClient.Scan(ctx, 0, pattern, tokenScanBatch).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			u.log.Warnf("Failed to scan token keys %s: %+v", pattern, err)
			return err
		}
		if len(keys) == 0 {
			continue
		}
		if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
			u.log.Warnf("Failed to delete token keys: %+v", err)
			return err
		}
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// isDuplicateKeyError checks if the error is a unique constraint violation
// on a constraint containing the given name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
