package usecase

import (
	"context"
	"errors"
	"strings"

	"patient-vitals-service/internal/converter"
	"patient-vitals-service/internal/delivery/dto"
	"patient-vitals-service/internal/domain/entity"
	"patient-vitals-service/internal/domain/repository"
	"patient-vitals-service/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("invalid email or password")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// Login verifies credentials by email. An unknown email and a wrong
// password return the same error so callers cannot tell which field
// was wrong.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := u.auditService.LogAction(ctx, u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin); err != nil {
		u.log.Warnf("Failed to audit login: %+v", err)
	}

	return converter.UserToResponse(user), nil
}

// Logout only records the audit event; detaching the session happens at
// the delivery layer.
func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	return u.auditService.LogAction(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionUserLogout)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
