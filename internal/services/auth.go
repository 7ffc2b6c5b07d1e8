package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	"github.com/focusbridge/focusbridge-backend/internal/domain/user"
	userrepos "github.com/focusbridge/focusbridge-backend/internal/data/repos/user"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/ctxutil"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

type RegisterInput struct {
	Email           string     `json:"email"`
	Password        string     `json:"password"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Role            string     `json:"role"`
	LinkedTeacherID *uuid.UUID `json:"linkedTeacherId"`
}

type AuthService interface {
	RegisterUser(ctx context.Context, input RegisterInput) (*types.Profile, error)
	LoginUser(ctx context.Context, email, password string) (accessToken, refreshToken string, err error)
	LogoutUser(ctx context.Context, userID uuid.UUID) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	profiles     userrepos.ProfileRepo
	userTokens   userrepos.UserTokenRepo
	jwtSecretKey string
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	profiles userrepos.ProfileRepo,
	userTokens userrepos.UserTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:           db,
		log:          log.With("service", "AuthService"),
		profiles:     profiles,
		userTokens:   userTokens,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, input RegisterInput) (*types.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, newValidationError("an email is required to register")
	}
	if input.Password == "" {
		return nil, newValidationError("a password is required to register")
	}
	if input.FirstName == "" || input.LastName == "" {
		return nil, newValidationError("a first and last name are required to register")
	}
	role := input.Role
	if role == "" {
		role = user.RoleTeacher
	}
	if role != user.RoleTeacher && role != user.RoleParent {
		return nil, newValidationError("invalid role: %s", role)
	}
	if role == user.RoleParent && input.LinkedTeacherID == nil {
		return nil, newValidationError("a parent account needs a linked teacher")
	}

	exists, err := as.profiles.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user email: %w", err)
	}
	if exists {
		return nil, newValidationError("email is already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := &types.Profile{
		ID:              uuid.New(),
		Email:           email,
		Password:        string(hash),
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		Role:            role,
		LinkedTeacherID: input.LinkedTeacherID,
	}
	created, err := as.profiles.Create(ctx, nil, []*types.Profile{profile})
	if err != nil {
		return nil, &PersistenceError{Op: "profile insert", Err: err}
	}
	return created[0], nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", "", newValidationError("email and password are required to login")
	}

	profiles, err := as.profiles.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return "", "", fmt.Errorf("error retrieving user by email: %w", err)
	}
	if len(profiles) == 0 {
		return "", "", fmt.Errorf("invalid email or password")
	}
	profile := profiles[0]

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return "", "", fmt.Errorf("invalid email or password")
	}

	var accessToken, refreshToken string
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tok, genErr := as.generateAccessToken(profile)
		if genErr != nil {
			return fmt.Errorf("generate access token: %w", genErr)
		}
		accessToken = tok
		refreshToken = uuid.New().String()

		if _, crErr := as.userTokens.Create(ctx, tx, &types.UserToken{
			UserID:       profile.ID,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		}); crErr != nil {
			return fmt.Errorf("store refresh token: %w", crErr)
		}
		return nil
	}); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (as *authService) LogoutUser(ctx context.Context, userID uuid.UUID) error {
	return as.userTokens.DeleteByUserIDs(ctx, nil, []uuid.UUID{userID})
}

// SetContextFromToken verifies the access token and attaches RequestData so
// handlers downstream know who is acting and in what role.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return ctx, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, fmt.Errorf("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return ctx, fmt.Errorf("invalid token subject")
	}
	role, _ := claims["role"].(string)

	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{UserID: userID, Role: role}), nil
}

func (as *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	profiles, err := as.profiles.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("profile not found")
	}
	return profiles[0], nil
}

func (as *authService) generateAccessToken(profile *types.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  profile.ID.String(),
		"role": profile.Role,
		"exp":  jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
		"iat":  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}
