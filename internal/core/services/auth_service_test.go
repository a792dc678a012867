package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"spabook/internal/adapters/persistence/models"
	"spabook/internal/config"
	"spabook/internal/core/domain"
)

// fakeUserRepo is an in-memory UserRepository
type fakeUserRepo struct {
	users     map[string]*models.User // keyed by email
	nextID    uint
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (r *fakeUserRepo) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	// Atomic: on failure nothing is persisted
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = r.nextID
	r.nextID++
	profile.UserID = user.ID
	stored := *user
	stored.Profile = profile
	r.users[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

// fakeRefreshTokenRepo is an in-memory RefreshTokenRepository
type fakeRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	r.tokens[token.TokenHash] = token
	return nil
}

func (r *fakeRefreshTokenRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	token, ok := r.tokens[tokenHash]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return token, nil
}

func (r *fakeRefreshTokenRepo) Revoke(ctx context.Context, id uint) error { return nil }

func (r *fakeRefreshTokenRepo) RevokeByTokenHash(ctx context.Context, h string) error { return nil }

func (r *fakeRefreshTokenRepo) RevokeAllByUserID(ctx context.Context, id uint) error { return nil }

func (r *fakeRefreshTokenRepo) DeleteExpired(ctx context.Context) error { return nil }

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
	return NewAuthService(users, newFakeRefreshTokenRepo(), cfg), users
}

func TestCreateStaff(t *testing.T) {
	svc, users := newAuthFixture()

	resp, err := svc.CreateStaff(context.Background(), &CreateStaffInput{
		Email:       "new@spabook.local",
		Password:    "changeme1234",
		DisplayName: "New Masseur",
		Role:        "masseur",
	})
	if err != nil {
		t.Fatalf("CreateStaff() error = %v", err)
	}
	if resp.Role != "masseur" {
		t.Errorf("role = %q, want masseur", resp.Role)
	}

	stored, err := users.GetByEmail(context.Background(), "new@spabook.local")
	if err != nil {
		t.Fatalf("created user not stored: %v", err)
	}
	if stored.Profile == nil || stored.Profile.Role != domain.RoleMasseur {
		t.Errorf("stored profile = %+v, want masseur role", stored.Profile)
	}
}

func TestCreateStaffInvalidRole(t *testing.T) {
	svc, users := newAuthFixture()

	for _, role := range []string{"", "manager", "Admin"} {
		if _, err := svc.CreateStaff(context.Background(), &CreateStaffInput{
			Email:    "new@spabook.local",
			Password: "changeme1234",
			Role:     role,
		}); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("CreateStaff(role=%q) error = %v, want ErrInvalidRole", role, err)
		}
	}
	if len(users.users) != 0 {
		t.Error("user created despite invalid role")
	}
}

func TestCreateStaffDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	input := &CreateStaffInput{
		Email:    "dup@spabook.local",
		Password: "changeme1234",
		Role:     "admin",
	}
	if _, err := svc.CreateStaff(context.Background(), input); err != nil {
		t.Fatalf("first CreateStaff() error = %v", err)
	}
	if _, err := svc.CreateStaff(context.Background(), input); !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("second CreateStaff() error = %v, want ErrUserAlreadyExists", err)
	}
}

func TestCreateStaffInsertFailureIsRetryable(t *testing.T) {
	svc, users := newAuthFixture()
	users.createErr = errors.New("connection refused")

	input := &CreateStaffInput{
		Email:    "new@spabook.local",
		Password: "changeme1234",
		Role:     "masseur",
	}
	if _, err := svc.CreateStaff(context.Background(), input); err == nil {
		t.Fatal("CreateStaff() succeeded despite store failure")
	}

	// The failed attempt must not leave a partial user behind that
	// blocks a retry with "already exists"
	if len(users.users) != 0 {
		t.Fatalf("partial user persisted after failed create: %+v", users.users)
	}

	users.createErr = nil
	if _, err := svc.CreateStaff(context.Background(), input); err != nil {
		t.Fatalf("retry after failure error = %v", err)
	}
}
