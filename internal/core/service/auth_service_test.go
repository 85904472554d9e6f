package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pawprint/animals-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[int64]domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]domain.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, username, passwordHash string, isAdmin bool) (int64, error) {
	for _, u := range r.users {
		if u.Username == username {
			return 0, domain.ErrUserExists
		}
	}
	id := r.nextID
	r.nextID++
	r.users[id] = domain.User{ID: id, Username: username, Password: passwordHash, IsAdmin: isAdmin}
	return id, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type stubTokenStore struct {
	tokens map[string]int64
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]int64)}
}

func (s *stubTokenStore) Save(_ context.Context, tokenID string, userID int64, _ time.Duration) error {
	s.tokens[tokenID] = userID
	return nil
}

func (s *stubTokenStore) Exists(_ context.Context, tokenID string) (bool, error) {
	_, ok := s.tokens[tokenID]
	return ok, nil
}

func (s *stubTokenStore) Revoke(_ context.Context, tokenID string) error {
	delete(s.tokens, tokenID)
	return nil
}

func newTestAuthService(repo *stubUserRepo, tokens *stubTokenStore) *AuthService {
	return NewAuthService(repo, tokens, "secret", time.Hour, bcrypt.MinCost, zerolog.Nop())
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubTokenStore())

	user, err := svc.Register(context.Background(), "alice", "pass123", false)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Password == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected refetched record with id, got %+v", user)
	}
}

func TestAuthService_Register_PersistsIsAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubTokenStore())

	user, err := svc.Register(context.Background(), "root", "pass", true)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if !user.IsAdmin {
		t.Fatalf("is_admin flag not persisted")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubTokenStore())

	if _, err := svc.Register(context.Background(), "", "pass", false); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", false); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubTokenStore())

	if _, err := svc.Register(context.Background(), "bob", "pass", false); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass2", false); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	tokens := newStubTokenStore()
	svc := newTestAuthService(repo, tokens)

	if _, err := svc.Register(context.Background(), "carol", "s3cret", true); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["is_admin"] != true {
		t.Fatalf("expected is_admin claim, got %v", claims["is_admin"])
	}

	jti, _ := claims["jti"].(string)
	if active, _ := tokens.Exists(context.Background(), jti); !active {
		t.Fatalf("token id not registered in store")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubTokenStore())

	_, _ = svc.Register(context.Background(), "dave", "goodpass", false)
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubTokenStore())

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	repo := newStubUserRepo()
	tokens := newStubTokenStore()
	svc := newTestAuthService(repo, tokens)

	_, _ = svc.Register(context.Background(), "erin", "pass", false)
	token, _, err := svc.Login(context.Background(), "erin", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	jti, _ := claims["jti"].(string)

	if err := svc.Logout(context.Background(), jti); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if active, _ := tokens.Exists(context.Background(), jti); active {
		t.Fatalf("token still active after logout")
	}
}
