package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gashorafarm/farmconnect/internal/access"
	"github.com/gashorafarm/farmconnect/internal/cart"
	"github.com/gashorafarm/farmconnect/internal/models"
	"github.com/gashorafarm/farmconnect/internal/repo"
	"github.com/gashorafarm/farmconnect/internal/transport"
	pkg_hash "github.com/gashorafarm/farmconnect/pkg/hash"
	"github.com/gashorafarm/farmconnect/pkg/logging"
	"github.com/gashorafarm/farmconnect/pkg/tokens"
)

const sessionKeyPrefix = "session:"

const minPasswordLen = 6

// Profile is the signed-in identity kept in the session store.
type Profile struct {
	UserID   uuid.UUID      `json:"id"`
	Email    string         `json:"email"`
	Name     string         `json:"name"`
	Role     access.Role    `json:"role"`
	FarmerID *uuid.UUID     `json:"farmer_id,omitempty"`
	Farmer   *models.Farmer `json:"farmer,omitempty"`
}

func (p Profile) Actor() Actor {
	return Actor{UserID: p.UserID, Role: p.Role, FarmerID: p.FarmerID}
}

type AuthService struct {
	Repo     *repo.GormRepo
	Sessions cart.Storage
	Secret   []byte
	Now      func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func profileOf(u *models.User) (Profile, error) {
	role, err := access.ParseRole(u.Role)
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		UserID:   u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     role,
		FarmerID: u.FarmerID,
		Farmer:   u.Farmer,
	}, nil
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*Profile, error) {
	l := logging.FromContext(ctx).With("svc", "auth.authenticate")

	user, err := s.Repo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeErr("find user", err)
	}
	if !pkg_hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if pkg_hash.IsLegacy(user.PasswordHash) {
		if h, err := pkg_hash.HashPassword(password); err == nil {
			if err := s.Repo.UpdatePasswordHash(ctx, user.ID, h); err != nil {
				l.Warn("rehash_failed", "user_id", user.ID, "error", err)
			}
		}
	}

	p, err := profileOf(user)
	if err != nil {
		l.Error("authenticate_error", "reason", "stored role is unknown", "user_id", user.ID, "error", err)
		return nil, ErrInvalidCredentials
	}
	return &p, nil
}

// Register creates a user or farmer account. Farmers start unverified.
func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*Profile, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	switch {
	case email == "" || !strings.Contains(email, "@"):
		return nil, invalid("a valid email is required")
	case len(req.Password) < minPasswordLen:
		return nil, invalid("password must be at least %d characters", minPasswordLen)
	case name == "":
		return nil, invalid("name is required")
	}

	role := access.RoleUser
	if req.Role != "" {
		r, err := access.ParseRole(req.Role)
		if err != nil {
			return nil, invalid("unknown role %q", req.Role)
		}
		role = r
	}
	if role != access.RoleUser && role != access.RoleFarmer {
		return nil, invalid("role %q cannot be registered", role)
	}

	var farmer *models.Farmer
	if role == access.RoleFarmer {
		if req.Farmer == nil || strings.TrimSpace(req.Farmer.Location) == "" {
			return nil, invalid("farm location is required")
		}
		image := req.Farmer.ImageURL
		if image == "" {
			image = "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
		}
		farmer = &models.Farmer{
			Name:       name,
			Location:   strings.TrimSpace(req.Farmer.Location),
			Phone:      req.Farmer.Phone,
			NationalID: req.Farmer.NationalID,
			ImageURL:   image,
			JoinedDate: s.now().UTC().Format(time.DateOnly),
		}
	}

	pwHash, err := pkg_hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: pwHash,
		Name:         name,
		Role:         string(role),
	}
	if farmer != nil {
		user.Phone = farmer.Phone
	}
	if err := s.Repo.CreateAccount(ctx, user, farmer); err != nil {
		return nil, storeErr("create account", err)
	}

	p, err := profileOf(user)
	if err != nil {
		return nil, err
	}
	l.Info("register_success", "user_id", user.ID, "role", role)
	return &p, nil
}

// SignIn stores the profile under a fresh session id and returns the signed token.
func (s *AuthService) SignIn(ctx context.Context, p Profile) (string, error) {
	sid := uuid.NewString()
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	if err := s.Sessions.Save(ctx, sessionKeyPrefix+sid, data); err != nil {
		return "", storeErr("save session", err)
	}
	return tokens.NewSessionToken(p.UserID.String(), string(p.Role), sid, s.now(), s.Secret)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *Profile, error) {
	p, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	token, err := s.SignIn(ctx, *p)
	if err != nil {
		return "", nil, err
	}
	return token, p, nil
}

// Resolve verifies the token and loads the stored profile.
func (s *AuthService) Resolve(ctx context.Context, token string) (*Profile, error) {
	claims, err := tokens.SessionClaimsFromToken(token, s.Secret)
	if err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}
	data, err := s.Sessions.Load(ctx, sessionKeyPrefix+claims.ID)
	if err != nil {
		return nil, storeErr("load session", err)
	}
	if data == nil {
		return nil, ErrInvalidSession
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil || p.UserID.String() != claims.Subject {
		return nil, ErrInvalidSession
	}
	return &p, nil
}

func (s *AuthService) SignOut(ctx context.Context, token string) error {
	claims, err := tokens.SessionClaimsFromToken(token, s.Secret)
	if err != nil {
		return nil
	}
	if err := s.Sessions.Delete(ctx, sessionKeyPrefix+claims.ID); err != nil {
		return storeErr("delete session", err)
	}
	return nil
}

// EnsureAdmin creates the admin account unless the email is already registered.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password, name string) (bool, error) {
	email = normalizeEmail(email)
	if _, err := s.Repo.FindUserByEmail(ctx, email); err == nil {
		return false, nil
	} else if !repo.IsNotFound(err) {
		return false, storeErr("find user", err)
	}

	pwHash, err := pkg_hash.HashPassword(password)
	if err != nil {
		return false, err
	}
	err = s.Repo.CreateAccount(ctx, &models.User{
		Email:        email,
		PasswordHash: pwHash,
		Name:         name,
		Role:         string(access.RoleAdmin),
	}, nil)
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return false, nil
	}
	if err != nil {
		return false, storeErr("create admin", err)
	}
	return true, nil
}
