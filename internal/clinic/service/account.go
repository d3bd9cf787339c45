package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/internal/clinic/metrics"
	"github.com/meadowhealth/clinic/internal/clinic/store"
	"github.com/meadowhealth/clinic/pkg/cryptox"
	"github.com/meadowhealth/clinic/pkg/idx"
	"github.com/meadowhealth/clinic/pkg/passwordx"
	"github.com/meadowhealth/clinic/pkg/slogx"
)

// AccountService owns credential registration, authentication and password
// change. Profile provisioning rides along in the registration transaction.
type AccountService struct {
	Store store.Store
}

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            domain.Role
}

// validate applies the form-level checks shared with the original web forms:
// required fields, password confirmation, then the password policy with the
// username and email as context. All policy violations are joined into one
// message on the password field.
func (in RegisterInput) validate() *ValidationError {
	fields := make(map[string]string)

	if strings.TrimSpace(in.Username) == "" {
		fields["username"] = "Username is required."
	}
	if strings.TrimSpace(in.Email) == "" || !strings.Contains(in.Email, "@") {
		fields["email"] = "A valid email address is required."
	}
	if in.Password == "" {
		fields["password"] = "Password is required."
	}

	if in.Password != "" && in.ConfirmPassword != "" && in.Password != in.ConfirmPassword {
		fields["confirm_password"] = passwordx.MsgConfirmNoMatch
	} else if in.ConfirmPassword == "" {
		fields["confirm_password"] = "Password confirmation is required."
	}

	if in.Password != "" {
		if violations := passwordx.Validate(in.Password, in.Username, in.Email); len(violations) > 0 {
			fields["password"] = passwordx.Join(violations)
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Register creates the identity and its role-appropriate profile in one
// transaction. The UNIQUE constraints on username and email are the only
// uniqueness check; a violation rolls the whole thing back and surfaces as
// ErrDuplicateIdentity.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	if verr := in.validate(); verr != nil {
		return domain.User{}, verr
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return provisionProfile(ctx, tx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateIdentity
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	metrics.Registrations.WithLabelValues(user.Role.String()).Inc()
	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// provisionProfile creates the role-matching profile with the username as a
// placeholder display name, exactly what the profile forms later overwrite.
func provisionProfile(ctx context.Context, tx store.Tx, user domain.User) error {
	switch user.Role {
	case domain.RoleDoctor:
		return tx.DoctorProfiles().Create(ctx, domain.DoctorProfile{
			ID:       idx.New().String(),
			UserID:   user.ID,
			FullName: user.Username,
		})
	default:
		return tx.PatientProfiles().Create(ctx, domain.PatientProfile{
			ID:       idx.New().String(),
			UserID:   user.ID,
			FullName: user.Username,
		})
	}
}

// Authenticate resolves username+role and verifies the password. All failure
// modes collapse into ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, username, password string, role domain.Role) (domain.User, error) {
	user, err := s.Store.Users().GetUserByUsernameAndRole(ctx, username, role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash verification anyway so an unknown username costs
			// the same wall time as a wrong password.
			_ = cryptox.VerifyPassword(password, dummyHash())
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// ChangePassword re-verifies the old password before applying the policy to
// the new one. A wrong old password leaves the stored hash untouched.
func (s *AccountService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword, confirmNewPassword string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The session references a user that no longer exists. Treat it
			// like bad credentials so the client is sent back to login.
			return ErrInvalidCredentials
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(oldPassword, user.PasswordHash); err != nil {
		return fieldError("old_password", "Old password is incorrect.")
	}

	if newPassword != confirmNewPassword {
		return fieldError("confirm_new_password", passwordx.MsgConfirmNoMatch)
	}
	if violations := passwordx.Validate(newPassword, user.Username, user.Email); len(violations) > 0 {
		return fieldError("new_password", passwordx.Join(violations))
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	slogx.FromContext(ctx).Info("password changed", "user_id", userID)
	return nil
}

var (
	dummyHashOnce sync.Once
	dummyHashVal  string
)

// dummyHash returns a throwaway Argon2id hash used to equalize timing on
// unknown-user login attempts. Computed once; Authenticate runs on
// concurrent request goroutines.
func dummyHash() string {
	dummyHashOnce.Do(func() {
		if h, err := cryptox.HashPassword("timing-equalizer"); err == nil {
			dummyHashVal = h
		}
	})
	return dummyHashVal
}
