package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hugh/gatekeeper/internal/api/validation"
	"github.com/hugh/gatekeeper/internal/database/models"
	"gorm.io/gorm"
)

type Service struct {
	db     *gorm.DB
	policy *PasswordPolicy
}

func NewService(db *gorm.DB, policy *PasswordPolicy) *Service {
	if policy == nil {
		policy = NewPasswordPolicy(0)
	}
	return &Service{db: db, policy: policy}
}

type RegisterInput struct {
	Email                string
	Password             string
	PasswordConfirmation string
	Role                 string
}

// Register validates and persists a new user. All field-level failures
// are collected into a single ValidationErrors value so the caller sees
// every invalid field at once.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	verrs := ValidationErrors{}

	switch {
	case input.Email == "":
		verrs.Add("email", "email is required")
	case !validation.IsValidEmail(input.Email):
		verrs.Add("email", "enter a valid email address")
	default:
		var count int64
		err := s.db.WithContext(ctx).Model(&models.User{}).
			Where("email = ?", input.Email).Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count > 0 {
			verrs.Add("email", "email already in use")
		}
	}

	s.policy.Validate(input.Password, input.PasswordConfirmation, verrs)

	var role models.Role
	if input.Role == "" {
		verrs.Add("role", "role is required")
	} else {
		var err error
		role, err = models.ParseRole(input.Role)
		if err != nil {
			verrs.Add("role", "role must be one of client, collaborator, admin")
		} else if err := s.checkAdminInvariant(ctx, s.db, role, role.Staff()); err != nil {
			var adminErrs ValidationErrors
			if !errors.As(err, &adminErrs) {
				return nil, err
			}
			for field, msg := range adminErrs {
				verrs.Add(field, msg)
			}
		}
	}

	if len(verrs) > 0 {
		return nil, verrs
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(input.Email, hash, role)

	// The pre-checks above are advisory. The transaction re-checks the
	// admin invariant and the unique indexes settle any remaining race.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkAdminInvariant(ctx, tx, role, role.Staff()); err != nil {
			return err
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, s.translateConstraint(ctx, err, role)
	}

	return user, nil
}

// Authenticate verifies an email/password pair. Unknown email, wrong
// password, and inactive account all collapse into ErrInvalidCredentials
// so callers cannot enumerate registered addresses.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			CheckPassword(password, string(dummyHash))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// CreateSuperuser is the privileged bootstrap path. It skips the
// confirmation and strength checks the public path runs, matching how
// an operator provisions the first admin, but the single-admin index
// still rejects a second one.
func (s *Service) CreateSuperuser(ctx context.Context, email, password string) (*models.User, error) {
	verrs := ValidationErrors{}
	switch {
	case email == "":
		verrs.Add("email", "email is required")
	case !validation.IsValidEmail(email):
		verrs.Add("email", "enter a valid email address")
	}
	if password == "" {
		verrs.Add("password", "password is required")
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(email, hash, models.RoleAdmin)
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, s.translateConstraint(ctx, err, models.RoleAdmin)
	}

	return user, nil
}

func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every user ordered by role.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("role").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// adminExists is the one store query behind both the validation
// pre-check and the transactional re-check.
func (s *Service) adminExists(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// checkAdminInvariant rejects a registration that would create a second
// admin. The checker holds no state; the db handle decides whether it
// runs against the live store or inside a transaction.
func (s *Service) checkAdminInvariant(ctx context.Context, db *gorm.DB, role models.Role, isStaff bool) error {
	if role != models.RoleAdmin && !isStaff {
		return nil
	}

	exists, err := s.adminExists(ctx, db)
	if err != nil {
		return err
	}
	if exists {
		return ValidationErrors{"role": "an admin user already exists"}
	}
	return nil
}

// translateConstraint maps unique-index violations raised by the store
// into the matching field error instead of leaking a raw driver error.
func (s *Service) translateConstraint(ctx context.Context, err error, role models.Role) error {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}

	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	if role == models.RoleAdmin {
		if exists, qerr := s.adminExists(ctx, s.db); qerr == nil && exists {
			return ValidationErrors{"role": "an admin user already exists"}
		}
	}
	return ValidationErrors{"email": "email already in use"}
}
