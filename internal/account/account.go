package account

import (
	"errors"
	"strings"

	"coffee_backoffice/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// dummyHash is compared against when the login is unknown, so an
// authentication attempt costs one bcrypt comparison either way and the
// response does not reveal whether the login exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("no-such-account"), bcrypt.DefaultCost)

// Authenticate looks up a staff account by login and verifies the password
// against the stored bcrypt hash. Unknown login and wrong password both
// return ErrAuthenticationFailed, indistinguishably.
func Authenticate(db *gorm.DB, login, password string) (domain.User, error) {
	var user domain.User
	err := db.Where("login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Burn a comparison so timing matches the found case
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return domain.User{}, domain.ErrAuthenticationFailed
	}
	if err != nil {
		return domain.User{}, &domain.StorageError{Op: "authenticate", Err: err}
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return domain.User{}, domain.ErrAuthenticationFailed
	}
	return user, nil
}

// Authorize is the single role check used by every protected operation.
// The check is exact-match; there is no role hierarchy.
func Authorize(user domain.User, requiredRole string) error {
	if user.Role != requiredRole {
		return domain.ErrAuthorizationDenied
	}
	return nil
}

// CreateInput carries the fields of a new staff account
type CreateInput struct {
	FIO      string
	Email    string
	Login    string
	Password string // Plaintext; hashed here, stored only as a hash
	Role     string
}

// Create adds a staff account. Admin-only; the route layer enforces the
// role before calling in.
func Create(db *gorm.DB, in CreateInput) (domain.User, error) {
	for field, value := range map[string]string{
		"fio":      in.FIO,
		"email":    in.Email,
		"login":    in.Login,
		"password": in.Password,
	} {
		if strings.TrimSpace(value) == "" {
			return domain.User{}, &domain.ValidationError{Field: field, Reason: "must not be empty"}
		}
	}
	if !domain.ValidRole(in.Role) {
		return domain.User{}, &domain.ValidationError{Field: "role", Reason: "must be admin or manager"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, &domain.StorageError{Op: "create account", Err: err}
	}
	user := domain.User{
		FIO:      in.FIO,
		Email:    in.Email,
		Login:    strings.ToLower(in.Login), // Lowercase login keeps uniqueness case-insensitive
		Password: string(hash),
		Role:     in.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		// Unique index on email/login is the usual culprit
		return domain.User{}, &domain.ValidationError{Field: "login", Reason: "email or login already taken"}
	}
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"login":   user.Login,
		"role":    user.Role,
	}).Info("Staff account created")
	return user, nil
}

// List returns every staff account in insertion order
func List(db *gorm.DB) ([]domain.User, error) {
	var users []domain.User
	if err := db.Order("id").Find(&users).Error; err != nil {
		return nil, &domain.StorageError{Op: "list accounts", Err: err}
	}
	return users, nil
}
