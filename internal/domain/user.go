package domain

// Staff roles
const (
	RoleAdmin   = "admin"   // Full access, including account and catalog management
	RoleManager = "manager" // Day-to-day order handling
)

// ValidRole reports whether s is one of the known staff roles
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleManager
}

// User Model (staff account)
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                  // Primary key
	FIO      string `gorm:"size:100" json:"fio"`                   // Full name
	Email    string `gorm:"size:100;unique;not null" json:"email"` // Unique email
	Login    string `gorm:"size:50;unique;not null" json:"login"`  // Unique login handle
	Password string `gorm:"size:200;not null" json:"-"`            // Bcrypt hash, never serialized
	Role     string `gorm:"size:20;not null" json:"role"`          // Role: admin or manager
}
