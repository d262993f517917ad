package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserRole defines the list of possible user roles
type UserRole string

const (
	// UserRoleAdmin for portal administrators managing resellers and the pipeline
	UserRoleAdmin UserRole = "admin"
	// UserRoleReseller for partner accounts submitting referrals
	UserRoleReseller UserRole = "reseller"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleReseller:
		return true
	default:
		return false
	}
}

// User structure
type User struct {
	ID        uint64    `sql:"type: bigint" gorm:"primary_key" json:"id"`
	Email     string    `gorm:"unique" json:"email"`
	Name      string    `json:"name"`
	Password  string    `gorm:"not null" json:"-"`
	Role      UserRole  `sql:"not null;type:user_role_t" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a new user structure with the password not yet encoded
func NewUser(name, email, pass string, role UserRole) *User {
	return &User{
		Name:     name,
		Email:    email,
		Password: pass,
		Role:     role,
	}
}

// EncodePass encodes the current user password before saving it
func (user *User) EncodePass() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	return nil
}

// ValidatePass checks the given password against the stored hash
func (user *User) ValidatePass(pass string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(pass)) == nil
}
