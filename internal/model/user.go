package model

import "golang.org/x/crypto/bcrypt"

// User represents an account that can own catalog items.
type User struct {
	BaseModel
	Email       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password    string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FullName    string `gorm:"type:varchar(255)" json:"full_name"`
	IsSuperuser bool   `gorm:"default:false" json:"is_superuser"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Principal is the authenticated actor attached to a request. It is the
// only identity information the services look at.
type Principal struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Principal derives the request principal from a stored user.
func (u *User) Principal() Principal {
	return Principal{ID: u.ID, Email: u.Email, IsSuperuser: u.IsSuperuser}
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	IsSuperuser bool   `json:"is_superuser"`
	IsActive    bool   `json:"is_active"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
	}
}
