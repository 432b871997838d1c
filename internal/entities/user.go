package entities

import "time"

// User is a stored principal. Email is the unique lookup key.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is a User without its secret. It is what handlers see once a
// request has been authenticated.
type Identity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// Identity strips the password and returns the sanitized principal.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:    u.ID,
		Email: u.Email,
	}
}
