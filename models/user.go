package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Preferences holds the per-user UI settings.
type Preferences struct {
	Theme           string `bson:"theme" json:"theme"`
	DefaultCategory string `bson:"defaultCategory" json:"defaultCategory"`
	Notifications   bool   `bson:"notifications" json:"notifications"`
}

// DefaultPreferences returns the settings applied at registration.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:           "light",
		DefaultCategory: DefaultCategory,
		Notifications:   true,
	}
}

// User is a stored account. Password holds the bcrypt hash and is never
// serialized to clients.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Preferences Preferences        `bson:"preferences" json:"preferences"`
	Avatar      string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	LastLogin   *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PublicProfile returns the client-safe view of the account.
func (u *User) PublicProfile() UserResponse {
	return UserResponse{
		ID:          u.ID.Hex(),
		Name:        u.Name,
		Email:       u.Email,
		Preferences: u.Preferences,
		Avatar:      u.Avatar,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
	}
}
