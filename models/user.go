package models

// User is the persisted account record of the "users" table.
// Password always holds a bcrypt hash and must never leave the server.
type User struct {
	// ID is the database-generated primary key.
	ID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Email is the unique e-mail address of the account.
	Email string `json:"email"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"-"`

	// IsDeleted marks a soft-deleted account. Deleted accounts stay in
	// storage but cannot authenticate and are hidden from listings.
	IsDeleted bool `json:"isDeleted"`

	// Version is the optimistic-locking counter incremented on every update.
	Version int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// View returns the public representation of the user.
func (u User) View() UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsDeleted: u.IsDeleted,
	}
}

// UserView is the public shape of a user returned by the API.
// It never carries the password hash.
type UserView struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsDeleted bool   `json:"isDeleted"`
}

// ToUserViews maps persisted users to their public views.
func ToUserViews(users []User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, u.View())
	}
	return views
}
