package model

// User represents a user row in the database
type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"` // stores the bcrypt hash, never serialized
}

// UserRegister represents a user registration request
type UserRegister struct {
	Username string `json:"username" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required"`
}

// UserLogin represents a login request
type UserLogin struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// TokenResponse represents the login response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserInfo represents the public view of a user (no password)
type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserDetail represents a user together with the blogs they created
type UserDetail struct {
	ID       int           `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Blogs    []BlogSummary `json:"blogs"`
}

// Info returns the public view of the user.
func (u *User) Info() UserInfo {
	return UserInfo{ID: u.ID, Username: u.Username, Email: u.Email}
}
