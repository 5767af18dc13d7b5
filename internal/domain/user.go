package domain

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Email    string `db:"email"`
	Hash     string `db:"password_hash"`
}

// LogID identifies the user in structured log events.
func (u *User) LogID() int64 { return u.ID }
