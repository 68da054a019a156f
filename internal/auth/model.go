package auth

// User is a dashboard account, either a traveler or an agency admin.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string // CLIENT | ADMIN
}

const (
	RoleClient = "CLIENT"
	RoleAdmin  = "ADMIN"
)
