package auth

// Role del actor autenticado.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}

// IsOperator indica si el actor puede operar la agenda de la clínica.
func (c Claims) IsOperator() bool {
	return c.Role == RoleAdmin
}

// ParseRole normaliza el rol; cualquier valor desconocido es client.
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleClient
}
