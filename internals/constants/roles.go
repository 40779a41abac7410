package constants

import "fmt"

// Application roles. "sindico" is the condominium manager, "morador" a resident.
const (
	RoleAdmin   = "admin"
	RoleSindico = "sindico"
	RoleMorador = "morador"
)

const (
	ErrOnlyAdminsCanAccess   = "❌ Only admins may access %s."
	ErrOnlyManagersCanAccess = "❌ Only admins or síndicos may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}
