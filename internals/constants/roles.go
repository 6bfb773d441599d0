package constants

import "fmt"

// Role di klaim JWT (claim "role" / "roles")
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleAssessor    = "assessor"
	RoleViewer      = "viewer"
)

// WriteRoles boleh input nilai, snapshot manual, dan ubah tabel level.
var WriteRoles = []string{RoleAdmin, RoleCoordinator, RoleAssessor}

const ErrOnlyWritersCanAccess = "Hanya koordinator, asesor, atau admin yang boleh mengakses fitur %s."

func RoleErrorWriter(feature string) string {
	return fmt.Sprintf(ErrOnlyWritersCanAccess, feature)
}
