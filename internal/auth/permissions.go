package auth

import "sort"

// Permission strings used across the plaza modules.
const (
	PermPlazaRead     = "plaza:read"
	PermPlazaWrite    = "plaza:write"
	PermUserRead      = "user:read"
	PermUserWrite     = "user:write"
	PermBulletinRead  = "bulletin:read"
	PermBulletinWrite = "bulletin:write"
	PermSecurityRead  = "security:read"
	PermSecurityWrite = "security:write"
	PermParkingRead   = "parking:read"
	PermParkingWrite  = "parking:write"
)

// rolePermissions is the static role to permission table. Roles not
// listed here contribute no permissions.
var rolePermissions = map[string][]string{
	"MANAGER":           {PermPlazaRead, PermPlazaWrite, PermUserRead, PermUserWrite},
	"ADMIN":             {PermPlazaRead, PermPlazaWrite, PermUserRead, PermUserWrite},
	"EMPLOYEE_GENERAL":  {PermBulletinRead, PermBulletinWrite},
	"EMPLOYEE_SECURITY": {PermSecurityRead, PermSecurityWrite},
	"EMPLOYEE_PARKING":  {PermParkingRead, PermParkingWrite},
}

// MapRolesToPermissions derives the permission set for a set of roles.
//
// The result is the deduplicated union over all matching table rows and
// depends only on set membership, never on order or duplicates. The
// returned slice is sorted so equal role sets produce equal slices.
func MapRolesToPermissions(roles []string) []string {
	seen := make(map[string]struct{})
	for _, role := range roles {
		for _, perm := range rolePermissions[role] {
			seen[perm] = struct{}{}
		}
	}

	perms := make([]string, 0, len(seen))
	for perm := range seen {
		perms = append(perms, perm)
	}
	sort.Strings(perms)
	return perms
}
