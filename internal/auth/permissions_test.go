package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapRolesToPermissions(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  []string
	}{
		{
			name:  "manager",
			roles: []string{"MANAGER"},
			want:  []string{PermPlazaRead, PermPlazaWrite, PermUserRead, PermUserWrite},
		},
		{
			name:  "admin matches manager",
			roles: []string{"ADMIN"},
			want:  []string{PermPlazaRead, PermPlazaWrite, PermUserRead, PermUserWrite},
		},
		{
			name:  "general employee",
			roles: []string{"EMPLOYEE_GENERAL"},
			want:  []string{PermBulletinRead, PermBulletinWrite},
		},
		{
			name:  "security employee",
			roles: []string{"EMPLOYEE_SECURITY"},
			want:  []string{PermSecurityRead, PermSecurityWrite},
		},
		{
			name:  "parking employee",
			roles: []string{"EMPLOYEE_PARKING"},
			want:  []string{PermParkingRead, PermParkingWrite},
		},
		{
			name:  "union without duplicates",
			roles: []string{"MANAGER", "ADMIN", "EMPLOYEE_PARKING"},
			want: []string{
				PermParkingRead, PermParkingWrite,
				PermPlazaRead, PermPlazaWrite,
				PermUserRead, PermUserWrite,
			},
		},
		{
			name:  "unknown role contributes nothing",
			roles: []string{"SOMETHING_ELSE"},
			want:  []string{},
		},
		{
			name:  "unknown mixed with known",
			roles: []string{"SOMETHING_ELSE", "EMPLOYEE_GENERAL"},
			want:  []string{PermBulletinRead, PermBulletinWrite},
		},
		{
			name:  "no roles",
			roles: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapRolesToPermissions(tt.roles))
		})
	}
}

func TestMapRolesToPermissionsOrderIndependent(t *testing.T) {
	a := MapRolesToPermissions([]string{"MANAGER", "EMPLOYEE_SECURITY"})
	b := MapRolesToPermissions([]string{"EMPLOYEE_SECURITY", "MANAGER", "MANAGER"})
	assert.Equal(t, a, b)
}
