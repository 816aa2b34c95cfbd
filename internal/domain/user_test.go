package domain

import "testing"

func TestCanEdit(t *testing.T) {
	tests := []struct {
		name        string
		role        Role
		accessLevel Role
		want        bool
	}{
		{"admin edits viewer-level", RoleAdmin, RoleViewer, true},
		{"admin edits editor-level", RoleAdmin, RoleEditor, true},
		{"admin edits admin-level", RoleAdmin, RoleAdmin, true},
		{"editor edits viewer-level", RoleEditor, RoleViewer, true},
		{"editor edits editor-level", RoleEditor, RoleEditor, true},
		{"editor blocked from admin-level", RoleEditor, RoleAdmin, false},
		{"viewer blocked from viewer-level", RoleViewer, RoleViewer, false},
		{"viewer blocked from editor-level", RoleViewer, RoleEditor, false},
		{"viewer blocked from admin-level", RoleViewer, RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEdit(tt.role, tt.accessLevel); got != tt.want {
				t.Errorf("CanEdit(%s, %s) = %v, want %v", tt.role, tt.accessLevel, got, tt.want)
			}
		})
	}
}
