package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"Admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{"user", RoleUser},
		{"User", RoleUser},
		{"", RoleUser},
		{"superuser", RoleUser},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRole(tt.in), "ParseRole(%q)", tt.in)
	}
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Active", "Completed", "Cancelled"} {
		assert.True(t, ValidBookingStatus(s), s)
	}
	for _, s := range []string{"", "pending", "Done", "CANCELLED"} {
		assert.False(t, ValidBookingStatus(s), s)
	}
}
