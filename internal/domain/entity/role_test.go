package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{in: "admin", want: RoleAdmin},
		{in: "customer", want: RoleCustomer},
		{in: "", want: RoleCustomer},
		{in: "ADMIN", want: RoleCustomer},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.in))
		})
	}
}

func TestCustomer_Roles(t *testing.T) {
	admin := &Customer{Role: RoleAdmin}
	customer := &Customer{Role: RoleCustomer}

	assert.Equal(t, []string{"customer", "admin"}, admin.Roles().ToStrings())
	assert.Equal(t, []string{"customer"}, customer.Roles().ToStrings())
}
