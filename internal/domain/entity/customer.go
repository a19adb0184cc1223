package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a member of the loyalty club and owner of a point balance.
type Customer struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	CPF          string    `json:"cpf,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`

	Balance     int       `json:"balance"`      // saldo_pontos
	TotalEarned int       `json:"total_earned"` // total_pontos_ganhos
	TotalSpent  int       `json:"total_spent"`  // total_pontos_gastos
	Version     int       `json:"-"`            // Guards the balance read-modify-write.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Roles returns the roles granted to the customer. Admins keep customer access.
func (c *Customer) Roles() Roles {
	if c.Role == RoleAdmin {
		return Roles{RoleCustomer, RoleAdmin}
	}

	return Roles{RoleCustomer}
}

// Credit adds earned points to the balance and lifetime counter.
func (c *Customer) Credit(points int) {
	c.Balance += points
	c.TotalEarned += points
}

// CanAfford reports whether the balance covers the given cost.
func (c *Customer) CanAfford(cost int) bool {
	return c.Balance >= cost
}

// Debit removes spent points from the balance. Callers check CanAfford first.
func (c *Customer) Debit(points int) {
	c.Balance -= points
	c.TotalSpent += points
}
