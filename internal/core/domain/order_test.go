package domain_test

import (
	"testing"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	valid := []domain.OrderStatus{
		domain.OrderPending,
		domain.OrderApproved,
		domain.OrderRejected,
		domain.OrderCompleted,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}

	assert.False(t, domain.OrderStatus("").IsValid())
	assert.False(t, domain.OrderStatus("CANCELLED").IsValid())
	assert.False(t, domain.OrderStatus("pending").IsValid())
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{"pending to approved", domain.OrderPending, domain.OrderApproved, true},
		{"pending to rejected", domain.OrderPending, domain.OrderRejected, true},
		{"pending to completed", domain.OrderPending, domain.OrderCompleted, false},
		{"approved to completed", domain.OrderApproved, domain.OrderCompleted, true},
		{"approved to pending", domain.OrderApproved, domain.OrderPending, false},
		{"approved to rejected", domain.OrderApproved, domain.OrderRejected, false},
		{"rejected is terminal", domain.OrderRejected, domain.OrderApproved, false},
		{"completed is terminal", domain.OrderCompleted, domain.OrderPending, false},
		{"same state pending", domain.OrderPending, domain.OrderPending, true},
		{"same state approved", domain.OrderApproved, domain.OrderApproved, true},
		{"same state rejected", domain.OrderRejected, domain.OrderRejected, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}
