package domain

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	ID               uuid.UUID  `json:"id" db:"restaurant_id"`
	UserID           uuid.UUID  `json:"user_id" db:"user_id"`
	Name             string     `json:"name" db:"name"`
	Address          *string    `json:"address" db:"address"`
	ManagedBySalesID *uuid.UUID `json:"managed_by_sales_id" db:"managed_by_sales_id"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

type RestaurantRef struct {
	ID   uuid.UUID `json:"id" db:"restaurant_id"`
	Name string    `json:"name" db:"name"`
}

type RestaurantProfile struct {
	ID                 uuid.UUID  `json:"id" db:"restaurant_id"`
	UserID             uuid.UUID  `json:"user_id" db:"user_id"`
	Name               string     `json:"name" db:"name"`
	Address            *string    `json:"address" db:"address"`
	ManagedBySalesID   *uuid.UUID `json:"managed_by_sales_id" db:"managed_by_sales_id"`
	ManagedBySalesName *string    `json:"managed_by_sales_name" db:"managed_by_sales_name"`
	Email              string     `json:"email" db:"email"`
	Role               UserRole   `json:"role" db:"role"`
}

type UpdateRestaurantInput struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}
