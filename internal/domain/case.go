package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Case struct {
	ID              uuid.UUID  `json:"id" db:"case_id"`
	Title           string     `json:"title" db:"title"`
	Status          CaseStatus `json:"status" db:"status"`
	CreatedByUserID uuid.UUID  `json:"created_by_user_id" db:"created_by_user_id"`
	ProducerID      uuid.UUID  `json:"producer_id" db:"producer_id"`
	AssignedSalesID *uuid.UUID `json:"assigned_sales_id" db:"assigned_sales_id"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

type CaseDetail struct {
	CaseID       uuid.UUID      `json:"case_id" db:"case_id"`
	ItemName     string         `json:"item_name" db:"item_name"`
	Quantity     *string        `json:"quantity" db:"quantity"`
	DesiredPrice *string        `json:"desired_price" db:"desired_price"`
	Description  *string        `json:"description" db:"description"`
	ImageURLs    pq.StringArray `json:"image_urls" db:"image_urls"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// CaseSummary is the joined row shape used by every case listing.
type CaseSummary struct {
	ID                uuid.UUID  `json:"id" db:"case_id"`
	Title             string     `json:"title" db:"title"`
	Status            CaseStatus `json:"status" db:"status"`
	ProducerName      string     `json:"producer_name" db:"producer_name"`
	ProducerAddress   *string    `json:"producer_address" db:"producer_address"`
	ItemName          string     `json:"item_name" db:"item_name"`
	Quantity          *string    `json:"quantity" db:"quantity"`
	DesiredPrice      *string    `json:"desired_price" db:"desired_price"`
	AssignedSalesName *string    `json:"assigned_sales_name" db:"assigned_sales_name"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// CaseView is the full detail row returned by GET /cases/:id.
type CaseView struct {
	ID                uuid.UUID      `json:"id" db:"case_id"`
	Title             string         `json:"title" db:"title"`
	Status            CaseStatus     `json:"status" db:"status"`
	CreatedByUserID   uuid.UUID      `json:"created_by_user_id" db:"created_by_user_id"`
	CreatedByUserName string         `json:"created_by_user_name" db:"created_by_user_name"`
	ProducerID        uuid.UUID      `json:"producer_id" db:"producer_id"`
	ProducerName      string         `json:"producer_name" db:"producer_name"`
	ProducerAddress   *string        `json:"producer_address" db:"producer_address"`
	AssignedSalesID   *uuid.UUID     `json:"assigned_sales_id" db:"assigned_sales_id"`
	AssignedSalesName *string        `json:"assigned_sales_name" db:"assigned_sales_name"`
	ItemName          string         `json:"item_name" db:"item_name"`
	Quantity          *string        `json:"quantity" db:"quantity"`
	DesiredPrice      *string        `json:"desired_price" db:"desired_price"`
	Description       *string        `json:"description" db:"description"`
	ImageURLs         pq.StringArray `json:"image_urls" db:"image_urls"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at" db:"updated_at"`
}

type CreateCaseInput struct {
	Title        string    `json:"title" validate:"required"`
	ProducerID   uuid.UUID `json:"producer_id" validate:"required"`
	ItemName     string    `json:"item_name" validate:"required"`
	Quantity     *string   `json:"quantity"`
	DesiredPrice *string   `json:"desired_price"`
	Description  *string   `json:"description"`
	ImageURLs    []string  `json:"image_urls"`
}

type UpdateCaseInput struct {
	Title        *string    `json:"title,omitempty"`
	ProducerID   *uuid.UUID `json:"producer_id,omitempty"`
	ItemName     *string    `json:"item_name,omitempty"`
	Quantity     *string    `json:"quantity,omitempty"`
	DesiredPrice *string    `json:"desired_price,omitempty"`
	Description  *string    `json:"description,omitempty"`
	ImageURLs    []string   `json:"image_urls,omitempty"`
}

type CaseStatus string

const (
	CaseNew       CaseStatus = "NEW"
	CasePending   CaseStatus = "PENDING"
	CaseProposing CaseStatus = "PROPOSING"
	CaseClosed    CaseStatus = "CLOSED"
	// CaseRejected is a terminal display state; nothing transitions into it
	// today but PROPOSING/CLOSED handling must treat it as frozen.
	CaseRejected CaseStatus = "REJECTED"
)

func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseNew, CasePending, CaseProposing, CaseClosed, CaseRejected:
		return true
	default:
		return false
	}
}
