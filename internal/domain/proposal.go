package domain

import (
	"time"

	"github.com/google/uuid"
)

type Proposal struct {
	ID           uuid.UUID      `json:"id" db:"proposal_id"`
	CaseID       uuid.UUID      `json:"case_id" db:"case_id"`
	RestaurantID uuid.UUID      `json:"restaurant_id" db:"restaurant_id"`
	SalesID      uuid.UUID      `json:"sales_id" db:"sales_id"`
	Status       ProposalStatus `json:"status" db:"status"`
	Memo         *string        `json:"memo" db:"memo"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// ProposalSummary is the joined row shape for a case's proposal list.
type ProposalSummary struct {
	ID                uuid.UUID      `json:"id" db:"proposal_id"`
	Status            ProposalStatus `json:"status" db:"status"`
	Memo              *string        `json:"memo" db:"memo"`
	RestaurantName    string         `json:"restaurant_name" db:"restaurant_name"`
	RestaurantAddress *string        `json:"restaurant_address" db:"restaurant_address"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
}

// RestaurantProposal is the row shape for a restaurant's inbound proposals.
type RestaurantProposal struct {
	ProposalID   uuid.UUID      `json:"proposal_id" db:"proposal_id"`
	Status       ProposalStatus `json:"proposal_status" db:"status"`
	Memo         *string        `json:"proposal_memo" db:"memo"`
	CaseID       uuid.UUID      `json:"case_id" db:"case_id"`
	CaseTitle    string         `json:"case_title" db:"case_title"`
	CaseItemName string         `json:"case_item_name" db:"case_item_name"`
	CaseStatus   CaseStatus     `json:"case_status" db:"case_status"`
	ProducerName string         `json:"producer_name" db:"producer_name"`
	SalesName    string         `json:"sales_name" db:"sales_name"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}

type CreateProposalInput struct {
	CaseID       uuid.UUID `json:"case_id" validate:"required"`
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
	Memo         *string   `json:"memo"`
}

type UpdateProposalStatusInput struct {
	Status ProposalStatus `json:"status" validate:"required"`
}

type ProposalStatus string

const (
	ProposalProposed        ProposalStatus = "PROPOSED"
	ProposalSampleRequested ProposalStatus = "SAMPLE_REQUESTED"
	ProposalConsidering     ProposalStatus = "CONSIDERING"
	ProposalAccepted        ProposalStatus = "ACCEPTED"
	ProposalDeclined        ProposalStatus = "DECLINED"
)

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalProposed, ProposalSampleRequested, ProposalConsidering, ProposalAccepted, ProposalDeclined:
		return true
	default:
		return false
	}
}
