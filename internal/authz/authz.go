// Package authz decides whether a (user, role) may act on a case, proposal
// or proposal conversation. Predicates are pure: callers resolve the
// stakeholder links (producer/restaurant owners) first and pass them in.
package authz

import (
	"github.com/google/uuid"

	"chisan-market/internal/domain"
)

type Resource string

const (
	ResourceCase     Resource = "case"
	ResourceProposal Resource = "proposal"
	ResourceMessage  Resource = "message"
)

type Action string

const (
	ActionRead         Action = "read"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionAssign       Action = "assign"
	ActionUpdateStatus Action = "update_status"
	ActionWrite        Action = "write"
)

// CaseStakeholders carries the ownership links of one case.
type CaseStakeholders struct {
	CreatedByUserID uuid.UUID
	AssignedSalesID *uuid.UUID
	ProducerOwnerID uuid.UUID
}

// ProposalStakeholders carries the two parties of one proposal.
type ProposalStakeholders struct {
	SalesID           uuid.UUID
	RestaurantOwnerID uuid.UUID
}

// Subject is the entity an action targets; exactly one field is set.
type Subject struct {
	Case     *CaseStakeholders
	Proposal *ProposalStakeholders
}

type ruleKey struct {
	resource Resource
	action   Action
}

type predicate func(userID uuid.UUID, sub Subject) bool

func caseCreator(userID uuid.UUID, sub Subject) bool {
	return sub.Case != nil && userID == sub.Case.CreatedByUserID
}

func caseAssignedSales(userID uuid.UUID, sub Subject) bool {
	return sub.Case != nil && sub.Case.AssignedSalesID != nil && userID == *sub.Case.AssignedSalesID
}

func caseProducerOwner(userID uuid.UUID, sub Subject) bool {
	return sub.Case != nil && userID == sub.Case.ProducerOwnerID
}

func proposalSales(userID uuid.UUID, sub Subject) bool {
	return sub.Proposal != nil && userID == sub.Proposal.SalesID
}

func proposalRestaurantOwner(userID uuid.UUID, sub Subject) bool {
	return sub.Proposal != nil && userID == sub.Proposal.RestaurantOwnerID
}

// anySales admits every SALES user; the status guard on assignment lives in
// the conditional update, not here.
func anySales(uuid.UUID, Subject) bool { return true }

var rules = map[ruleKey]map[domain.UserRole]predicate{
	{ResourceCase, ActionRead}: {
		domain.RoleMunicipality: caseCreator,
		domain.RoleSales:        caseAssignedSales,
		domain.RoleProducer:     caseProducerOwner,
	},
	{ResourceCase, ActionUpdate}: {
		domain.RoleMunicipality: caseCreator,
		domain.RoleSales:        caseAssignedSales,
	},
	{ResourceCase, ActionDelete}: {
		domain.RoleMunicipality: caseCreator,
	},
	{ResourceCase, ActionAssign}: {
		domain.RoleSales: anySales,
	},
	{ResourceProposal, ActionUpdateStatus}: {
		domain.RoleSales:      proposalSales,
		domain.RoleRestaurant: proposalRestaurantOwner,
	},
	{ResourceMessage, ActionRead}: {
		domain.RoleSales:      proposalSales,
		domain.RoleRestaurant: proposalRestaurantOwner,
	},
	{ResourceMessage, ActionWrite}: {
		domain.RoleSales:      proposalSales,
		domain.RoleRestaurant: proposalRestaurantOwner,
	},
}

// Can evaluates the rule table. Unknown (resource, action) pairs and roles
// without a rule deny.
func Can(user *domain.User, resource Resource, action Action, sub Subject) bool {
	if user == nil {
		return false
	}
	byRole, ok := rules[ruleKey{resource, action}]
	if !ok {
		return false
	}
	pred, ok := byRole[user.Role]
	if !ok {
		return false
	}
	return pred(user.ID, sub)
}

// IsCaseStakeholder reports whether the user may view the case at all.
func IsCaseStakeholder(user *domain.User, cs CaseStakeholders) bool {
	return Can(user, ResourceCase, ActionRead, Subject{Case: &cs})
}

// IsProposalParty reports whether the user is one of the proposal's two
// stakeholders (the proposing sales rep or the restaurant owner).
func IsProposalParty(user *domain.User, ps ProposalStakeholders) bool {
	return Can(user, ResourceProposal, ActionUpdateStatus, Subject{Proposal: &ps})
}
