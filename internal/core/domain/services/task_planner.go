package services

import (
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/core/domain/model/task"
	"forwarding/internal/pkg/errs"
)

// TaskPlanner is a domain service that generates the workflow task graph for a
// shipment once its commercial terms are known. The graph is the fixed
// seven-leg chain from origin door to destination door; terms only decide who
// is responsible for each leg.
//
// Planning rules:
//   - Port calls (POL, POD) are TRACKED: driven by carrier schedule data.
//   - Freight booking is internal housekeeping and hidden from customers.
//   - Responsibility per leg follows the incoterm's buyer/seller split,
//     mapped onto forwarder/customer by the trade direction.
type TaskPlanner struct{}

// NewTaskPlanner creates a new TaskPlanner instance.
func NewTaskPlanner() TaskPlanner {
	return TaskPlanner{}
}

// legPlan fixes the shape of one generated task.
type legPlan struct {
	taskType   task.Type
	mode       task.Mode
	visibility task.Visibility
}

// legPlans returns the seven legs in workflow order. Leg level is the
// 1-based position in this slice.
func legPlans() []legPlan {
	return []legPlan{
		{task.TypeOriginHaulage, task.ModeAssigned, task.VisibilityVisible},
		{task.TypeFreightBooking, task.ModeAssigned, task.VisibilityHidden},
		{task.TypeExportClearance, task.ModeAssigned, task.VisibilityVisible},
		{task.TypePortOfLoading, task.ModeTracked, task.VisibilityVisible},
		{task.TypePortOfDischarge, task.ModeTracked, task.VisibilityVisible},
		{task.TypeImportClearance, task.ModeAssigned, task.VisibilityVisible},
		{task.TypeDestinationHaulage, task.ModeAssigned, task.VisibilityVisible},
	}
}

// PlanWorkflow generates the task graph for the shipment. The shipment must
// already carry commercial terms; the workflow shell stays empty until then.
func (p TaskPlanner) PlanWorkflow(s *shipment.Shipment) ([]*task.Task, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if !s.Terms().IsSet() {
		return nil, errs.NewValueIsRequiredError("terms")
	}

	plans := legPlans()
	tasks := make([]*task.Task, 0, len(plans))
	for i, plan := range plans {
		assignee, err := p.assigneeFor(plan.taskType, s.Terms())
		if err != nil {
			return nil, err
		}

		t, err := task.NewTask(
			kernel.NewUUID(),
			s.ID(),
			plan.taskType,
			i+1,
			plan.mode,
			plan.visibility,
			assignee,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

// assigneeFor maps a leg to the responsible party.
//
// The incoterm splits the journey between seller and buyer; the transaction
// type says which of the two is our customer. Legs falling on the customer's
// side are assigned to the customer, everything else stays with forwarder
// staff (including both sides of a cross trade, where neither trading party is
// the customer of record for the legs).
func (p TaskPlanner) assigneeFor(taskType task.Type, terms shipment.Terms) (task.Assignee, error) {
	sellerParty := task.PartyForwarder
	if terms.TransactionType() == shipment.TransactionExport {
		sellerParty = task.PartyCustomer
	}
	buyerParty := task.PartyForwarder
	if terms.TransactionType() == shipment.TransactionImport {
		buyerParty = task.PartyCustomer
	}

	var party task.Party
	switch taskType {
	case task.TypeOriginHaulage, task.TypeExportClearance:
		// Under EXW the buyer arranges everything from the seller's door.
		if terms.Incoterm() == shipment.IncotermEXW {
			party = buyerParty
		} else {
			party = sellerParty
		}
	case task.TypeFreightBooking, task.TypePortOfLoading, task.TypePortOfDischarge:
		party = task.PartyForwarder
	case task.TypeImportClearance:
		// DDP is the only term where the seller clears import customs.
		if terms.Incoterm() == shipment.IncotermDDP {
			party = sellerParty
		} else {
			party = buyerParty
		}
	case task.TypeDestinationHaulage:
		// D-terms deliver to the buyer's door on the seller's account.
		if terms.Incoterm() == shipment.IncotermDAP || terms.Incoterm() == shipment.IncotermDDP {
			party = sellerParty
		} else {
			party = buyerParty
		}
	default:
		return task.Assignee{}, errs.NewValueIsInvalidError("taskType")
	}

	return task.NewAssignee(party, "")
}
