package commands

import (
	"context"
	"fmt"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/core/ports"
)

// PostProposalCommandHandler appends a proposal to the negotiation log.
// Proposals are accepted whatever the order status.
type PostProposalCommandHandler struct {
	uowFactory OrderUoWFactory
	ids        ports.IDGenerator
}

func NewPostProposalCommandHandler(uowFactory OrderUoWFactory, ids ports.IDGenerator) PostProposalCommandHandler {
	return PostProposalCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle returns the id of the new proposal.
func (h *PostProposalCommandHandler) Handle(ctx context.Context, cmd PostProposalCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	proposalID, err := h.ids.NextProposalID(ctx)
	if err != nil {
		return 0, err
	}

	var proposal *order.Proposal
	switch author := cmd.Author().(type) {
	case order.BuyerAction:
		proposal, err = order.NewBuyerActionProposal(proposalID, cmd.OrderID(), author.Action, author.BuyerUserID, author.Note)
	case order.SupplierNote:
		proposal, err = order.NewSupplierNoteProposal(proposalID, cmd.OrderID(), author.Note, author.SupplierUserID)
	default:
		err = fmt.Errorf("unsupported proposal author %T", author)
	}
	if err != nil {
		return 0, err
	}

	err = updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.AddProposal(proposal)
	})
	if err != nil {
		return 0, err
	}

	return proposalID, nil
}
