package commands

import (
	"errors"
	"strings"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/pkg/errs"
	"negotiation/internal/pkg/guard"
)

var ErrPostProposalCommandIsNotConstructed = errors.New(
	"PostProposalCommand must be created via NewPostBuyerActionCommand or NewPostSupplierNoteCommand",
)

// PostProposalCommand appends one message to an order's negotiation log,
// authored either by the buyer (an action with an optional note) or by the
// supplier (a mandatory note).
type PostProposalCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	author  order.Authorship

	guard guard.ConstructorGuard
}

// NewPostBuyerActionCommand creates a buyer proposal: Accept, Reject or Counter.
func NewPostBuyerActionCommand(
	orderID kernel.ID,
	action order.BuyerActionKind,
	buyerUserID kernel.ID,
	note string,
) (PostProposalCommand, error) {
	if err := errors.Join(
		orderID.Validate("orderID"),
		action.Validate(),
		buyerUserID.Validate("buyerUserID"),
	); err != nil {
		return PostProposalCommand{}, err
	}

	return PostProposalCommand{
		orderID: orderID,
		author:  order.BuyerAction{Action: action, BuyerUserID: buyerUserID, Note: note},
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewPostSupplierNoteCommand creates a supplier proposal. The note must not be blank.
func NewPostSupplierNoteCommand(orderID kernel.ID, note string, supplierUserID kernel.ID) (PostProposalCommand, error) {
	var errNote error
	if strings.TrimSpace(note) == "" {
		errNote = errs.NewValueIsRequiredError("note")
	}

	if err := errors.Join(
		orderID.Validate("orderID"),
		errNote,
		supplierUserID.Validate("supplierUserID"),
	); err != nil {
		return PostProposalCommand{}, err
	}

	return PostProposalCommand{
		orderID: orderID,
		author:  order.SupplierNote{Note: note, SupplierUserID: supplierUserID},
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PostProposalCommand) Validate() error {
	return c.guard.Validate(ErrPostProposalCommandIsNotConstructed)
}

func (c PostProposalCommand) OrderID() kernel.ID       { return c.orderID }
func (c PostProposalCommand) Author() order.Authorship { return c.author }
