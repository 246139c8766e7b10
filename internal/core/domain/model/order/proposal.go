package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/errs"
	"negotiation/internal/pkg/guard"
)

// ErrProposalIsNotConstructed is returned when using a Proposal that was not created via a constructor.
var ErrProposalIsNotConstructed = errors.New("Proposal must be created via NewBuyerActionProposal or NewSupplierNoteProposal")

// BuyerActionKind is the closed set of actions a buyer can take on a negotiation.
type BuyerActionKind int

const (
	BuyerActionUnknown BuyerActionKind = iota
	Accept
	Reject
	Counter
)

var buyerActionNames = map[BuyerActionKind]string{
	Accept:  "Accept",
	Reject:  "Reject",
	Counter: "Counter",
}

// ParseBuyerAction converts an action name to a BuyerActionKind. Matching is case-insensitive.
func ParseBuyerAction(name string) (BuyerActionKind, error) {
	for a, n := range buyerActionNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return a, nil
		}
	}
	return BuyerActionUnknown, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a valid buyer action", name))
}

func (a BuyerActionKind) Validate() error {
	if _, ok := buyerActionNames[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid buyer action", a))
	}
	return nil
}

func (a BuyerActionKind) String() string {
	if name, ok := buyerActionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Authorship is the sealed set of proposal shapes: BuyerAction or SupplierNote.
type Authorship interface {
	authorship()
}

// BuyerAction is a proposal authored by a buyer-side user.
type BuyerAction struct {
	Action      BuyerActionKind
	BuyerUserID kernel.ID
	Note        string
}

// SupplierNote is a proposal authored by a supplier-side user. Note is never blank.
type SupplierNote struct {
	Note           string
	SupplierUserID kernel.ID
}

func (BuyerAction) authorship()  {}
func (SupplierNote) authorship() {}

// Proposal is one immutable message in an order's negotiation log.
// No operation changes a proposal after it is appended to its order.
type Proposal struct {
	id        kernel.ID
	orderID   kernel.ID
	author    Authorship
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewBuyerActionProposal creates a buyer-authored proposal.
// orderID and buyerUserID must be positive and action a defined BuyerActionKind.
func NewBuyerActionProposal(id, orderID kernel.ID, action BuyerActionKind, buyerUserID kernel.ID, note string) (*Proposal, error) {
	author := BuyerAction{Action: action, BuyerUserID: buyerUserID, Note: note}
	if err := errors.Join(
		id.Validate("id"),
		orderID.Validate("orderID"),
		validateAuthorship(author),
	); err != nil {
		return nil, err
	}
	return &Proposal{id: id, orderID: orderID, author: author, guard: guard.NewConstructorGuard()}, nil
}

// NewSupplierNoteProposal creates a supplier-authored proposal.
// The note must contain something other than whitespace.
func NewSupplierNoteProposal(id, orderID kernel.ID, note string, supplierUserID kernel.ID) (*Proposal, error) {
	author := SupplierNote{Note: note, SupplierUserID: supplierUserID}
	if err := errors.Join(
		id.Validate("id"),
		orderID.Validate("orderID"),
		validateAuthorship(author),
	); err != nil {
		return nil, err
	}
	return &Proposal{id: id, orderID: orderID, author: author, guard: guard.NewConstructorGuard()}, nil
}

// RestoreProposal rebuilds a persisted proposal with its original timestamp.
func RestoreProposal(id, orderID kernel.ID, author Authorship, createdAt time.Time) (*Proposal, error) {
	if err := errors.Join(
		id.Validate("id"),
		orderID.Validate("orderID"),
		validateAuthorship(author),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	return &Proposal{
		id:        id,
		orderID:   orderID,
		author:    author,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func validateAuthorship(author Authorship) error {
	switch a := author.(type) {
	case BuyerAction:
		return errors.Join(a.Action.Validate(), a.BuyerUserID.Validate("buyerUserID"))
	case SupplierNote:
		var errNote error
		if strings.TrimSpace(a.Note) == "" {
			errNote = errs.NewValueIsRequiredError("note")
		}
		return errors.Join(errNote, a.SupplierUserID.Validate("supplierUserID"))
	default:
		return errs.NewValueIsRequiredError("author")
	}
}

// Validate ensures the Proposal was created through a constructor.
func (p *Proposal) Validate() error {
	if p == nil {
		return ErrProposalIsNotConstructed
	}
	return p.guard.Validate(ErrProposalIsNotConstructed)
}

func (p *Proposal) ID() kernel.ID      { return p.id }
func (p *Proposal) OrderID() kernel.ID { return p.orderID }

// Author returns the authorship variant. Callers switch on its concrete type.
func (p *Proposal) Author() Authorship { return p.author }

// CreatedAt is zero until the proposal is appended to an order.
func (p *Proposal) CreatedAt() time.Time { return p.createdAt }

// Note returns the free text of either variant.
func (p *Proposal) Note() string {
	switch a := p.author.(type) {
	case BuyerAction:
		return a.Note
	case SupplierNote:
		return a.Note
	}
	return ""
}

func (p *Proposal) IsBuyerAuthored() bool {
	_, ok := p.author.(BuyerAction)
	return ok
}

func (p *Proposal) IsSupplierAuthored() bool {
	_, ok := p.author.(SupplierNote)
	return ok
}
