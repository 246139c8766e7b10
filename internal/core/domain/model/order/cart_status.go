package order

import (
	"fmt"
	"strings"

	"negotiation/internal/pkg/errs"
)

// CartStatus tracks the buyer-side cart. It evolves independently of Status:
// a buyer may finalize the cart while the commercial negotiation is still open.
type CartStatus int

const (
	CartUnknown CartStatus = iota
	CartOpen
	CartFinalized
)

var cartStatusNames = map[CartStatus]string{
	CartOpen:      "Open",
	CartFinalized: "Finalized",
}

// ParseCartStatus converts a persisted cart status name back to a CartStatus.
func ParseCartStatus(name string) (CartStatus, error) {
	for s, n := range cartStatusNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return CartUnknown, errs.NewValueIsInvalidErrorWithCause("cartStatus", fmt.Errorf("%q is not a valid cart status", name))
}

func (c CartStatus) Validate() error {
	if _, ok := cartStatusNames[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("cartStatus", fmt.Errorf("%d is not a valid cart status", c))
	}
	return nil
}

func (c CartStatus) String() string {
	if name, ok := cartStatusNames[c]; ok {
		return name
	}
	return "Unknown"
}
