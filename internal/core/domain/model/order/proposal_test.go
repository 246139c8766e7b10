package order_test

import (
	"fmt"
	"testing"
	"time"

	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuyerActionProposal(t *testing.T) {
	t.Run("should be buyer authored only", func(t *testing.T) {
		p, err := order.NewBuyerActionProposal(1, 100, order.Counter, 7, "")

		require.NoError(t, err)
		assert.True(t, p.IsBuyerAuthored())
		assert.False(t, p.IsSupplierAuthored())

		author, ok := p.Author().(order.BuyerAction)
		require.True(t, ok)
		assert.Equal(t, order.Counter, author.Action)
		assert.EqualValues(t, 7, author.BuyerUserID)
		assert.True(t, p.CreatedAt().IsZero())
	})

	t.Run("should fail with invalid arguments", func(t *testing.T) {
		_, err := order.NewBuyerActionProposal(1, 0, order.BuyerActionUnknown, 0, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "orderID")
		assert.Contains(t, err.Error(), "action")
		assert.Contains(t, err.Error(), "buyerUserID")
	})
}

func TestNewSupplierNoteProposal(t *testing.T) {
	t.Run("should be supplier authored only", func(t *testing.T) {
		p, err := order.NewSupplierNoteProposal(1, 100, "we can ship on Monday", 9)

		require.NoError(t, err)
		assert.False(t, p.IsBuyerAuthored())
		assert.True(t, p.IsSupplierAuthored())
		assert.Equal(t, "we can ship on Monday", p.Note())
	})

	for _, note := range []string{"", "   ", "\n\t"} {
		t.Run(fmt.Sprintf("should reject blank note %q", note), func(t *testing.T) {
			p, err := order.NewSupplierNoteProposal(1, 100, note, 9)

			assert.Nil(t, p)
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}

	t.Run("should reject non-positive supplier user", func(t *testing.T) {
		_, err := order.NewSupplierNoteProposal(1, 100, "ok", 0)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestRestoreProposal(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	p, err := order.RestoreProposal(1, 100, order.SupplierNote{Note: "hi", SupplierUserID: 3}, at)
	require.NoError(t, err)
	assert.Equal(t, at, p.CreatedAt())

	_, err = order.RestoreProposal(1, 100, nil, at)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = order.RestoreProposal(1, 100, order.BuyerAction{Action: order.Accept, BuyerUserID: 2}, time.Time{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestParseBuyerAction(t *testing.T) {
	a, err := order.ParseBuyerAction("accept")
	require.NoError(t, err)
	assert.Equal(t, order.Accept, a)
	assert.Equal(t, "Accept", a.String())

	_, err = order.ParseBuyerAction("haggle")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}
