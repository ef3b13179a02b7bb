package services_test

import (
	"testing"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/domain/services"
	"repairshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkOrderWithLedger(t *testing.T) (*order.Order, []order.Part, []order.Labor) {
	t.Helper()

	wo, err := order.NewWorkOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Engine and suspension", []string{"engine mounts", "struts"})
	require.NoError(t, err)

	parts := make([]order.Part, 0, 3)
	for _, name := range []string{"Engine mount", "Front strut", "Rear strut"} {
		p, err := order.NewPart(kernel.NewUUID(), name, 2, money(t, "40.00"), money(t, "85.00"))
		require.NoError(t, err)
		require.NoError(t, wo.AddPart(p))
		parts = append(parts, p)
	}

	labor := make([]order.Labor, 0, 2)
	for _, desc := range []string{"Mount replacement", "Strut replacement"} {
		l, err := order.NewLabor(kernel.NewUUID(), desc, order.BillingHourly,
			decimal.NewFromInt(2), money(t, "105.00"))
		require.NoError(t, err)
		require.NoError(t, wo.AddLabor(l))
		labor = append(labor, l)
	}

	return wo, parts, labor
}

func TestWorkOrderSplitter(t *testing.T) {
	splitter := services.NewWorkOrderSplitter()

	t.Run("moves selected items onto a new work order", func(t *testing.T) {
		source, parts, labor := newWorkOrderWithLedger(t)
		newID := kernel.NewUUID()

		split, err := splitter.Split(source, newID, "Suspension work", services.LineItemSelection{
			PartIDs:  []kernel.UUID{parts[1].ID(), parts[2].ID()},
			LaborIDs: []kernel.UUID{labor[1].ID()},
		})

		require.NoError(t, err)
		assert.True(t, split.ID().IsEqual(newID))
		assert.Equal(t, "Suspension work", split.Title())
		assert.Equal(t, order.DocWorkOrder, split.DocType())
		assert.Len(t, split.Parts(), 2)
		assert.Len(t, split.Labor(), 1)
		assert.True(t, split.CustomerRef().IsEqual(source.CustomerRef()))
		assert.True(t, split.VehicleRef().IsEqual(source.VehicleRef()))

		assert.Len(t, source.Parts(), 1)
		assert.Len(t, source.Labor(), 1)
	})

	t.Run("conserves line items across both work orders", func(t *testing.T) {
		source, parts, labor := newWorkOrderWithLedger(t)
		before := len(parts) + len(labor)

		split, err := splitter.Split(source, kernel.NewUUID(), "Engine work", services.LineItemSelection{
			PartIDs: []kernel.UUID{parts[0].ID()},
		})

		require.NoError(t, err)
		after := len(source.Parts()) + len(source.Labor()) + len(split.Parts()) + len(split.Labor())
		assert.Equal(t, before, after)
	})

	t.Run("rejects an empty title and mutates nothing", func(t *testing.T) {
		source, parts, labor := newWorkOrderWithLedger(t)

		_, err := splitter.Split(source, kernel.NewUUID(), "", services.LineItemSelection{
			PartIDs: []kernel.UUID{parts[0].ID()},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, source.Parts(), len(parts))
		assert.Len(t, source.Labor(), len(labor))
	})

	t.Run("line items keep their flags across the move", func(t *testing.T) {
		source, parts, _ := newWorkOrderWithLedger(t)
		require.NoError(t, source.SetPartReceived(parts[0].ID(), true))

		split, err := splitter.Split(source, kernel.NewUUID(), "Mount work", services.LineItemSelection{
			PartIDs: []kernel.UUID{parts[0].ID()},
		})

		require.NoError(t, err)
		require.Len(t, split.Parts(), 1)
		assert.True(t, split.Parts()[0].Received())
		// The moved part was the only received one, so the new work order
		// derives PartsReceived immediately.
		assert.Equal(t, order.PartsReceived, split.Status())
	})

	t.Run("rejects an empty selection", func(t *testing.T) {
		source, _, _ := newWorkOrderWithLedger(t)

		_, err := splitter.Split(source, kernel.NewUUID(), "Nothing selected", services.LineItemSelection{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("a selection covering every line item leaves the source empty", func(t *testing.T) {
		source, parts, labor := newWorkOrderWithLedger(t)
		statusBefore := source.Status()

		selection := services.LineItemSelection{}
		for _, p := range parts {
			selection.PartIDs = append(selection.PartIDs, p.ID())
		}
		for _, l := range labor {
			selection.LaborIDs = append(selection.LaborIDs, l.ID())
		}

		split, err := splitter.Split(source, kernel.NewUUID(), "Everything", selection)

		require.NoError(t, err)
		assert.Len(t, split.Parts(), len(parts))
		assert.Len(t, split.Labor(), len(labor))
		assert.Empty(t, source.Parts())
		assert.Empty(t, source.Labor())
		assert.Equal(t, statusBefore, source.Status())
	})

	t.Run("rejects a quote source", func(t *testing.T) {
		q, err := order.NewQuote(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Estimate", nil)
		require.NoError(t, err)

		_, err = splitter.Split(q, kernel.NewUUID(), "Not a work order", services.LineItemSelection{
			PartIDs: []kernel.UUID{kernel.NewUUID()},
		})

		require.Error(t, err)
	})

	t.Run("an unknown id rejects the split and mutates nothing", func(t *testing.T) {
		source, parts, labor := newWorkOrderWithLedger(t)

		_, err := splitter.Split(source, kernel.NewUUID(), "Partial", services.LineItemSelection{
			PartIDs: []kernel.UUID{parts[0].ID(), kernel.NewUUID()},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Len(t, source.Parts(), len(parts))
		assert.Len(t, source.Labor(), len(labor))
	})
}
