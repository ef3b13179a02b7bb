package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrAddPartCommandIsNotConstructed = errors.New(
	"AddPartCommand must be created via NewAddPartCommand constructor",
)

// AddPartCommand represents a request to add a part line item to an order's
// ledger. Sourcing fields (part number, vendor, supplier) are optional at
// add time and can be filled in later.
type AddPartCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	partID          kernel.UUID
	name            string
	partNumber      string
	vendor          string
	supplier        string
	quantity        int
	unitCost        kernel.Money
	unitPrice       kernel.Money
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewAddPartCommand creates a command to add a part line item.
func NewAddPartCommand(
	orderID, partID kernel.UUID, name, partNumber, vendor, supplier string,
	quantity int, unitCost, unitPrice kernel.Money, expectedVersion int,
) (AddPartCommand, error) {
	cmd := AddPartCommand{
		partNumber: partNumber,
		vendor:     vendor,
		supplier:   supplier,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartID(partID),
		cmd.setName(name),
		cmd.setQuantity(quantity),
		cmd.setUnitCost(unitCost),
		cmd.setUnitPrice(unitPrice),
		cmd.setExpectedVersion(expectedVersion),
	); err != nil {
		return AddPartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPartCommand) Validate() error {
	return c.guard.Validate(ErrAddPartCommandIsNotConstructed)
}

func (c AddPartCommand) OrderID() kernel.UUID    { return c.orderID }
func (c AddPartCommand) PartID() kernel.UUID     { return c.partID }
func (c AddPartCommand) Name() string            { return c.name }
func (c AddPartCommand) PartNumber() string      { return c.partNumber }
func (c AddPartCommand) Vendor() string          { return c.vendor }
func (c AddPartCommand) Supplier() string        { return c.supplier }
func (c AddPartCommand) Quantity() int           { return c.quantity }
func (c AddPartCommand) UnitCost() kernel.Money  { return c.unitCost }
func (c AddPartCommand) UnitPrice() kernel.Money { return c.unitPrice }
func (c AddPartCommand) ExpectedVersion() int    { return c.expectedVersion }

func (c *AddPartCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddPartCommand) setPartID(partID kernel.UUID) error {
	if err := partID.Validate(); err != nil {
		return err
	}
	c.partID = partID
	return nil
}

func (c *AddPartCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("part name")
	}
	c.name = name
	return nil
}

func (c *AddPartCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}

func (c *AddPartCommand) setUnitCost(unitCost kernel.Money) error {
	if err := unitCost.Validate(); err != nil {
		return err
	}
	c.unitCost = unitCost
	return nil
}

func (c *AddPartCommand) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	c.unitPrice = unitPrice
	return nil
}

func (c *AddPartCommand) setExpectedVersion(expectedVersion int) error {
	if expectedVersion < 1 {
		return errs.NewValueIsInvalidError("expectedVersion")
	}
	c.expectedVersion = expectedVersion
	return nil
}
