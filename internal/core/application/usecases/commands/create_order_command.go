package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new repair document,
// either a quote or a work order, for a customer's vehicle.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, order.DocQuote, customerRef, vehicleRef,
//	    "Timing belt estimate", []string{"timing belt"})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	docType     order.DocType
	customerRef kernel.UUID
	vehicleRef  kernel.UUID
	title       string
	services    []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new repair document.
// Validates the identifiers, the document type, and the title.
func NewCreateOrderCommand(
	orderID kernel.UUID, docType order.DocType,
	customerRef, vehicleRef kernel.UUID, title string, services []string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		services: append([]string(nil), services...),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDocType(docType),
		cmd.setCustomerRef(customerRef),
		cmd.setVehicleRef(vehicleRef),
		cmd.setTitle(title),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new document will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DocType returns whether a quote or a work order is requested.
func (c CreateOrderCommand) DocType() order.DocType {
	return c.docType
}

// CustomerRef returns the opaque customer reference.
func (c CreateOrderCommand) CustomerRef() kernel.UUID {
	return c.customerRef
}

// VehicleRef returns the opaque vehicle reference.
func (c CreateOrderCommand) VehicleRef() kernel.UUID {
	return c.vehicleRef
}

// Title returns the document title.
func (c CreateOrderCommand) Title() string {
	return c.title
}

// Services returns the requested-service descriptions.
func (c CreateOrderCommand) Services() []string {
	return append([]string(nil), c.services...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDocType(docType order.DocType) error {
	if err := docType.Validate(); err != nil {
		return err
	}
	c.docType = docType
	return nil
}

func (c *CreateOrderCommand) setCustomerRef(customerRef kernel.UUID) error {
	if err := customerRef.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerRef", err)
	}
	c.customerRef = customerRef
	return nil
}

func (c *CreateOrderCommand) setVehicleRef(vehicleRef kernel.UUID) error {
	if err := vehicleRef.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicleRef", err)
	}
	c.vehicleRef = vehicleRef
	return nil
}

func (c *CreateOrderCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}
