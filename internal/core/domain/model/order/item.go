package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object representing one line of an order: a product
// reference and a quantity. Items are immutable once the order is created.
type Item struct {
	product  string
	quantity int

	guard guard.ConstructorGuard
}

// NewItem creates an order line item. The product reference must be non-empty
// and the quantity must be positive.
func NewItem(product string, quantity int) (Item, error) {
	if product == "" {
		return Item{}, errs.NewValueIsRequiredError("product")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		product:  product,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Product returns the product reference.
func (i Item) Product() string {
	return i.product
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
