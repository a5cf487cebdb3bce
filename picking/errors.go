package picking

import (
	"errors"
	"fmt"
)

// ErrUnknownProduct indicates a demanded product id is held by no storage
// in the graph at all — distinct from ErrInsufficientOffer, where the
// product exists but current supply falls short of demand (§7).
var ErrUnknownProduct = errors.New("picking: unknown product")

// UnknownProductError carries the offending product ids.
type UnknownProductError struct {
	ProductIDs []string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("picking: %d unknown product(s)", len(e.ProductIDs))
}

func (e *UnknownProductError) Unwrap() error { return ErrUnknownProduct }
