package category

import (
	"context"

	"github.com/katiyar-electronics/bill-engine/constants"
)

// Lookup guesses an asset category from a model number. Implementations
// return the empty category (not an error) when nothing matches; an error
// means the lookup itself failed and the caller should degrade gracefully.
type Lookup interface {
	Detect(ctx context.Context, modelNumber string) (constants.Category, error)
}
