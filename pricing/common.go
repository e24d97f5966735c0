package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrNilCollaborator = errors.New("nil collaborator supplied")

// Zero is the neutral amount all totals start from.
var Zero = decimal.Zero
