package recommender

import (
	"errors"
	"fmt"
)

// NotFoundError signals that a query food is absent from the feature index.
// It is surfaced to the caller, never silently substituted.
type NotFoundError struct {
	Food string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("food %q not found in nutrition index", e.Food)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
