package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"homeswipe/pkg/errors"
)

// storeErr classifies a Firestore failure: outages and timeouts surface as
// retryable transient errors, everything else as internal.
func storeErr(message string, err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return errors.Unavailable(message, err)
	}
	return errors.Internal(message, err)
}
