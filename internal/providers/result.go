package providers

import (
	"github.com/filearchitect/desktop/backend/internal/shared/errs"
	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

// Success wraps data in a successful result
func Success(data interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure reports a plain message as an InvalidArgument failure
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg, Kind: errs.KindInvalidArgument.String()}, nil
}

// FailureErr translates err into a failed result carrying its kind name
func FailureErr(err error) (*types.Result, error) {
	msg := err.Error()
	return &types.Result{Success: false, Error: &msg, Kind: errs.KindOf(err).String()}, nil
}

// Done is the result for commands that return nothing
func Done(err error) (*types.Result, error) {
	if err != nil {
		return FailureErr(err)
	}
	return Success(nil)
}
