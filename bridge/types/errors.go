package types

import "errors"

var (
	ErrInvalidGlobalIndex        = errors.New("invalid global index")
	ErrInvalidProof              = errors.New("invalid smt proof")
	ErrGlobalExitRootNotFound    = errors.New("global exit root not found")
	ErrAlreadyClaimed            = errors.New("already claimed")
	ErrDestinationNetworkInvalid = errors.New("destination network invalid")
	ErrAmountOrBalanceMismatch   = errors.New("amount does not match balance")
	ErrDepositCountMismatch      = errors.New("deposit count mismatch")
	ErrUnauthorized              = errors.New("caller is not allowed to update the exit root")
)
