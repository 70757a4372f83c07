// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type CapacityError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyAdmin              = ExistsError("already an admin")
	ErrAlreadyConfirmed          = ExistsError("transaction already confirmed")
	ErrAlreadyExecuted           = ExistsError("transaction already executed")
	ErrAlreadyFinalized          = StateError("sale already finalized")
	ErrAlreadyInitialised        = ProcessError("already initialised")
	ErrAlreadyWhitelisted        = ExistsError("address already whitelisted")
	ErrBelowMinimumContribution  = InvalidError("contribution below minimum")
	ErrCallDepth                 = ProcessError("call depth exceeded")
	ErrCapExceeded               = CapacityError("token cap exceeded")
	ErrContractExists            = ExistsError("contract already exists")
	ErrContractPaused            = StateError("contract is paused")
	ErrControllerKilled          = StateError("controller has been killed")
	ErrDailyLimitExceeded        = CapacityError("daily limit exceeded")
	ErrDatabaseVersion           = ProcessError("incompatible database version")
	ErrDuplicateOwner            = InvalidError("duplicate owner")
	ErrEmptyList                 = InvalidError("list is empty")
	ErrInsufficientAllowance     = CapacityError("insufficient allowance")
	ErrInsufficientBalance       = CapacityError("insufficient balance")
	ErrInsufficientConfirmations = StateError("insufficient confirmations")
	ErrInsufficientFunds         = CapacityError("insufficient funds")
	ErrInvalidAddress            = InvalidError("invalid address")
	ErrInvalidAmount             = InvalidError("amount is invalid")
	ErrInvalidArgument           = InvalidError("invalid payload argument")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidDataDirectory      = InvalidError("data directory is not valid")
	ErrInvalidMethod             = InvalidError("unknown method")
	ErrInvalidMode               = InvalidError("exactly one of controller or token is required")
	ErrInvalidPayload            = InvalidError("payload cannot be decoded")
	ErrInvalidRate               = InvalidError("rate must be positive")
	ErrInvalidRequirement        = InvalidError("required confirmations out of range")
	ErrInvalidStructPointer      = InvalidError("configuration must be a struct pointer")
	ErrInvalidTime               = InvalidError("time cannot be parsed")
	ErrInvalidTimeRange          = InvalidError("start time must precede end time")
	ErrInvalidTokenCap           = InvalidError("token cap must be positive")
	ErrMintingFinished           = StateError("minting is finished")
	ErrMintingNotFinished        = StateError("minting is not finished")
	ErrNoConfiguration           = InvalidError("configuration did not return a table")
	ErrNoOwners                  = InvalidError("owner list is empty")
	ErrNoRefundAvailable         = NotFoundError("no refund available")
	ErrNotAContract              = InvalidError("address is not a contract")
	ErrNotAdmin                  = NotFoundError("not an admin")
	ErrNotConfirmed              = NotFoundError("transaction not confirmed by caller")
	ErrNotFoundName              = NotFoundError("name not found in address book")
	ErrNotInitialised            = ProcessError("not initialised")
	ErrNotLedgerOwner            = StateError("controller does not own the ledger")
	ErrNotPaused                 = StateError("contract is not paused")
	ErrNotPayable                = InvalidError("destination does not accept value")
	ErrNotWhitelisted            = AuthorisationError("address not whitelisted")
	ErrOverflow                  = CapacityError("arithmetic overflow")
	ErrSaleClosed                = StateError("sale is closed")
	ErrSaleNotEnded              = StateError("sale has not ended")
	ErrSelfTransfer              = InvalidError("transfer to self")
	ErrSuccessorMismatch         = InvalidError("successor controller does not govern the same ledger")
	ErrTransactionInUse          = ProcessError("transaction already in use")
	ErrTransactionNotFound       = NotFoundError("transaction not found")
	ErrTransactionNotInUse       = ProcessError("transaction not in use")
	ErrUnauthorised              = AuthorisationError("unauthorised")
	ErrVaultNotActive            = StateError("vault is not active")
	ErrVaultNotRefunding         = StateError("vault is not refunding")
	ErrWrongContractKind         = InvalidError("address is the wrong kind of contract")
	ErrZeroAddress               = InvalidError("zero address")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e CapacityError) Error() string      { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e StateError) Error() string         { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrCapacity(e error) bool      { _, ok := e.(CapacityError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrState(e error) bool         { _, ok := e.(StateError); return ok }
