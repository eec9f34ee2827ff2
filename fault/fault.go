// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// vault lifecycle errors
var (
	ErrInsufficientFunds      = ProcessError("insufficient funds")
	ErrInvalidAccount         = InvalidError("account does not match expected account")
	ErrInvalidAmount          = InvalidError("amount is zero or exceeds maximum allowed")
	ErrNotInCollection        = InvalidError("asset is not in the collection")
	ErrVaultAlreadyExists     = ExistsError("vault already exists for this asset")
	ErrVaultClosed            = NotFoundError("vault is closed")
	ErrVaultDerivationFailed  = ProcessError("vault address derivation failed")
	ErrVaultNotFound          = NotFoundError("vault not found")
	ErrVaultOwnerMismatch     = InvalidError("vault owner does not match asset custody")
	ErrMissingCustodyVerifier = InvalidError("custody verifier is required")
	ErrInvalidAuthority       = InvalidError("caller is not the update authority")
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = GenericError("already initialised")
	ErrAssetAlreadyExists           = ExistsError("asset already exists")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrCollectionAlreadyExists      = ExistsError("collection already exists")
	ErrCreditNotAllowed             = ProcessError("ledger credit is disabled")
	ErrHoldingAlreadyExists         = ExistsError("holding account already exists")
	ErrInvalidBase58                = InvalidError("invalid base58 account")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidFeePercentage         = InvalidError("fee percentage exceeds 100")
	ErrInvalidIpAddress             = InvalidError("invalid IP address")
	ErrInvalidKeyLength             = InvalidError("invalid key length")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidMinimumDeposit        = InvalidError("minimum deposit is zero or exceeds maximum amount")
	ErrInvalidRecordLength          = RecordError("invalid record length")
	ErrInvalidRecordTag             = RecordError("invalid record tag")
	ErrInvalidSeed                  = InvalidError("seed exceeds maximum length")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMaximumAmountIsZero          = InvalidError("maximum amount is zero")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotAvailableInReadOnlyMode   = ProcessError("not available in read-only mode")
	ErrNotInitialised               = GenericError("not initialised")
	ErrProgramChanged               = InvalidError("program identifier cannot change")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrRecordCorrupt                = RecordError("database record is corrupt")
	ErrTransactionNotActive         = ProcessError("transaction is not active")
	ErrUnknownAsset                 = NotFoundError("asset is not registered")
	ErrUnknownCollection            = NotFoundError("collection is not registered")
	ErrUnknownHoldingAccount        = NotFoundError("holding account is not registered")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
