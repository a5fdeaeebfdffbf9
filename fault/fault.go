// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EncodingError GenericError
type ExistsError GenericError
type InternalError GenericError
type InvalidError GenericError
type InvalidTransactionError GenericError
type KeyError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type SigningError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrAddressNotAuthorized      = InvalidTransactionError("address is not authorized")
	ErrBatchSignerMismatch       = InvalidTransactionError("batch signer does not match batcher public key")
	ErrBatchTransactionsMismatch = InvalidTransactionError("batch transaction ids do not match transactions")
	ErrCorruptStateValue         = InternalError("stored value is not a 4 byte quantity")
	ErrEmptyBatch                = InvalidTransactionError("batch has no transactions")
	ErrEmptyBatchList            = InvalidTransactionError("batch list has no batches")
	ErrEmptyIdentifier           = EncodingError("identifier is empty")
	ErrIdentifierNotUTF8         = EncodingError("identifier is not valid UTF-8")
	ErrInvalidAddress            = InvalidTransactionError("invalid address")
	ErrInvalidCommand            = EncodingError("invalid command")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidPrivateKey         = KeyError("invalid private key")
	ErrInvalidPublicKey          = KeyError("invalid public key")
	ErrInvalidResultantQuantity  = InvalidTransactionError("Invalid resultant quantity")
	ErrInvalidSignature          = SigningError("invalid signature")
	ErrKeyFileEmpty              = KeyError("key file is empty")
	ErrMissingPayload            = InvalidTransactionError("payload is missing")
	ErrNegativeQuantity          = EncodingError("quantity is negative")
	ErrNonCanonicalPayload       = InvalidTransactionError("payload is not in canonical form")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrPayloadHashMismatch       = InvalidTransactionError("payload sha512 does not match header")
	ErrQueueFull                 = ProcessError("batch queue is full")
	ErrRateLimiting              = ProcessError("rate limiting")
	ErrRegistrationFailed        = ProcessError("registration with validator failed")
	ErrRequiredCommand           = InvalidError("command is required")
	ErrRequiredIdentifier        = InvalidError("identifier is required")
	ErrRequiredQuantity          = InvalidError("quantity is required")
	ErrSubscriptionFailed        = ProcessError("event subscription failed")
	ErrTimeout                   = ProcessError("timeout")
	ErrUnknownFamily             = InvalidTransactionError("unknown transaction family")
	ErrUnexpectedMessage         = ProcessError("unexpected message type")
	ErrUnexpectedStatus          = ProcessError("unexpected response status")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EncodingError) Error() string           { return string(e) }
func (e ExistsError) Error() string             { return string(e) }
func (e InternalError) Error() string           { return string(e) }
func (e InvalidError) Error() string            { return string(e) }
func (e InvalidTransactionError) Error() string { return string(e) }
func (e KeyError) Error() string                { return string(e) }
func (e NotFoundError) Error() string           { return string(e) }
func (e ProcessError) Error() string            { return string(e) }
func (e SigningError) Error() string            { return string(e) }

// determine the class of an error
func IsErrEncoding(e error) bool           { _, ok := e.(EncodingError); return ok }
func IsErrExists(e error) bool             { _, ok := e.(ExistsError); return ok }
func IsErrInternal(e error) bool           { _, ok := e.(InternalError); return ok }
func IsErrInvalid(e error) bool            { _, ok := e.(InvalidError); return ok }
func IsErrInvalidTransaction(e error) bool { _, ok := e.(InvalidTransactionError); return ok }
func IsErrKey(e error) bool                { _, ok := e.(KeyError); return ok }
func IsErrNotFound(e error) bool           { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool            { _, ok := e.(ProcessError); return ok }
func IsErrSigning(e error) bool            { _, ok := e.(SigningError); return ok }
