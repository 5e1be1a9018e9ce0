package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	// Setup failures, fatal at startup.
	ConfigError failure.ErrorCode = "ConfigError"

	// Market API failures, mapped to per-item outcomes.
	TransportError    failure.ErrorCode = "TransportError"
	APILogicError     failure.ErrorCode = "ApiLogicError"
	SessionExpired    failure.ErrorCode = "SessionExpired"
	NumericParseError failure.ErrorCode = "NumericParseError"
	EncryptionError   failure.ErrorCode = "EncryptionError"

	JournalUnavailable failure.ErrorCode = "JournalUnavailable"
)
