package errors

import (
	"net/http"

	"dcars/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_EXISTS",
		"A profile already exists for this account",
		"",
	)

	ErrAccountSuspended = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_SUSPENDED",
		"This account has been suspended",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Invalid role",
		"",
	)

	ErrSellerRoleRequired = NewBaseError(
		http.StatusForbidden,
		"SELLER_ROLE_REQUIRED",
		"Only sellers can perform this action",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired access token",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"This email is already registered",
		"",
	)

	ErrIdentityProviderFailed = NewBaseError(
		http.StatusBadGateway,
		"IDENTITY_PROVIDER_FAILED",
		"Authentication service is unavailable",
		"",
	)

	// Vehicle-related errors
	ErrVehicleNotFound = NewBaseError(
		http.StatusNotFound,
		"VEHICLE_NOT_FOUND",
		"Vehicle not found",
		"",
	)

	ErrNotVehicleOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_VEHICLE_OWNER",
		"You do not own this listing",
		"",
	)

	ErrListingLimitReached = NewBaseError(
		http.StatusForbidden,
		"LISTING_LIMIT_REACHED",
		"Listing limit for your plan has been reached",
		"",
	)

	ErrInvalidVehicleStatus = NewBaseError(
		http.StatusConflict,
		"INVALID_VEHICLE_STATUS",
		"This action is not allowed for the listing's current status",
		"",
	)

	ErrVehicleNotAvailable = NewBaseError(
		http.StatusConflict,
		"VEHICLE_NOT_AVAILABLE",
		"This vehicle is not available",
		"",
	)

	ErrImageNotFound = NewBaseError(
		http.StatusNotFound,
		"IMAGE_NOT_FOUND",
		"Image not found",
		"",
	)

	ErrImageLimitReached = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_LIMIT_REACHED",
		"Maximum number of images reached",
		"",
	)

	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"File must be an image within the size limit",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusBadGateway,
		"STORAGE_FAILED",
		"File storage is unavailable",
		"",
	)

	// Messaging-related errors
	ErrConversationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVERSATION_NOT_FOUND",
		"Conversation not found",
		"",
	)

	ErrNotConversationParticipant = NewBaseError(
		http.StatusForbidden,
		"NOT_CONVERSATION_PARTICIPANT",
		"You are not part of this conversation",
		"",
	)

	ErrCannotMessageSelf = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_MESSAGE_SELF",
		"You cannot message yourself",
		"",
	)

	ErrMessageTooLong = NewBaseError(
		http.StatusBadRequest,
		"MESSAGE_TOO_LONG",
		"Message is empty or too long",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, slow down",
		"",
	)

	// Payment-related errors
	ErrTransactionNotFound = NewBaseError(
		http.StatusNotFound,
		"TRANSACTION_NOT_FOUND",
		"Transaction not found",
		"",
	)

	ErrInvalidTransactionKind = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRANSACTION_KIND",
		"Unsupported transaction kind",
		"",
	)

	ErrInvalidPaymentProvider = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT_PROVIDER",
		"Unsupported payment provider",
		"",
	)

	ErrCannotBuyOwnVehicle = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_BUY_OWN_VEHICLE",
		"You cannot buy your own vehicle",
		"",
	)

	ErrInvalidWebhookSignature = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WEBHOOK_SIGNATURE",
		"Webhook signature verification failed",
		"",
	)

	ErrInvalidWebhookPayload = NewBaseError(
		http.StatusBadRequest,
		"INVALID_WEBHOOK_PAYLOAD",
		"Webhook payload could not be parsed",
		"",
	)

	// Subscription-related errors
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"No active subscription",
		"",
	)

	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"Plan not found",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
