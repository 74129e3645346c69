package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// InvalidTransitionError is returned when an operation is attempted on an
// entity that is not in the required source state. State is left unchanged.
type InvalidTransitionError struct {
	Entity string
	ID     string
	From   string
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s %s %s: status is %s", e.Action, e.Entity, e.ID, e.From)
}

// Is enables errors.Is() comparison for InvalidTransitionError
func (e *InvalidTransitionError) Is(target error) bool {
	t, ok := target.(*InvalidTransitionError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Action == t.Action
}

// ConflictError is returned when a second active reservation targets the same space and date
type ConflictError struct {
	Space      string
	Date       string
	ExistingID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("space %s is already reserved on %s by reservation %s", e.Space, e.Date, e.ExistingID)
}

// InUseError is returned when a walk-in session targets a space that is
// occupied right now, by another session or by a reservation
type InUseError struct {
	Space      string
	HolderKind string
	HolderID   string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("space %s is in use by %s %s", e.Space, e.HolderKind, e.HolderID)
}

// PersistenceError wraps a failure reported by the document store
type PersistenceError struct {
	Op         string
	Collection string
	ID         string
	Err        error
}

func (e *PersistenceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("store %s %s/%s: %v", e.Op, e.Collection, e.ID, e.Err)
	}
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// DerivationError reports a completed reservation whose cleaning duty failed to persist
type DerivationError struct {
	ReservationID  string
	CleaningDutyID string
	Err            error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("reservation %s completed but cleaning duty %s was not persisted: %v",
		e.ReservationID, e.CleaningDutyID, e.Err)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrDutyNotFound         = &NotFoundError{Entity: "duty"}
	ErrReservationNotFound  = &NotFoundError{Entity: "reservation"}
	ErrCleaningDutyNotFound = &NotFoundError{Entity: "cleaning duty"}
	ErrSaunaSessionNotFound = &NotFoundError{Entity: "sauna session"}
	ErrDocumentNotFound     = &NotFoundError{Entity: "document"}
)

// Already Exists Errors
var (
	ErrDocumentExists = &AlreadyExistsError{Entity: "document", Context: "with this id"}
)

// Business Logic Errors
var (
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrInvalidDateKey   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidClockTime = errors.New("invalid time, expected HH:MM")
	ErrInvalidYearMonth = errors.New("invalid month, expected YYYY-MM")
	ErrInvalidSpace     = errors.New("invalid space")
	ErrNotASauna        = errors.New("walk-in sessions are only kept for saunas")
	ErrInvalidDutyKind  = errors.New("invalid duty kind")
	ErrInvalidShift     = errors.New("invalid shift")
	ErrInvalidWeekdays  = errors.New("recurring duties need weekdays between 0 and 6")
)

// Authentication Errors
var (
	ErrMissingToken     = &AuthenticationError{Message: "authorization header required"}
	ErrInvalidToken     = &AuthenticationError{Message: "invalid or expired token"}
	ErrActorNotInCtx    = &AuthenticationError{Message: "actor not found in context"}
	ErrInsufficientRole = &AuthorizationError{Message: "role is not allowed to perform this action"}
)

// Configuration Errors
var (
	ErrJWTSecretNotSet      = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
	ErrUnknownStoreDriver   = &ConfigurationError{Message: "STORE_DRIVER must be postgres or memory"}
	ErrInvalidTenantTZ      = &ConfigurationError{Message: "TENANT_TIMEZONE is not a valid IANA zone"}
	ErrInvalidCleaningHours = &ConfigurationError{Message: "CLEANING_WINDOW_START must be before CLEANING_WINDOW_END"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsInUse checks if an error is an InUseError
func IsInUse(err error) bool {
	var inUseErr *InUseError
	return errors.As(err, &inUseErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// IsDerivation checks if an error is a DerivationError
func IsDerivation(err error) bool {
	var derivationErr *DerivationError
	return errors.As(err, &derivationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(entity, id, from, action string) error {
	return &InvalidTransitionError{Entity: entity, ID: id, From: from, Action: action}
}

// NewConflictError creates a new ConflictError
func NewConflictError(space, date, existingID string) error {
	return &ConflictError{Space: space, Date: date, ExistingID: existingID}
}

// NewInUseError creates a new InUseError
func NewInUseError(space, holderKind, holderID string) error {
	return &InUseError{Space: space, HolderKind: holderKind, HolderID: holderID}
}

// NewPersistenceError wraps a store failure. A nil err yields nil.
func NewPersistenceError(op, collection, id string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Collection: collection, ID: id, Err: err}
}

// NewDerivationError creates a new DerivationError
func NewDerivationError(reservationID, cleaningDutyID string, err error) error {
	return &DerivationError{ReservationID: reservationID, CleaningDutyID: cleaningDutyID, Err: err}
}
