package services

// ErrorKind classifies a service failure so the access boundary can map it
// to a transport status without inspecting messages.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindConflict
	KindUnauthorized
	KindForbidden
	KindCapacityExceeded
)

// ServiceError is the error type every service returns for business-rule
// failures. Anything else escaping a service is a server fault.
type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NotFound(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func Unauthorized(message string) *ServiceError {
	return &ServiceError{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *ServiceError {
	return &ServiceError{Kind: KindForbidden, Message: message}
}

func CapacityExceeded(message string) *ServiceError {
	return &ServiceError{Kind: KindCapacityExceeded, Message: message}
}
