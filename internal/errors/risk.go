package errors

var (
	ErrInvalidDeposit = &DomainError{
		Code:    "INVALID_DEPOSIT",
		Message: "deposit must be a positive amount in 10,000-won units, at most 10,000,000,000",
	}
	ErrInvalidRequest = &DomainError{
		Code:    "INVALID_REQUEST",
		Message: "invalid request body",
	}
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "unauthorized",
	}
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "insufficient role",
	}
	ErrAssessmentFailed = &DomainError{
		Code:    "ASSESSMENT_FAILED",
		Message: "risk assessment could not be completed",
	}
	ErrRateLimited = &DomainError{
		Code:    "RATE_LIMITED",
		Message: "too many requests, please try again later",
	}
	ErrRegistryWrite = &DomainError{
		Code:    "REGISTRY_WRITE_FAILED",
		Message: "failed to update registry",
	}
)
