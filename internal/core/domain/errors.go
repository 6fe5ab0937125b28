package domain

import "errors"

var (
	// ErrInvalidCredentials is the single error returned for every
	// authentication failure. Callers must not be able to tell whether the
	// email was unknown or the password wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail signals that an identity with the same email already
	// exists. The mongo unique index is the authoritative source of this
	// error; any pre-check in the workflow is an optimization only.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrIdentityNotFound is returned by the credential store when no
	// identity matches. The authentication workflow translates it to
	// ErrInvalidCredentials before it can reach a caller.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrWeakPassword signals a password below the configured minimum
	// length. The minimum is a policy knob, not a fixed rule.
	ErrWeakPassword = errors.New("password below minimum length")

	// ErrProfileMissing signals an identity that authenticated successfully
	// but has no matching domain profile. This is an internal consistency
	// fault, never a user error.
	ErrProfileMissing = errors.New("profile missing for identity")

	ErrCompanyNotFound  = errors.New("company not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrJobNotFound      = errors.New("job not found")

	// ErrMissingDocument signals an application submitted without a CV
	// attachment, or with an empty one.
	ErrMissingDocument = errors.New("application document missing or empty")

	// ErrDuplicateApplication signals that the same employee already applied
	// to the same job recently.
	ErrDuplicateApplication = errors.New("application already submitted")

	// ErrStorageFailure signals that the document could not be written to or
	// removed from stable storage.
	ErrStorageFailure = errors.New("document storage failure")

	ErrForbidden = errors.New("access forbidden")
)
