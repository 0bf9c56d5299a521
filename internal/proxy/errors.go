package proxy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoServerURI indicates that a client was requested without a
	// report server URI from any source.
	ErrNoServerURI = errors.New("report server uri is not set")

	// ErrItemNotFound maps the server's rsItemNotFound fault.
	ErrItemNotFound = errors.New("item not found")
	// ErrItemAlreadyExists maps the server's rsItemAlreadyExists fault.
	ErrItemAlreadyExists = errors.New("item already exists")
	// ErrAccessDenied maps the server's access-denied faults.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidItemPath maps the server's rsInvalidItemPath fault.
	ErrInvalidItemPath = errors.New("invalid item path")
	// ErrWrongItemType maps the server's rsWrongItemType fault.
	ErrWrongItemType = errors.New("wrong item type")
)

// mapFault translates a decoded SOAP fault into a sentinel error wrapped
// with the server's own message, so the original text survives errors.Is
// checks and error chains alike.
func mapFault(f faultEnvelope) error {
	message := strings.TrimSpace(f.Detail.Message)
	if message == "" {
		message = strings.TrimSpace(f.Reason)
	}

	switch f.errorCode() {
	case "rsItemNotFound":
		return fmt.Errorf("%w: %s", ErrItemNotFound, message)
	case "rsItemAlreadyExists":
		return fmt.Errorf("%w: %s", ErrItemAlreadyExists, message)
	case "rsAccessDenied", "rsAccessDeniedToSecureData":
		return fmt.Errorf("%w: %s", ErrAccessDenied, message)
	case "rsInvalidItemPath", "rsInvalidItemName":
		return fmt.Errorf("%w: %s", ErrInvalidItemPath, message)
	case "rsWrongItemType":
		return fmt.Errorf("%w: %s", ErrWrongItemType, message)
	}

	return fmt.Errorf("soap fault %s: %s", f.errorCode(), message)
}
