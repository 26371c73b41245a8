package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds shared by the services. Handlers translate these into the
// HTTP shapes of the gateway; the services never see status codes.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductNotInCart   = errors.New("product not in cart")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminAccount       = errors.New("admin account cannot be deleted")
)

// ValidationError reports required fields missing from a request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// requireFields returns a ValidationError naming every field whose
// value is empty, or nil when all are present.
func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &ValidationError{Fields: missing}
}
