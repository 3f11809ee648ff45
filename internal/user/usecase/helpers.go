package usecase

import (
	"strings"

	"campus-assistant/internal/user"
)

// checkEmailDomain enforces the institutional email gate. An empty configured
// domain disables the check.
func (uc *implUseCase) checkEmailDomain(email string) error {
	domain := strings.TrimSpace(uc.cfg.AllowedEmailDomain)
	if domain == "" {
		return nil
	}
	if !strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(domain)) {
		return user.ErrInvalidEmailDomain
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
