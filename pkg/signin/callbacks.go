package signin

import (
	"context"
	"strings"
)

// AllowEmailDomains returns a Callback that denies addresses outside the
// given domains. With no domains every address is allowed.
func AllowEmailDomains(domains ...string) Callback {
	allowed := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(d, "@")))
		if d != "" {
			allowed[d] = struct{}{}
		}
	}

	return func(_ context.Context, _ Profile, _ Account, cc CallbackContext) (Decision, error) {
		if len(allowed) == 0 {
			return Allow(), nil
		}
		_, domain, found := strings.Cut(cc.Email, "@")
		if !found {
			return Deny(), nil
		}
		_, ok := allowed[domain]
		return Bool(ok), nil
	}
}
