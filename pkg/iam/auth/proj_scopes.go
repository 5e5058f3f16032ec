package auth

// Job board scopes carried in admin tokens
const (
	ScopeAll       = "*"
	ScopeJobsAll   = "jobs:*"
	ScopeJobsRead  = "jobs:read"
	ScopeJobsWrite = "jobs:write"
)

// HasAnyScope reports whether granted contains one of wanted
func HasAnyScope(granted []string, wanted ...string) bool {
	for _, g := range granted {
		for _, w := range wanted {
			if g == w {
				return true
			}
		}
	}
	return false
}
