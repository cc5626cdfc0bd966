package domain

// Credentials holds the API tokens and account context for both Yandex
// services. They are resolved once from configuration at process start and
// are immutable afterwards.
type Credentials struct {
	Direct      string
	Metrika     string
	Unified     string
	ClientLogin string
	UseSandbox  bool
}

// DirectToken returns the token used for Direct API calls, preferring the
// service-specific token over the unified one. An empty result means the
// service is not configured; callers report that before any network I/O.
func (c Credentials) DirectToken() string {
	if c.Direct != "" {
		return c.Direct
	}
	return c.Unified
}

// MetrikaToken returns the token used for Metrika API calls with the same
// fallback rule as DirectToken.
func (c Credentials) MetrikaToken() string {
	if c.Metrika != "" {
		return c.Metrika
	}
	return c.Unified
}
