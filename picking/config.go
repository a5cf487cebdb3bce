package picking

// Config mirrors §6's external configuration shape exactly.
type Config struct {
	// StartID is the shared staging-origin node every route begins at.
	StartID string

	// DestID is the shared outbound-dock node every route ends at.
	DestID string

	// NumRoutes is the number of independent picking carts to plan for.
	NumRoutes int

	// Debug, when non-nil and true, logs per-stage timing at Info level.
	// A nil Debug defers to IsTesting (testing runs default to verbose).
	Debug *bool

	// IsTesting toggles the default for Debug when it is left nil.
	IsTesting bool
}

// DefaultConfig returns §6's documented defaults:
// {start_id="start", dest_id="dest1", num_routes=1, debug=nil, is_testing=false}.
func DefaultConfig() Config {
	return Config{
		StartID:   "start",
		DestID:    "dest1",
		NumRoutes: 1,
		Debug:     nil,
		IsTesting: false,
	}
}

func (c Config) debugEnabled() bool {
	if c.Debug != nil {
		return *c.Debug
	}

	return c.IsTesting
}
