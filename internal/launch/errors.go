package launch

// InvalidOptionsError reports a LaunchOptions value the synthesizer can't
// act on: a required field missing, or a caller-supplied list with the
// wrong element shape.
type InvalidOptionsError struct {
	Field   string
	Message string
}

func (e *InvalidOptionsError) Error() string {
	if e.Field == "" {
		return "invalid launch options: " + e.Message
	}
	return "invalid launch options: " + e.Field + ": " + e.Message
}
