package validation

// Option configures the Validator.
type Option func(*Options)

// Options holds the configuration of the Validator.
type Options struct {
	// Constraints enables evaluation of ElementDefinition.constraint.
	Constraints bool
	// LenientPaths reports element paths which do not exist in the resource type
	// as warnings instead of failing the validation with ErrUnknownPath.
	LenientPaths bool
	// ReportUnsupported reports constraints whose expressions can not be evaluated
	// as information issues. They are skipped silently otherwise.
	ReportUnsupported bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		Constraints: true,
	}
}

// WithConstraints enables FHIRPath constraint validation.
func WithConstraints(enable bool) Option {
	return func(o *Options) {
		o.Constraints = enable
	}
}

// WithLenientPaths reports unknown element paths as warnings.
func WithLenientPaths(enable bool) Option {
	return func(o *Options) {
		o.LenientPaths = enable
	}
}

// WithUnsupportedReport reports constraints which could not be evaluated.
func WithUnsupportedReport(enable bool) Option {
	return func(o *Options) {
		o.ReportUnsupported = enable
	}
}
