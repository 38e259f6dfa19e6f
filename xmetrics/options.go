package xmetrics

const (
	// DefaultNamespace is the prometheus namespace applied when a metric or Options does not supply one
	DefaultNamespace = "xmidt"

	// DefaultSubsystem is the prometheus subsystem applied when a metric or Options does not supply one
	DefaultSubsystem = "syncaux"
)

// Options is the configurable options for creating a Registry
type Options struct {
	// Namespace is the prometheus namespace applied to all metrics that do not set one.
	Namespace string `json:"namespace"`

	// Subsystem is the prometheus subsystem applied to all metrics that do not set one.
	Subsystem string `json:"subsystem"`

	// Metrics defines ad hoc metrics, merged with the preregistered modules.
	Metrics []Metric `json:"metrics"`
}

func (o *Options) namespace() string {
	if o != nil && len(o.Namespace) > 0 {
		return o.Namespace
	}

	return DefaultNamespace
}

func (o *Options) subsystem() string {
	if o != nil && len(o.Subsystem) > 0 {
		return o.Subsystem
	}

	return DefaultSubsystem
}

func (o *Options) metrics() []Metric {
	if o != nil {
		return o.Metrics
	}

	return nil
}
