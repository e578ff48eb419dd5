package analyzer

// DriverConfig carries driver-specific settings from configuration.
type DriverConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
}

// DriverRegistry manages available analyzer drivers.
type DriverRegistry struct {
	drivers map[string]func(DriverConfig) (Analyzer, error)
}

// NewDriverRegistry creates a new driver registry.
func NewDriverRegistry() *DriverRegistry {
	return &DriverRegistry{
		drivers: make(map[string]func(DriverConfig) (Analyzer, error)),
	}
}

// Register registers a new driver factory under a name.
func (r *DriverRegistry) Register(name string, factory func(DriverConfig) (Analyzer, error)) {
	r.drivers[name] = factory
}

// Get builds a driver by name.
func (r *DriverRegistry) Get(name string, cfg DriverConfig) (Analyzer, error) {
	factory, ok := r.drivers[name]
	if !ok {
		return nil, &DriverNotFoundError{Name: name}
	}
	return factory(cfg)
}

// Has reports whether a driver is registered under name.
func (r *DriverRegistry) Has(name string) bool {
	_, ok := r.drivers[name]
	return ok
}

// Names lists the registered driver names.
func (r *DriverRegistry) Names() []string {
	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	return names
}

// DriverNotFoundError is returned when a requested driver doesn't exist.
type DriverNotFoundError struct {
	Name string
}

func (e *DriverNotFoundError) Error() string {
	return "analyzer driver not found: " + e.Name
}

// DefaultRegistry is the global driver registry.
var DefaultRegistry = NewDriverRegistry()
