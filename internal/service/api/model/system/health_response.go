package system

// DependencyStatus is the health check result of one dependency.
type DependencyStatus struct {
	// Status is one of: healthy, unhealthy.
	Status string `json:"status"`
	// Message carries detail, such as the load error text.
	Message string `json:"message,omitempty"`
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	// Status is the aggregate server state: healthy, unhealthy.
	Status string `json:"status"`
	// Uptime is the server uptime in seconds.
	Uptime int64 `json:"uptime"`
	// Dependencies maps dependency name to its health check result.
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}
