package services

// HealthService implements the health service
type HealthService struct {
	name string
}

// HealthResult is the health check response body.
type HealthResult struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// NewHealthService creates a new health service
func NewHealthService(name string) *HealthService {
	return &HealthService{name: name}
}

// Check implements the health check method
func (s *HealthService) Check() HealthResult {
	return HealthResult{
		Status:  "healthy",
		Service: s.name,
	}
}
