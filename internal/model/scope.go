package model

// Scope carries the identity of the caller through the pipeline.
// Session and user IDs are opaque keys owned by the frontend.
type Scope struct {
	SessionID string
	UserID    string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
