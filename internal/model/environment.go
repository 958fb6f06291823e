package model

// Environment names the deployment stage the service runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// IsProduction reports whether name denotes the production environment.
func IsProduction(name string) bool {
	return Environment(name) == EnvironmentProduction
}
