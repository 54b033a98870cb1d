package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps an environment name, including the short aliases "dev",
// "stage" and "prod", to an Environment. Unknown or empty names map to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// IsProduction reports whether the environment is production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// IsDevelopment reports whether the environment is development.
func (e Environment) IsDevelopment() bool {
	return e == Development
}

func (e Environment) String() string {
	return string(e)
}
