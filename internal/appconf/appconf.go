package appconf

import "strings"

// Environment is the operating environment the process runs in.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFromString maps an environment name to an Environment. Unknown names
// fall back to Development.
func EnvFromString(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}
