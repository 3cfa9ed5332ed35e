package build

// DeploymentType is an enum specifying the deployment to compile.
type DeploymentType byte

const (
	// Development is a deployment whose package loggers follow the log
	// type: stdlog builds write them to stderr, other builds keep them
	// disabled until the command hands over its backend.
	Development DeploymentType = iota

	// Production is a deployment whose package loggers stay silent until
	// the command wires them to its backend.
	Production
)

// String returns a human readable name for a build type.
func (b DeploymentType) String() string {
	switch b {
	case Development:
		return "development"
	case Production:
		return "production"
	default:
		return "unknown"
	}
}
