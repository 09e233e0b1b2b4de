package topology

import "context"

// The Runner interface describes the capability to materialize a parsed
// topology, for example as containers or virtual machines wired together
// according to its links.
type Runner interface {
	// Run brings up the provided topology or returns an error. When the
	// context is canceled, implementations ought to make an effort to
	// clean up and release any previously acquired resources.
	Run(context.Context, *T) error
}
