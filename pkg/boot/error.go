package boot

import "github.com/avila-r/failure"

var namespace = failure.Namespace("boot")

// ErrEnvironment covers configuration resolution failures.
var ErrEnvironment = namespace.Class("environment")
