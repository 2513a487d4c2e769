package coursier

// BuildArgs exposes buildArgs for testing.
var BuildArgs = buildArgs
