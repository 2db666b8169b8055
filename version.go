package optsetter

// Version is the library version, overridable via ldflags.
//
//nolint:gochecknoglobals // set via ldflags at build time.
var Version = "0.1.0"
