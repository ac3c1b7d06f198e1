package version

// Version is stamped at build time via -ldflags; see the Makefile.
var Version = "0.0.1"
