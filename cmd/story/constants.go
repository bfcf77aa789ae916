package main

// Default limits for CLI commands.
const (
	DefaultListLimit = 20
)

// Valid export formats.
var validFormats = []string{"json", "markdown"}
