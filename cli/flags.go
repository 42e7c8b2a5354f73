package cli

const (
	FlagHome     = "home"
	FlagLogLevel = "log-level"
	FlagFormat   = "format"
	FlagHex      = "hex"
)
