package cli

import "flag"

// Flags holds all command line flags
type Flags struct {
	Version *bool
	Json    *bool
	Verbose *bool
	Color   *string
}

// InitFlags registers all command line flags on fs
func InitFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Version: fs.Bool("version", false, "Show version information"),
		Json:    fs.Bool("json", false, "Output results in JSON format"),
		Verbose: fs.Bool("verbose", false, "Show every key and the session state after each line"),
		Color:   fs.String("color", "", "Colour results: auto, always or never (overrides GOCALC_COLOR)"),
	}
}
