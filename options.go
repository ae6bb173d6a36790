package segmap

import "segmap/detect"

// extractOptions holds configuration for one extraction run.
type extractOptions struct {
	// Leading pages the format detector may inspect.
	detectPages int

	// Non-empty skips detection entirely.
	convention detect.Convention
}

// defaultOptions returns the default extraction options.
func defaultOptions() extractOptions {
	return extractOptions{
		detectPages: detect.DefaultPages,
		convention:  "",
	}
}
