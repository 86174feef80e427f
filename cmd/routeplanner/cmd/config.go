package cmd

import "os"

// NetworkPath returns the network definition file from the MODALROUTE_NETWORK env var.
// Empty means the built-in reference network.
func NetworkPath() string {
	return os.Getenv("MODALROUTE_NETWORK")
}
