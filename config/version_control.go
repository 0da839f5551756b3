package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	Main_version = "v1.2.0"

	// Modular tools
	Benchmark      = "v1.0.1"
	Mimic          = "v1.2.0"
	FASTA_Overview = "v2.1.0"
	Sanity_check   = "v1.0.0"
)
