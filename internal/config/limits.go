package config

const (
	DefaultMaxBodyBytes = 1 << 20 // 1MB
	MaxCLIInputBytes    = 5 << 20 // 5MB
)
