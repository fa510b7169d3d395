package clients

import (
	"PeaceScapeAI/app/runtime"
)

type Interface interface {
	Subscribe(*runtime.Runtime)
}

type Client struct {
	runtime *runtime.Runtime
}

// Config selects which chat connectors to start.
type Config struct {
	Type    string `yaml:"type" json:"type" validate:"required,oneof=telegram discord"`
	Enabled bool   `yaml:"enabled" json:"enabled"`
}
