package configs

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"PeaceScapeAI/app/clients"
)

type Config struct {
	Clients []clients.Config `yaml:"clients" validate:"required,min=1,dive"`
	Model   ModelConfig      `yaml:"model"`
	Image   ImageConfig      `yaml:"image"`
}

type ModelConfig struct {
	BaseURL     string `yaml:"base_url" validate:"omitempty,url"`
	VisionModel string `yaml:"vision_model" validate:"required"`
	TextModel   string `yaml:"text_model" validate:"required"`
}

type ImageConfig struct {
	MaxSizeMB    int `yaml:"max_size_mb" validate:"min=1,max=20"`
	MaxDimension int `yaml:"max_dimension" validate:"min=256,max=8192"`
	JPEGQuality  int `yaml:"jpeg_quality" validate:"min=1,max=100"`
}

func Default() *Config {
	return &Config{
		Clients: []clients.Config{{Type: "telegram", Enabled: true}},
		Model: ModelConfig{
			VisionModel: "llama-3.2-90b-vision-preview",
			TextModel:   "llama-3.2-3b-preview",
		},
		Image: ImageConfig{
			MaxSizeMB:    4,
			MaxDimension: 2048,
			JPEGQuality:  85,
		},
	}
}

// LoadConfig reads the YAML config, expanding ${VAR} references from the
// environment first. A missing file yields the defaults. Zero-valued fields
// fall back to their defaults before validation.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read configs file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate configs: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if len(c.Clients) == 0 {
		c.Clients = def.Clients
	}
	if c.Model.VisionModel == "" {
		c.Model.VisionModel = def.Model.VisionModel
	}
	if c.Model.TextModel == "" {
		c.Model.TextModel = def.Model.TextModel
	}
	if c.Image.MaxSizeMB == 0 {
		c.Image.MaxSizeMB = def.Image.MaxSizeMB
	}
	if c.Image.MaxDimension == 0 {
		c.Image.MaxDimension = def.Image.MaxDimension
	}
	if c.Image.JPEGQuality == 0 {
		c.Image.JPEGQuality = def.Image.JPEGQuality
	}
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
