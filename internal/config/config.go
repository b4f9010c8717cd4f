package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Signer SignerConfig `yaml:"signer"`
}

// ServerConfig represents the HTTP signing service configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// SignerConfig represents how the node/wallet CLI is reached
type SignerConfig struct {
	CLIPath    string `yaml:"cli_path"`    // node/wallet CLI binary (default: bitcoin-cli)
	DockerPath string `yaml:"docker_path"` // container runtime binary (default: docker)
	Container  string `yaml:"container"`   // container ID running bitcoind with the wallet; empty = local CLI
}

// Load loads configuration from a YAML file and environment variables
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: 8080,
			Host: "0.0.0.0",
		},
		Signer: SignerConfig{
			CLIPath:    "bitcoin-cli",
			DockerPath: "docker",
		},
	}

	// Load from YAML file if it exists
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	cfg.loadEnv()

	return cfg, nil
}

func (c *Config) loadEnv() {
	// Server config
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}

	// Signer config
	if cli := os.Getenv("SIGNER_CLI_PATH"); cli != "" {
		c.Signer.CLIPath = cli
	}
	if docker := os.Getenv("SIGNER_DOCKER_PATH"); docker != "" {
		c.Signer.DockerPath = docker
	}
	if container := os.Getenv("BITCOIND_CONTAINER"); container != "" {
		c.Signer.Container = container
	}
}

// Addr returns the host:port the HTTP signing service listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
