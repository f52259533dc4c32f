package main

import (
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

type config struct {
	Listen             string `yaml:"listen"`
	MetricsListen      string `yaml:"metricsListen"`
	Root               string `yaml:"root"`
	ReadTimeoutSeconds int    `yaml:"readTimeoutSeconds"`
	MaxLineBytes       int    `yaml:"maxLineBytes"`
	LogLevel           string `yaml:"logLevel"`
}

func defaultConfig() config {
	return config{
		Listen:             ":8080",
		Root:               "./www",
		ReadTimeoutSeconds: 30,
		LogLevel:           "info",
	}
}

func loadConfig(path string) (config, error) {
	c := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func (c config) readTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}
