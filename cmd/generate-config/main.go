package main

import (
	"os"

	"goldenflower/internal/config"
	"gopkg.in/yaml.v2"
)

// generate-config writes the default table configuration as yaml, e.g. > config.yaml
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
