package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/pagesig"
	"gopkg.in/yaml.v3"
)

// loadWeights reads a WeightConfig from a YAML file, e.g.:
//
//	relevancy: 0.4
//	wordCount: 0.2
//	links: 0.2
//	sections: 0.1
//	author: 0.1
func loadWeights(path string) (pagesig.WeightConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pagesig.WeightConfig{}, fmt.Errorf("reading weight config %q: %w", path, err)
	}

	var weights pagesig.WeightConfig
	if err := yaml.Unmarshal(data, &weights); err != nil {
		return pagesig.WeightConfig{}, fmt.Errorf("parsing weight config %q: %w", path, err)
	}
	return weights, nil
}
