package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Entry struct {
	Name            string  `yaml:"name"`
	Workload        string  `yaml:"workload"`
	Concurrency     int     `yaml:"concurrency"`
	Count           int     `yaml:"count"`
	DurationSeconds float64 `yaml:"duration_seconds"`
}

type Config struct {
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Report struct {
		Dir string `yaml:"dir"`
	} `yaml:"report"`

	Bench struct {
		MaxConcurrentRuns int `yaml:"max_concurrent_runs"`
	} `yaml:"bench"`

	Suite []Entry `yaml:"suite"`
}

func Default() Config {
	var c Config
	c.Log.Level = "info"
	c.Report.Dir = "reports"
	c.Bench.MaxConcurrentRuns = 1
	return c
}

func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}
