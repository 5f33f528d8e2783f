// Package config loads and validates solver configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akline/eulergrid/internal/ode"
)

const (
	DefaultN           = 100
	DefaultDomainStart = 0.0
	DefaultDomainEnd   = 5.0
	DefaultY0          = 1.0
	DefaultExpression  = "cos(t) - y"
	DefaultCSVFile     = "solution.csv"
)

type Config struct {
	Mesh              MeshConfig       `yaml:"mesh"`
	InitialConditions InitialCondition `yaml:"initial_conditions"`
	ODE               ODEConfig        `yaml:"ode"`
	Output            OutputConfig     `yaml:"output"`
}

type MeshConfig struct {
	N           int     `yaml:"n"`
	DomainStart float64 `yaml:"domain_start"`
	DomainEnd   float64 `yaml:"domain_end"`
}

type InitialCondition struct {
	Y0 float64 `yaml:"y_0"`
}

type ODEConfig struct {
	Expression string `yaml:"expression"`
}

type OutputConfig struct {
	CSVFile string `yaml:"csv_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Mesh: MeshConfig{
			N:           DefaultN,
			DomainStart: DefaultDomainStart,
			DomainEnd:   DefaultDomainEnd,
		},
		InitialConditions: InitialCondition{Y0: DefaultY0},
		ODE:               ODEConfig{Expression: DefaultExpression},
		Output:            OutputConfig{CSVFile: DefaultCSVFile},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the structural constraints the solver relies on. Bad
// expressions are not detected here; that is the compiler's job.
func (c *Config) Validate() error {
	if c.Mesh.N < 1 {
		return fmt.Errorf("mesh.n = %d: %w", c.Mesh.N, ode.ErrStepCount)
	}
	if c.Mesh.DomainEnd <= c.Mesh.DomainStart {
		return fmt.Errorf("mesh domain [%g, %g]: %w", c.Mesh.DomainStart, c.Mesh.DomainEnd, ode.ErrDomain)
	}
	if c.ODE.Expression == "" {
		return fmt.Errorf("ode.expression must not be empty")
	}
	if c.Output.CSVFile == "" {
		return fmt.Errorf("output.csv_file must not be empty")
	}
	return nil
}
