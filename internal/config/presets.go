package config

// Presets are ready-made initial value problems for experimentation.
var Presets = map[string]*Config{
	"decay": {
		Mesh:              MeshConfig{N: 100, DomainStart: 0.0, DomainEnd: 5.0},
		InitialConditions: InitialCondition{Y0: 1.0},
		ODE:               ODEConfig{Expression: "-y"},
		Output:            OutputConfig{CSVFile: "decay.csv"},
	},
	"driven": {
		Mesh:              MeshConfig{N: 200, DomainStart: 0.0, DomainEnd: 10.0},
		InitialConditions: InitialCondition{Y0: 0.0},
		ODE:               ODEConfig{Expression: "cos(t) - y"},
		Output:            OutputConfig{CSVFile: "driven.csv"},
	},
	"logistic": {
		Mesh:              MeshConfig{N: 400, DomainStart: 0.0, DomainEnd: 8.0},
		InitialConditions: InitialCondition{Y0: 0.1},
		ODE:               ODEConfig{Expression: "y * (1 - y)"},
		Output:            OutputConfig{CSVFile: "logistic.csv"},
	},
	"cooling": {
		Mesh:              MeshConfig{N: 150, DomainStart: 0.0, DomainEnd: 30.0},
		InitialConditions: InitialCondition{Y0: 90.0},
		ODE:               ODEConfig{Expression: "-0.1 * (y - 20)"},
		Output:            OutputConfig{CSVFile: "cooling.csv"},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
