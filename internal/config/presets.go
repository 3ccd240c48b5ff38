package config

var Presets = map[string]map[string]*Config{
	"exponential": {
		"decay": {
			System: "exponential", Scheme: "dopri5", Dt: 0.01, Duration: 5.0, Samples: DefaultSamples,
			InitState: []float64{1.0},
			Params:    SystemParams{Lambda: -1.0},
		},
		"growth": {
			System: "exponential", Scheme: "rk4", Dt: 0.01, Duration: 2.0, Samples: DefaultSamples,
			InitState: []float64{1.0},
			Params:    SystemParams{Lambda: 1.0},
		},
	},
	"oscillator": {
		"unit": {
			System: "oscillator", Scheme: "dopri5", Dt: 0.01, Duration: 20.0, Samples: DefaultSamples,
			InitState: []float64{1.0, 0.0},
			Params:    SystemParams{Omega: 1.0},
		},
		"stiffish": {
			System: "oscillator", Scheme: "dopri5", Dt: 0.001, Duration: 5.0, Samples: DefaultSamples,
			InitState: []float64{1.0, 0.0},
			Params:    SystemParams{Omega: 20.0},
		},
	},
	"lorenz": {
		"classic": {
			System: "lorenz", Scheme: "dopri5", Dt: 0.005, Duration: 30.0, Samples: DefaultSamples,
			InitState: []float64{1.0, 1.0, 1.0},
		},
	},
}

func GetPreset(system, name string) *Config {
	group, ok := Presets[system]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(system string) []string {
	group, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
