package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/odekit/internal/config"
	"github.com/san-kum/odekit/internal/interp"
	"github.com/san-kum/odekit/internal/rk"
	"github.com/san-kum/odekit/internal/state"
	"github.com/san-kum/odekit/internal/systems"
	"github.com/san-kum/odekit/internal/viz"
)

var (
	configFile string
	preset     string
	scheme     string
	dt         float64
	duration   float64
	samples    int
	lambda     float64
	omega      float64
	initState  []float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odekit",
		Short: "Runge-Kutta stepping with dense output",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset for the system")
	rootCmd.PersistentFlags().StringVar(&scheme, "scheme", "dopri5", "integration scheme (dopri5, rk4)")
	rootCmd.PersistentFlags().Float64Var(&dt, "dt", config.DefaultDt, "step width")
	rootCmd.PersistentFlags().Float64Var(&duration, "time", config.DefaultDuration, "total integration time")
	rootCmd.PersistentFlags().Float64Var(&lambda, "lambda", config.DefaultLambda, "exponential rate")
	rootCmd.PersistentFlags().Float64Var(&omega, "omega", config.DefaultOmega, "oscillator frequency")
	rootCmd.PersistentFlags().Float64SliceVar(&initState, "init", nil, "initial state components")

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "integrate with fixed steps and plot the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runIntegration,
	}

	denseCmd := &cobra.Command{
		Use:   "dense [system]",
		Short: "take one step and sweep its dense-output polynomial",
		Args:  cobra.ExactArgs(1),
		RunE:  runDense,
	}
	denseCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "evaluations across the step")

	liveCmd := &cobra.Command{
		Use:   "live [system]",
		Short: "animate the integration in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}

	rootCmd.AddCommand(runCmd, denseCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, system string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(system, preset)
		if cfg == nil {
			return nil, fmt.Errorf("no preset %q for system %q (have: %s)",
				preset, system, strings.Join(config.ListPresets(system), ", "))
		}
	default:
		cfg = config.DefaultConfig()
	}

	cfg.System = system
	flags := cmd.Flags()
	if flags.Changed("scheme") || cfg.Scheme == "" {
		cfg.Scheme = scheme
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("samples") {
		cfg.Samples = samples
	}
	if flags.Changed("lambda") {
		cfg.Params.Lambda = lambda
	}
	if flags.Changed("omega") {
		cfg.Params.Omega = omega
	}
	if flags.Changed("init") {
		cfg.InitState = initState
	}
	return cfg, cfg.Validate()
}

func buildTableau(name string) (*rk.ButcherTableau, error) {
	switch name {
	case "dopri5":
		return rk.DormandPrince(), nil
	case "rk4":
		return rk.ClassicalRK4(), nil
	default:
		return nil, fmt.Errorf("unknown scheme %q", name)
	}
}

func buildSystem(cfg *config.Config) (rk.DerivFn, state.Structured, error) {
	init := cfg.GetInitState()
	switch cfg.System {
	case "exponential":
		sys := systems.Exponential{Lambda: cfg.Params.Lambda}
		return sys.Derive, state.Vector(init), nil
	case "oscillator":
		if len(init) != 2 {
			return nil, nil, fmt.Errorf("oscillator needs 2 state components, got %d", len(init))
		}
		sys := systems.HarmonicOscillator{Omega: cfg.Params.Omega}
		return sys.Derive, state.Vector(init), nil
	case "lorenz":
		if len(init) != 3 {
			return nil, nil, fmt.Errorf("lorenz needs 3 state components, got %d", len(init))
		}
		return systems.NewLorenz().Derive, state.Vector(init), nil
	case "lotka":
		sys := systems.NewLotkaVolterra()
		return sys.Derive, sys.DefaultState(), nil
	default:
		return nil, nil, fmt.Errorf("unknown system %q", cfg.System)
	}
}

func runIntegration(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}
	tab, err := buildTableau(cfg.Scheme)
	if err != nil {
		return err
	}
	fn, y, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	f := fn(0, y)
	t := 0.0
	steps := int(cfg.Duration / cfg.Dt)
	history := make([]float64, 0, steps+1)
	history = append(history, state.Leaves(y)[0][0])
	maxErr := 0.0

	for i := 0; i < steps; i++ {
		res, err := rk.Step(fn, y, f, t, cfg.Dt, tab)
		if err != nil {
			return err
		}
		y = res.Y1
		f = res.F1
		t += cfg.Dt
		if res.Y1Error != nil {
			if n := state.Norm(res.Y1Error); n > maxErr {
				maxErr = n
			}
		}
		history = append(history, state.Leaves(y)[0][0])
	}

	fmt.Println(viz.Header(fmt.Sprintf("%s · %s · dt=%g", cfg.System, cfg.Scheme, cfg.Dt)))
	fmt.Println(viz.Plot(history, "y[0]"))
	fmt.Println(viz.Stat("final t", fmt.Sprintf("%.4f", t)))
	fmt.Println(viz.Stat("final y", formatState(y)))
	if tab.CError != nil {
		fmt.Println(viz.Stat("max |err|", fmt.Sprintf("%.3e", maxErr)))
	}
	return nil
}

func runDense(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}
	tab, err := buildTableau(cfg.Scheme)
	if err != nil {
		return err
	}
	if tab.CMid == nil {
		return fmt.Errorf("scheme %q has no midpoint weights; dense output needs dopri5", cfg.Scheme)
	}
	fn, y0, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	f0 := fn(0, y0)
	res, err := rk.Step(fn, y0, f0, 0, cfg.Dt, tab)
	if err != nil {
		return err
	}
	coeffs, err := interp.FromStep(y0, res.Y1, res.K, cfg.Dt, tab)
	if err != nil {
		return err
	}

	sweep := make([]float64, cfg.Samples)
	for i := range sweep {
		t := cfg.Dt * float64(i) / float64(cfg.Samples-1)
		v, err := interp.Evaluate(coeffs, 0, cfg.Dt, t)
		if err != nil {
			return err
		}
		sweep[i] = state.Leaves(v)[0][0]
	}

	start, err := interp.Evaluate(coeffs, 0, cfg.Dt, 0)
	if err != nil {
		return err
	}
	end, err := interp.Evaluate(coeffs, 0, cfg.Dt, cfg.Dt)
	if err != nil {
		return err
	}

	fmt.Println(viz.Header(fmt.Sprintf("%s · dense output over one %g step", cfg.System, cfg.Dt)))
	fmt.Println(viz.Plot(sweep, fmt.Sprintf("p(t), %d samples", cfg.Samples)))
	fmt.Println(viz.Stat("y0", formatState(y0)))
	fmt.Println(viz.Stat("y1", formatState(res.Y1)))
	fmt.Println(viz.Stat("|p(t0)-y0|", fmt.Sprintf("%.3e", distance(start, y0))))
	fmt.Println(viz.Stat("|p(t1)-y1|", fmt.Sprintf("%.3e", distance(end, res.Y1))))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}
	tab, err := buildTableau(cfg.Scheme)
	if err != nil {
		return err
	}
	fn, y0, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	model := viz.NewModel(cfg.System, fn, tab, y0, cfg.Dt)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func formatState(s state.Structured) string {
	parts := make([]string, 0, 4)
	for _, l := range state.Leaves(s) {
		for _, v := range l {
			parts = append(parts, fmt.Sprintf("%.6f", v))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func distance(a, b state.Structured) float64 {
	la, lb := state.Leaves(a), state.Leaves(b)
	sum := 0.0
	for i := range la {
		for j := range la[i] {
			d := la[i][j] - lb[i][j]
			sum += d * d
		}
	}
	return math.Sqrt(sum)
}
