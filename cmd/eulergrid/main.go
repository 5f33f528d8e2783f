package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/akline/eulergrid/internal/config"
	"github.com/akline/eulergrid/internal/export"
	"github.com/akline/eulergrid/internal/expr"
	"github.com/akline/eulergrid/internal/solver"
	"github.com/akline/eulergrid/internal/storage"
	"github.com/akline/eulergrid/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	exprStr    string
	numSteps   int
	tStart     float64
	tEnd       float64
	y0         float64
	outFile    string
	noStore    bool
	showPlot   bool
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eulergrid",
		Short: "configuration-driven forward Euler ODE solver",
		RunE:  runSolve,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".eulergrid", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve dy/dt = f(t, y) and export the trajectory",
		RunE:  runSolve,
	}

	for _, cmd := range []*cobra.Command{rootCmd, solveCmd} {
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset problem")
		cmd.Flags().StringVar(&exprStr, "expr", config.DefaultExpression, "right-hand side f(t, y)")
		cmd.Flags().IntVar(&numSteps, "n", config.DefaultN, "number of steps")
		cmd.Flags().Float64Var(&tStart, "start", config.DefaultDomainStart, "domain start")
		cmd.Flags().Float64Var(&tEnd, "end", config.DefaultDomainEnd, "domain end")
		cmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "initial value y(start)")
		cmd.Flags().StringVar(&outFile, "out", config.DefaultCSVFile, "output CSV file")
		cmd.Flags().BoolVar(&noStore, "no-store", false, "do not record the run")
		cmd.Flags().BoolVar(&showPlot, "plot", false, "plot the solution after solving")
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a recorded run as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tEXPRESSION\tDOMAIN\tN")
			for name, cfg := range config.Presets {
				fmt.Fprintf(w, "%s\tdy/dt = %s\t[%g, %g]\t%d\n",
					name, cfg.ODE.Expression, cfg.Mesh.DomainStart, cfg.Mesh.DomainEnd, cfg.Mesh.N)
			}
			return w.Flush()
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "solve and play the trajectory back live",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset problem")
	liveCmd.Flags().StringVar(&exprStr, "expr", config.DefaultExpression, "right-hand side f(t, y)")
	liveCmd.Flags().IntVar(&numSteps, "n", config.DefaultN, "number of steps")
	liveCmd.Flags().Float64Var(&tStart, "start", config.DefaultDomainStart, "domain start")
	liveCmd.Flags().Float64Var(&tEnd, "end", config.DefaultDomainEnd, "domain end")
	liveCmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "initial value y(start)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(solveCmd, listCmd, plotCmd, exportCSVCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges the configuration sources: preset, then config file,
// then explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("expr") {
		cfg.ODE.Expression = exprStr
	}
	if cmd.Flags().Changed("n") {
		cfg.Mesh.N = numSteps
	}
	if cmd.Flags().Changed("start") {
		cfg.Mesh.DomainStart = tStart
	}
	if cmd.Flags().Changed("end") {
		cfg.Mesh.DomainEnd = tEnd
	}
	if cmd.Flags().Changed("y0") {
		cfg.InitialConditions.Y0 = y0
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.CSVFile = outFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func solveConfig(cfg *config.Config) (*solver.Solver, error) {
	f, err := expr.Compile(cfg.ODE.Expression)
	if err != nil {
		return nil, err
	}
	return solver.New(f, cfg.Mesh.DomainStart, cfg.Mesh.DomainEnd, cfg.InitialConditions.Y0, cfg.Mesh.N)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s, err := solveConfig(cfg)
	if err != nil {
		return err
	}

	fmt.Print(viz.Summary(cfg.ODE.Expression, cfg.Mesh.DomainStart, cfg.Mesh.DomainEnd,
		cfg.InitialConditions.Y0, s.StepSize(), s.NumSteps()))
	fmt.Println()

	for t, y := range s.Points() {
		fmt.Printf("t = %6.2f, y = %9.5f\n", t, y)
	}

	if showPlot {
		fmt.Println()
		fmt.Println(viz.Plot(s.Solution(), cfg.ODE.Expression, s.StepSize()))
	}

	// The trajectory is already on the console; storage or export trouble
	// is reported without discarding it.
	if !noStore {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to init run store: %v\n", err)
		} else if runID, err := st.Save(cfg.ODE.Expression, cfg.Mesh.DomainStart, cfg.Mesh.DomainEnd,
			cfg.InitialConditions.Y0, cfg.Mesh.N, s.Mesh(), s.Solution()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to record run: %v\n", err)
		} else {
			fmt.Printf("recorded run %s\n", runID)
		}
	}

	if err := export.WriteFile(cfg.Output.CSVFile, s.Mesh(), s.Solution()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to export to CSV: %v\n", err)
		return nil
	}
	fmt.Printf("solution exported to %s\n", cfg.Output.CSVFile)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEXPRESSION\tDOMAIN\tN\tH\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\tdy/dt = %s\t[%g, %g]\t%d\t%g\t%s\n",
			r.ID, r.Expression, r.DomainStart, r.DomainEnd, r.N, r.StepSize,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, solution, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	fmt.Print(viz.Summary(meta.Expression, meta.DomainStart, meta.DomainEnd, meta.Y0, meta.StepSize, meta.N))
	fmt.Println()
	fmt.Println(viz.Plot(solution, meta.Expression, meta.StepSize))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	mesh, solution, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}
	return export.Write(os.Stdout, mesh, solution)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s, err := solveConfig(cfg)
	if err != nil {
		return err
	}

	m := viz.NewLive(cfg.ODE.Expression, s.Mesh(), s.Solution(), s.StepSize(), frameRate)
	return viz.RunLive(m)
}
