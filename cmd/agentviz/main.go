package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/agentviz/internal/abm"
	"github.com/san-kum/agentviz/internal/charts"
	"github.com/san-kum/agentviz/internal/config"
	"github.com/san-kum/agentviz/internal/storage"
	"github.com/san-kum/agentviz/internal/viz"
	"github.com/san-kum/agentviz/internal/wealth"
)

var (
	dataDir    string
	numAgents  int
	gridWidth  int
	gridHeight int
	steps      int
	seed       int64
	configFile string
	preset     string
	frameRate  int
	theme      string
	outDir     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "agentviz",
		Short: "agent-based wealth exchange lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".agentviz", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation headless",
		RunE:  runSimulation,
	}
	addModelFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a simulation with live visualization",
		RunE:  runLive,
	}
	addModelFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().StringVar(&theme, "theme", "ocean", "color theme")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	histCmd := &cobra.Command{
		Use:   "hist [run_id]",
		Short: "show final wealth histogram",
		Args:  cobra.ExactArgs(1),
		RunE:  histRun,
	}

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "export run figures as PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  chartRun,
	}
	chartCmd.Flags().StringVar(&outDir, "out", ".", "output directory")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export full run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Printf("%-10s %d agents, %dx%d, %d steps\n",
					name, cfg.Agents, cfg.Width, cfg.Height, cfg.Steps)
			}
			return nil
		},
	}

	paramsCmd := &cobra.Command{
		Use:   "params",
		Short: "show the adjustable parameter schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLABEL\tMIN\tMAX\tSTEP\tDEFAULT")
			for _, p := range config.Schema() {
				fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%g\n",
					p.Name, p.Label, p.Min, p.Max, p.Step, p.Default)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, histCmd, chartCmd,
		exportCmd, exportCSVCmd, presetsCmd, paramsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&numAgents, "agents", config.DefaultAgents, "number of agents")
	cmd.Flags().IntVar(&gridWidth, "width", config.DefaultWidth, "grid width")
	cmd.Flags().IntVar(&gridHeight, "height", config.DefaultHeight, "grid height")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig merges preset, config file and flags; flags win over the
// file, the file wins over the preset.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("agents") {
		cfg.Agents = numAgents
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = gridWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = gridHeight
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	runSeed := cfg.Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	model, err := wealth.NewModel(cfg.Agents, cfg.Width, cfg.Height, runSeed)
	if err != nil {
		return err
	}

	s := abm.New(model)
	s.AddCollector(wealth.NewGini(model))
	s.AddCollector(wealth.NewMeanWealth(model))

	fmt.Printf("running %d agents on %dx%d for %d steps...\n",
		cfg.Agents, cfg.Width, cfg.Height, cfg.Steps)
	start := time.Now()

	result, err := s.Run(context.Background(), abm.Config{Steps: cfg.Steps, Seed: runSeed})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Agents, cfg.Width, cfg.Height, runSeed, result, model.Wealths())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Println("\nfinal measures:")
	names := make([]string, 0, len(result.Final))
	for name := range result.Final {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Final[name])
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tAGENTS\tGRID\tSTEPS\tGINI")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%dx%d\t%d\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Agents,
			run.Width, run.Height,
			run.Steps,
			run.Final["gini"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("agents: %d on %dx%d\n", meta.Agents, meta.Width, meta.Height)
	fmt.Printf("steps: %d\n\n", meta.Steps)

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		data := series[name]
		if len(data) == 0 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs step"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func histRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	wealths, err := st.LoadWealth(runID)
	if err != nil {
		return err
	}
	if len(wealths) == 0 {
		return fmt.Errorf("no wealth data")
	}

	fmt.Printf("final wealth distribution: %s\n\n", runID)
	for _, row := range viz.HistogramRows(wealth.Histogram(wealths), 50) {
		fmt.Println(row)
	}
	fmt.Printf("\ngini: %.4f\n", wealth.GiniOf(wealths))

	return nil
}

func chartRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	wealths, err := st.LoadWealth(runID)
	if err != nil {
		return err
	}

	for name, data := range series {
		path := filepath.Join(outDir, fmt.Sprintf("%s_%s.png", runID, name))
		if err := charts.SaveSeries(path, name, data); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}

	path := filepath.Join(outDir, fmt.Sprintf("%s_wealth.png", runID))
	if err := charts.SaveHistogram(path, wealths); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	wealths, err := st.LoadWealth(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, series, wealths)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no data to export")
	}

	names := make([]string, 0, len(series))
	rows := 0
	for name, data := range series {
		names = append(names, name)
		if len(data) > rows {
			rows = len(data)
		}
	}
	sort.Strings(names)

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := append([]string{"step"}, names...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		row := []string{strconv.Itoa(i)}
		for _, name := range names {
			data := series[name]
			if i < len(data) {
				row = append(row, strconv.FormatFloat(data[i], 'f', 6, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
