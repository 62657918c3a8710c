package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mkovar/fieldsim/internal/config"
	"github.com/mkovar/fieldsim/internal/entity"
	"github.com/mkovar/fieldsim/internal/export"
	"github.com/mkovar/fieldsim/internal/geom"
	"github.com/mkovar/fieldsim/internal/metrics"
	"github.com/mkovar/fieldsim/internal/phys"
	"github.com/mkovar/fieldsim/internal/scene"
	"github.com/mkovar/fieldsim/internal/storage"
	"github.com/mkovar/fieldsim/internal/viz"
	"github.com/mkovar/fieldsim/internal/world"
)

var (
	dataDir     string
	configFile  string
	sceneName   string
	dt          float64
	steps       int
	seed        int64
	size        float64
	bound       float64
	gridSpacing float64
	timeScale   float64
	particle    string
	spawnShape  string
	atX         float64
	atY         float64
	fieldX      float64
	fieldY      float64
	series      string
	outFile     string
	svgScale    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldsim",
		Short: "electrostatic field and particle simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive view when no command is given.
			return runLive(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&sceneName, "scene", "", "charge layout name")
	rootCmd.PersistentFlags().Float64Var(&dt, "dt", 0, "timestep in seconds")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().Float64Var(&size, "size", 0, "scene side length")
	rootCmd.PersistentFlags().Float64Var(&bound, "bound", 0, "world extent")
	rootCmd.PersistentFlags().Float64Var(&gridSpacing, "grid", 0, "field marker spacing (0 = default)")
	rootCmd.PersistentFlags().Float64Var(&timeScale, "timescale", 0, "dt divisor override")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store the result",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&steps, "steps", 0, "number of steps")
	runCmd.Flags().StringVar(&particle, "particle", "electron", "particle kind to spawn")
	runCmd.Flags().StringVar(&spawnShape, "spawn", "burst", "spawn pattern: single, rings, burst, beam")
	runCmd.Flags().Float64Var(&atX, "x", -1, "spawn anchor x (-1 = center)")
	runCmd.Flags().Float64Var(&atY, "y", -1, "spawn anchor y (-1 = center)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the interactive simulation view",
		RunE:  runLive,
	}

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "evaluate the field at a point",
		RunE:  inspectField,
	}
	fieldCmd.Flags().Float64Var(&fieldX, "x", 400, "query x")
	fieldCmd.Flags().Float64Var(&fieldY, "y", 400, "query y")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list preset charge layouts",
		RunE:  listScenes,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&series, "series", "kinetic", "series: kinetic, x, y, population")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render the scene's static layer to SVG",
		RunE:  exportScene,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "scene.svg", "output file")
	exportCmd.Flags().Float64Var(&svgScale, "scale", 4, "pixels per braille dot")

	rootCmd.AddCommand(runCmd, liveCmd, fieldCmd, scenesCmd, listCmd, plotCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig merges the optional config file with command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if sceneName != "" {
		cfg.Scene = sceneName
	}
	if dt > 0 {
		cfg.Dt = dt
	}
	if steps > 0 {
		cfg.Steps = steps
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if size > 0 {
		cfg.Size = size
	}
	if bound > 0 {
		cfg.Bound = bound
	}
	if gridSpacing > 0 {
		cfg.GridSpacing = gridSpacing
	}
	if timeScale > 0 {
		cfg.TimeScale = timeScale
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// buildWorld seeds a world from the configured scene and returns the live
// source list bodies should feel.
func buildWorld(cfg *config.Config) (*world.World, entity.StaticSources, *rand.Rand, error) {
	sc, ok := scene.Get(cfg.Scene)
	if !ok {
		return nil, nil, nil, fmt.Errorf("unknown scene %q (try: %s)", cfg.Scene, strings.Join(scene.Names(), ", "))
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	w := world.New(cfg.Bound)
	charges := sc.Build(cfg.Size, rng)
	sources := scene.Seed(w, charges, cfg.Size, cfg.GridSpacing)
	return w, sources, rng, nil
}

func spawnInitial(cfg *config.Config, w *world.World, sources entity.StaticSources, rng *rand.Rand) error {
	preset, ok := phys.PresetByName(particle)
	if !ok {
		return fmt.Errorf("unknown particle %q", particle)
	}
	anchor := geom.Point{X: atX, Y: atY}
	if atX < 0 {
		anchor.X = cfg.Size / 2
	}
	if atY < 0 {
		anchor.Y = cfg.Size / 2
	}

	var bodies []phys.Body
	switch spawnShape {
	case "single":
		bodies = scene.Single(preset, anchor)
	case "rings":
		bodies = scene.Rings(preset, anchor)
	case "burst":
		bodies = scene.Burst(preset, anchor, scene.BurstSpeed, rng)
	case "beam":
		bodies = scene.Beam(preset, anchor, scene.BeamSpeed)
	default:
		return fmt.Errorf("unknown spawn pattern %q", spawnShape)
	}
	scene.SpawnBodies(w, sources, cfg.TimeScale, bodies)
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w, sources, rng, err := buildWorld(cfg)
	if err != nil {
		return err
	}
	if err := spawnInitial(cfg, w, sources, rng); err != nil {
		return err
	}

	mets := []metrics.Metric{
		metrics.NewKineticEnergy(),
		metrics.NewMaxSpeed(),
		metrics.NewPopulation(),
	}
	rec := storage.NewRecorder()

	t := 0.0
	for i := 0; i < cfg.Steps; i++ {
		w.Step(cfg.Dt)
		t += cfg.Dt
		snaps := w.Snapshots()
		for _, m := range mets {
			m.Observe(snaps, t)
		}
		rec.Observe(snaps, t)
	}

	metricValues := make(map[string]float64, len(mets))
	for _, m := range mets {
		metricValues[m.Name()] = m.Value()
	}

	store := storage.New(cfg.DataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(cfg.Scene, cfg.Dt, cfg.Seed, rec, metricValues)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d steps, %.2fs simulated\n\n", runID, cfg.Steps, t)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "metric\tvalue")
	for _, m := range mets {
		fmt.Fprintf(tw, "%s\t%.6g\n", m.Name(), m.Value())
	}
	tw.Flush()

	if rows := rec.Rows(); len(rows) > 1 {
		kinetic := make([]float64, len(rows))
		for i, row := range rows {
			kinetic[i] = row.Kinetic
		}
		fmt.Println("\nkinetic energy:")
		fmt.Println(asciigraph.Plot(kinetic, asciigraph.Height(10), asciigraph.Width(70)))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w, sources, rng, err := buildWorld(cfg)
	if err != nil {
		return err
	}
	return viz.RunLive(w, sources, rng, viz.LiveConfig{
		SceneName: cfg.Scene,
		Dt:        cfg.Dt,
		Size:      cfg.Size,
		TimeScale: cfg.TimeScale,
	})
}

func inspectField(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sc, ok := scene.Get(cfg.Scene)
	if !ok {
		return fmt.Errorf("unknown scene %q", cfg.Scene)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	charges := sc.Build(cfg.Size, rng)

	p := geom.Point{X: fieldX, Y: fieldY}
	field := phys.FieldSuperposition(charges, p)

	fmt.Printf("scene %s, %d charges\n", cfg.Scene, len(charges))
	fmt.Printf("E(%.1f, %.1f) = (%.6g, %.6g) N/C, |E| = %.6g N/C\n",
		p.X, p.Y, field.X, field.Y, field.Norm())
	return nil
}

func listScenes(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tdescription")
	for _, sc := range scene.All() {
		fmt.Fprintf(tw, "%s\t%s\n", sc.Name, sc.Description)
	}
	return tw.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no stored runs")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tscene\tsteps\tseed\ttimestamp")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", r.ID, r.Scene, r.Steps, r.Seed, r.Timestamp.Format(time.RFC3339))
	}
	return tw.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	rows, err := store.LoadRows(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("run %s has no recorded steps", args[0])
	}

	values := make([]float64, len(rows))
	for i, row := range rows {
		switch series {
		case "kinetic":
			values[i] = row.Kinetic
		case "x":
			values[i] = row.X
		case "y":
			values[i] = row.Y
		case "population":
			values[i] = float64(row.Dynamic)
		default:
			return fmt.Errorf("unknown series %q", series)
		}
	}

	fmt.Printf("%s: %s\n", args[0], series)
	fmt.Println(asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(70)))
	return nil
}

func exportScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w, _, _, err := buildWorld(cfg)
	if err != nil {
		return err
	}

	renderer := viz.NewRenderer(100, 30, cfg.Size)
	canvas := renderer.Frame(w)
	svg := export.CanvasToSVG(canvas, svgScale)

	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s scene, %d statics)\n", outFile, cfg.Scene, w.StaticCount())
	return nil
}
