package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/typist/internal/config"
	"github.com/san-kum/typist/internal/page"
	"github.com/san-kum/typist/internal/term"
	"github.com/san-kum/typist/internal/trace"
	"github.com/san-kum/typist/internal/typist"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dataDir    string
	configFile string
	preset     string
	speed      string
	theme      string
	debug      bool
	asHTML     bool
	width      int
)

// main registers the typist commands; with no subcommand it plays the
// portfolio page. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "typist",
		Short:        "terminal portfolio with a typing effect",
		SilenceUsage: true,
		RunE:         playPage,
		Args:         cobra.NoArgs,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".typist", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset screenplay")
	rootCmd.PersistentFlags().StringVar(&speed, "speed", "", "typing speed (fast|slow)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme ("+strings.Join(term.ThemeNames(), "|")+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log to typist-debug.log")

	playCmd := &cobra.Command{
		Use:   "play [preset|file]",
		Short: "play the page in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playPage,
	}

	renderCmd := &cobra.Command{
		Use:   "render [preset|file]",
		Short: "run a screenplay instantly and print the final terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderScript,
	}
	renderCmd.Flags().BoolVar(&asHTML, "html", false, "print html instead of the terminal box")
	renderCmd.Flags().IntVar(&width, "width", 80, "terminal width")

	recordCmd := &cobra.Command{
		Use:   "record [preset|file]",
		Short: "record a screenplay frame by frame",
		Args:  cobra.MaximumNArgs(1),
		RunE:  recordScript,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot visible characters over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets and operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s (%d steps)\n", p, len(config.GetPreset(p).Script))
			}
			fmt.Println("operations:")
			for _, op := range typist.Operations() {
				fmt.Printf("  %s\n", op)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [preset|file]",
		Short: "print the effective config as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(args)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}

	rootCmd.AddCommand(playCmd, renderCmd, recordCmd, listCmd, plotCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the screenplay. --config, when given, is the base
// config; a positional preset or --preset is merged over it, and a
// positional yaml file replaces it. It returns the config and a short name
// for the script.
func loadConfig(args []string) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	name := config.DefaultPreset

	if configFile != "" {
		loaded, err := loadFile(configFile)
		if err != nil {
			return nil, "", err
		}
		cfg, name = loaded, scriptName(configFile)
	}

	source := preset
	if len(args) > 0 {
		source = args[0]
	}
	if source != "" {
		if p := config.GetPreset(source); p != nil {
			cfg, name = cfg.Merge(p), source
		} else {
			loaded, err := loadFile(source)
			if err != nil {
				return nil, "", err
			}
			cfg, name = loaded, scriptName(source)
		}
	}

	if speed != "" {
		if _, ok := typist.DelayFor(speed); !ok {
			return nil, "", fmt.Errorf("unknown speed: %s (fast|slow)", speed)
		}
		cfg.Speed = speed
	}
	if theme != "" {
		cfg.Theme = theme
	}
	return cfg, name, nil
}

func loadFile(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unknown preset or file: %s (presets: %v)", path, config.ListPresets())
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

func scriptName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func options(cfg *config.Config) typist.Options {
	return typist.Options{
		Speed:         cfg.Speed,
		BlinkInterval: time.Duration(cfg.BlinkMs) * time.Millisecond,
		CursorGlyph:   cfg.Cursor,
	}
}

func playPage(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(args)
	if err != nil {
		return err
	}

	if debug {
		f, err := tea.LogToFile("typist-debug.log", "typist")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	log.Printf("playing %d steps at %s", len(cfg.Script), cfg.Speed)
	return page.Run(cfg)
}

func runScript(args []string) (*trace.Result, *config.Config, string, error) {
	cfg, name, err := loadConfig(args)
	if err != nil {
		return nil, nil, "", err
	}
	ops, err := typist.Compile(cfg.Script)
	if err != nil {
		return nil, nil, "", err
	}
	result, err := trace.Run(ops, options(cfg), cfg.TerminalHeight)
	if err != nil {
		return nil, nil, "", err
	}
	return result, cfg, name, nil
}

func renderScript(cmd *cobra.Command, args []string) error {
	result, cfg, _, err := runScript(args)
	if err != nil {
		return err
	}

	if asHTML {
		fmt.Println(term.HTML(result.Region))
		return nil
	}
	fmt.Println(term.Render(result.Region, term.GetTheme(cfg.Theme), width))
	fmt.Printf("%d tasks in %v\n", result.Tasks, result.Duration)
	return nil
}

func recordScript(cmd *cobra.Command, args []string) error {
	result, cfg, name, err := runScript(args)
	if err != nil {
		return err
	}

	st := trace.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(name, cfg.Speed, result)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	fmt.Printf("run saved: %s\n", runID)
	fmt.Printf("tasks: %d\n", result.Tasks)
	fmt.Printf("duration: %v\n", result.Duration)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := trace.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCRIPT\tTIME\tSPEED\tTASKS\tDURATION")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%dms\n",
			run.ID,
			run.Script,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Speed,
			run.Tasks,
			run.DurationMs,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := trace.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	data := sampleChars(frames, 80)

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("script: %s, speed: %s, %dms\n\n", meta.Script, meta.Speed, meta.DurationMs)

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("visible characters over time"),
	)
	fmt.Println(graph)
	return nil
}

// sampleChars resamples the frame timeline into n evenly spaced points.
func sampleChars(frames []trace.Frame, n int) []float64 {
	end := frames[len(frames)-1].At
	data := make([]float64, n)
	j := 0
	for i := range data {
		at := time.Duration(0)
		if n > 1 {
			at = end * time.Duration(i) / time.Duration(n-1)
		}
		for j+1 < len(frames) && frames[j+1].At <= at {
			j++
		}
		data[i] = float64(frames[j].Chars)
	}
	return data
}
