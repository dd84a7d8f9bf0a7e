// acidgrid generates complete multi-track electronic music arrangements
// and writes them as Standard MIDI Files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yrbane/acidgrid/config"
	"github.com/yrbane/acidgrid/debug"
	"github.com/yrbane/acidgrid/engine"
	"github.com/yrbane/acidgrid/midifile"
	"github.com/yrbane/acidgrid/naming"
	"github.com/yrbane/acidgrid/style"
	"github.com/yrbane/acidgrid/theme"
	"github.com/yrbane/acidgrid/tui"
)

var (
	flagStyle    string
	flagTempo    int
	flagMeasures int
	flagSeed     int64
	flagOutput   string
	flagJSON     string
	flagPreset   string
	flagInspect  bool
	flagDebug    bool
	flagPalette  string
)

var rootCmd = &cobra.Command{
	Use:   "acidgrid",
	Short: "Procedural multi-track music generator",
	Long: `acidgrid composes full electronic tracks: drums, bassline, sub-bass,
accompaniment and lead, arranged over a style-driven song structure
and rendered to a Standard MIDI File.

Examples:
  acidgrid generate --style techno --measures 192
  acidgrid generate --preset berlin-warehouse --seed 42
  acidgrid generate --style jungle --tempo 174 --inspect
  acidgrid styles`,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an arrangement and write it to a MIDI file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDebug {
			if err := debug.Enable(); err != nil {
				return err
			}
			defer debug.Disable()
		}

		cfg, _ := config.Load()

		req := engine.Request{
			Style:    flagStyle,
			Measures: flagMeasures,
			Tempo:    flagTempo,
			Seed:     flagSeed,
		}
		if !cmd.Flags().Changed("style") && cfg.Generate.Style != "" {
			req.Style = cfg.Generate.Style
		}
		if !cmd.Flags().Changed("measures") && cfg.Generate.Measures > 0 {
			req.Measures = cfg.Generate.Measures
		}
		if !cmd.Flags().Changed("tempo") && cfg.Generate.Tempo > 0 {
			req.Tempo = cfg.Generate.Tempo
		}
		if flagPalette == "" {
			flagPalette = cfg.UI.PalettePath
		}

		if flagPreset != "" {
			p, err := style.PresetByName(flagPreset)
			if err != nil {
				return err
			}
			req.Style = p.Style
			if !cmd.Flags().Changed("measures") {
				req.Measures = p.Measures
			}
			if !cmd.Flags().Changed("tempo") {
				req.Tempo = p.Tempo
			}
			if !cmd.Flags().Changed("seed") && p.Seed != 0 {
				req.Seed = p.Seed
			}
		}

		debug.Log("generate", "style=%s measures=%d tempo=%d seed=%d", req.Style, req.Measures, req.Tempo, req.Seed)

		arr, err := engine.Compose(req)
		if err != nil {
			return err
		}
		if arr.TempoWarning != "" {
			fmt.Fprintln(os.Stderr, "warning:", arr.TempoWarning)
		}

		title := naming.Title(arr.Style, arr.Seed)

		out := flagOutput
		if out == "" {
			out = filepath.Join(cfg.OutputDir, naming.Filename(title)+".mid")
		}
		if err := midifile.Write(arr, out); err != nil {
			return fmt.Errorf("write midi: %w", err)
		}

		if flagJSON != "" {
			f, err := os.Create(flagJSON)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := arr.WriteJSON(f); err != nil {
				return err
			}
		}

		debug.Log("generate", "title=%q events=%d out=%s", title, arr.EventCount(), out)
		fmt.Printf("%s\n  %s, %d BPM, %d measures, %s, seed %d\n  %d notes -> %s\n",
			title, arr.Style, arr.Tempo, arr.Measures, arr.Harmony.Key, arr.Seed, arr.EventCount(), out)

		if flagInspect {
			return runInspector(arr, title)
		}
		return nil
	},
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List available styles with their tempo ranges",
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range style.IDs() {
			p, _ := style.ProfileFor(id)
			fmt.Printf("%-12s %3d-%3d BPM (default %3d)  %s\n",
				p.ID, p.TempoMin, p.TempoMax, p.TempoDefault, p.Description)
		}
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in and user presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range style.Presets() {
			fmt.Printf("%-18s %-10s %3d BPM %4d measures  %s\n",
				p.Name, p.Style, p.Tempo, p.Measures, p.Description)
		}
	},
}

func runInspector(arr *engine.Arrangement, title string) error {
	pal := theme.Default()
	if flagPalette != "" {
		loaded, err := theme.LoadGPL(flagPalette)
		if err != nil {
			return err
		}
		pal = loaded
	}
	model := tui.NewModel(arr, title, theme.New(pal))
	_, err := tea.NewProgram(model).Run()
	return err
}

func init() {
	generateCmd.Flags().StringVarP(&flagStyle, "style", "s", "techno", "music style (see 'acidgrid styles')")
	generateCmd.Flags().IntVarP(&flagTempo, "tempo", "t", 0, "tempo in BPM (0 = style default)")
	generateCmd.Flags().IntVarP(&flagMeasures, "measures", "m", 128, "length in measures")
	generateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (0 = time-based)")
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output MIDI path (default: generated title)")
	generateCmd.Flags().StringVar(&flagJSON, "json", "", "also dump the arrangement as JSON to this path")
	generateCmd.Flags().StringVarP(&flagPreset, "preset", "p", "", "start from a preset")
	generateCmd.Flags().BoolVar(&flagInspect, "inspect", false, "open the arrangement inspector after generating")
	generateCmd.Flags().BoolVar(&flagDebug, "debug", false, "write a debug trace to ~/.config/acidgrid/debug.log")
	generateCmd.Flags().StringVar(&flagPalette, "palette", "", "GPL palette file for the inspector")

	rootCmd.AddCommand(generateCmd, stylesCmd, presetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
