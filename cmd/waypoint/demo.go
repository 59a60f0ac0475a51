package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"net/http"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/phanxgames/waypoint"
	"github.com/phanxgames/waypoint/metrics"
)

var demoCmd = &cobra.Command{
	Use:   "demo FILE",
	Short: "Preview a tour in a window",
	Long: `Opens a window with one placeholder element per step of the chosen tour and runs
the tour over it. Press R to restart and Escape to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().String("tour", "", "Tour to run (default: the first by name)")
	demoCmd.Flags().String("script", "", "Test script to drive the window (YAML or JSON)")
	demoCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :2112")
	demoCmd.Flags().Bool("skip", true, "Show a Skip button")
	rootCmd.AddCommand(demoCmd)
}

const (
	demoWidth  = 640
	demoHeight = 480
)

func runDemo(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	f, err := waypoint.LoadTourFile(args[0])
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("tour")
	if name == "" {
		names := f.Names()
		if len(names) == 0 {
			return fmt.Errorf("%s: no tours to run", args[0])
		}
		name = names[0]
	}
	tour, err := f.Tour(name)
	if err != nil {
		return err
	}

	guide := waypoint.NewGuide(waypoint.WithLogger(logger))

	if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
		collector := metrics.NewCollector()
		reg := prometheus.NewRegistry()
		if err := collector.Register(reg); err != nil {
			return err
		}
		collector.Watch(guide)
		go serveMetrics(logger, addr, reg)
	}

	cfg := waypoint.OverlayConfig{}
	if skip, _ := cmd.Flags().GetBool("skip"); skip {
		cfg.Accessory = waypoint.SkipButton()
	}
	overlay := waypoint.NewOverlay(guide, cfg)
	defer overlay.Close()

	var runner *waypoint.TestRunner
	if path, _ := cmd.Flags().GetString("script"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err = waypoint.LoadTestScript(data)
		if err != nil {
			return err
		}
		overlay.SetTestRunner(runner)
	}

	game := newDemoGame(tour, guide, overlay, runner)
	tour.Start(guide)

	ebiten.SetWindowSize(demoWidth, demoHeight)
	ebiten.SetWindowTitle("waypoint - " + name)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	if runner != nil {
		return runner.Err()
	}
	return nil
}

func serveMetrics(logger *slog.Logger, addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", "error", err)
	}
}

// demoGame lays out one placeholder per step in a grid and marks each of
// them every frame.
type demoGame struct {
	tour    *waypoint.Tour
	guide   *waypoint.Guide
	overlay *waypoint.Overlay
	runner  *waypoint.TestRunner
	frame   *waypoint.Frame
	boxes   []waypoint.Rect
	labels  []*waypoint.Text
}

func newDemoGame(t *waypoint.Tour, g *waypoint.Guide, o *waypoint.Overlay, r *waypoint.TestRunner) *demoGame {
	d := &demoGame{tour: t, guide: g, overlay: o, runner: r, frame: waypoint.NewFrame()}
	d.boxes = demoLayout(len(t.Steps), waypoint.Size{Width: demoWidth, Height: demoHeight})
	for _, s := range t.Steps {
		d.labels = append(d.labels, waypoint.NewText(s.Name))
	}
	return d
}

// demoLayout spreads n boxes over a grid with three columns.
func demoLayout(n int, viewport waypoint.Size) []waypoint.Rect {
	const cols = 3
	rows := (n + cols - 1) / cols
	if rows == 0 {
		return nil
	}
	cellW := viewport.Width / cols
	cellH := (viewport.Height - 40) / float64(rows)
	boxes := make([]waypoint.Rect, n)
	for i := range boxes {
		col, row := i%cols, i/cols
		boxes[i] = waypoint.Rect{
			X:      float64(col)*cellW + cellW/4,
			Y:      40 + float64(row)*cellH + cellH/3,
			Width:  cellW / 2,
			Height: cellH / 3,
		}
	}
	return boxes
}

func (d *demoGame) Update() error {
	if d.runner != nil && d.runner.Done() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.tour.Start(d.guide, waypoint.WithStartDelay(0))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		d.guide.Stop(true)
	}

	d.frame.Reset()
	for i, s := range d.tour.Steps {
		d.tour.Mark(d.frame, s.Name, d.boxes[i])
	}
	d.overlay.Update(d.frame, waypoint.Size{Width: demoWidth, Height: demoHeight})
	return nil
}

func (d *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0xf2, 0xf2, 0xf2, 0xff})
	ctx := waypoint.Context{Guide: d.guide, Alpha: 1}
	for i, box := range d.boxes {
		r := image.Rect(int(box.X), int(box.Y), int(box.MaxX()), int(box.MaxY()))
		screen.SubImage(r).(*ebiten.Image).Fill(color.RGBA{0x4a, 0x90, 0xd9, 0xff})
		d.labels[i].Draw(screen, box, ctx)
	}
	snap := d.guide.Snapshot()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  step %d/%d  [R] restart  [Esc] stop",
		snap.State, snap.Index+1, snap.Count), 8, 8)
	d.overlay.Draw(screen)
}

func (d *demoGame) Layout(_, _ int) (int, int) {
	return demoWidth, demoHeight
}
