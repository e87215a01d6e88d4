package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/df07/go-cpu-pathtracer/pkg/geometry"
	"github.com/df07/go-cpu-pathtracer/pkg/renderer"
	"github.com/df07/go-cpu-pathtracer/pkg/scene"
	"github.com/df07/go-cpu-pathtracer/web/server"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/urfave/cli"
)

// renderFrame renders one frame of a built-in scene and writes it as PNG
func renderFrame(ctx *cli.Context) error {
	sceneName := ctx.String("scene")
	sc, err := scene.NewSceneByName(sceneName)
	if err != nil {
		return err
	}

	width, height := ctx.Int("width"), ctx.Int("height")
	camera := geometry.NewCamera()
	if !ctx.Bool("fixed") {
		if camera, err = sc.NewCamera(width, height); err != nil {
			return err
		}
	}

	r := renderer.NewRenderer(renderer.Config{
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("max-depth"),
		NumWorkers:      ctx.Int("workers"),
		Seed:            renderer.SeedValue(ctx.Int64("seed")),
	}, logger)
	defer r.Close()

	logger.Noticef("rendering scene %q at %dx%d", sceneName, width, height)
	buffer, stats, err := r.RenderFrameSamples(sc, camera, width, height, ctx.Int("spp"))
	if err != nil {
		return err
	}

	outPath := ctx.String("out")
	if outPath == "" {
		outPath = createOutputPath(sceneName, time.Now())
	}
	if err := writePNG(outPath, buffer); err != nil {
		return err
	}

	displayFrameStats(stats)
	logger.Noticef("render saved as %s", outPath)
	return nil
}

// createOutputPath returns output/<scene>/render_<timestamp>.png
func createOutputPath(sceneName string, now time.Time) string {
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func writePNG(path string, buffer *renderer.PixelBuffer) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, buffer.ToImage()); err != nil {
		file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/pixel", "Rows", "Workers", "CPU", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.Rows),
		fmt.Sprintf("%d", stats.Workers),
		hostCPUDescription(),
		stats.Duration.String(),
	})
	table.SetFooter([]string{"", "", "", "", "SAMPLES/S", fmt.Sprintf("%.0f", stats.SamplesPerSecond())})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

// hostCPUDescription reports the CPU model and logical core count, or "unknown"
// when the host does not expose them
func hostCPUDescription() string {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		return "unknown"
	}
	cores, err := cpu.Counts(true)
	if err != nil {
		return infos[0].ModelName
	}
	return fmt.Sprintf("%s (%d threads)", infos[0].ModelName, cores)
}

// listScenes prints the built-in scenes as a table
func listScenes(ctx *cli.Context) error {
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Title", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}
	table.Render()
	return nil
}

// serve runs the web presenter until interrupted
func serve(ctx *cli.Context) error {
	webServer := server.NewServer(ctx.Int("port"), renderer.Config{
		NumWorkers: ctx.Int("workers"),
		MaxDepth:   ctx.Int("max-depth"),
	})

	errs := make(chan error, 1)
	go func() {
		errs <- webServer.Start()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case err := <-errs:
		return shutdownAfterFailure(webServer, err)
	case sig := <-signals:
		logger.Noticef("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := webServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// shutdownAfterFailure releases the server after Start failed and reports both errors
func shutdownAfterFailure(webServer shutdowner, startErr error) error {
	if err := webServer.Shutdown(context.Background()); err != nil {
		logger.Errorf("shutdown after failed start: %v", err)
		return errors.Join(startErr, err)
	}
	return startErr
}
