// Package cmd provides the command-line interface for mermaidgen.
// It handles argument parsing, configuration, and orchestrates diagram
// construction, rendering, and output delivery.
package cmd

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/toozej/mermaidgen/internal/output"
	"github.com/toozej/mermaidgen/internal/render"
	"github.com/toozej/mermaidgen/pkg/config"
	"github.com/toozej/mermaidgen/pkg/man"
	"github.com/toozej/mermaidgen/pkg/mermaid"
	"github.com/toozej/mermaidgen/pkg/version"
)

var conf config.Config

var rootCmd = &cobra.Command{
	Use:              "mermaidgen",
	Short:            "Generate Mermaid diagrams from the command line",
	Long:             `A tool to build, render, and deliver Mermaid diagrams from typed models, spec files, or raw Mermaid text`,
	PersistentPreRun: rootCmdPreRun,
}

func rootCmdPreRun(cmd *cobra.Command, args []string) {
	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return
	}
	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
}

// themeConfig resolves the --theme and --mode flags into a diagram
// config. An explicit theme wins over the mode's implied theme; the
// default light mode attaches nothing.
func themeConfig() *mermaid.Config {
	if name := viper.GetString("theme"); name != "" && name != "default" {
		theme, err := mermaid.ParseTheme(name)
		if err != nil {
			log.Warnf("ignoring invalid theme: %v", err)
			return nil
		}
		return &mermaid.Config{Theme: theme}
	}

	mode, err := mermaid.ParseMode(viper.GetString("mode"))
	if err != nil {
		log.Warnf("ignoring invalid mode: %v", err)
		return nil
	}
	if mode == mermaid.ModeDark {
		return &mermaid.Config{Theme: mode.Theme()}
	}
	return nil
}

// renderOptions collects the sizing flags and the mode's background
// color into options for the render client.
func renderOptions() render.Options {
	opts := render.Options{
		Width:  viper.GetInt("width"),
		Height: viper.GetInt("height"),
		Scale:  viper.GetFloat64("scale"),
	}
	if mode, err := mermaid.ParseMode(viper.GetString("mode")); err == nil {
		opts.BackgroundColor = mode.BackgroundColor()
	}
	return opts
}

// emit runs the shared output pipeline: mmd format writes the script
// directly, svg and png go through the render server first.
func emit(d mermaid.Diagram) error {
	handler := output.NewHandler(
		viper.GetString("output"),
		viper.GetBool("stdout"),
		viper.GetBool("clipboard"),
		viper.GetBool("open"),
	)

	switch format := viper.GetString("format"); format {
	case "mmd", "mermaid":
		return handler.WriteMermaid(mermaid.BuildScript(d))
	case "svg":
		client := render.NewClient(viper.GetString("server"))
		svg, err := client.RenderSVG(context.Background(), d, renderOptions())
		if err != nil {
			return err
		}
		return handler.WriteSVG(svg)
	case "png":
		client := render.NewClient(viper.GetString("server"))
		png, err := client.RenderPNG(context.Background(), d, renderOptions())
		if err != nil {
			return err
		}
		return handler.WritePNG(png)
	default:
		return mermaid.Errorf(mermaid.KindUnsupportedFormat, "unsupported output format %q", format)
	}
}

// Execute runs the root command and handles any execution errors.
// This is the main entry point for the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func init() {
	_, err := maxprocs.Set()
	if err != nil {
		log.Error("Error setting maxprocs: ", err)
	}

	// Get configuration from environment variables
	conf = config.GetEnvVars()

	// Create rootCmd-level flags
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().StringP("server", "s", conf.Server, "Mermaid.ink render server URL")
	rootCmd.PersistentFlags().String("mode", conf.Mode, "Display mode (light or dark)")
	rootCmd.PersistentFlags().StringP("theme", "t", conf.Theme, "Diagram theme (default, forest, dark, neutral, base)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().Bool("stdout", false, "Write result to stdout")
	rootCmd.PersistentFlags().BoolP("clipboard", "c", false, "Copy result to clipboard")
	rootCmd.PersistentFlags().Bool("open", false, "Open result in default browser")
	rootCmd.PersistentFlags().StringP("format", "f", "svg", "Output format (svg, png, mmd)")
	rootCmd.PersistentFlags().Int("width", 0, "Output width in pixels")
	rootCmd.PersistentFlags().Int("height", 0, "Output height in pixels")
	rootCmd.PersistentFlags().Float64("scale", 0, "Scale factor (0.1 to 3.0)")

	// Add sub-commands
	rootCmd.AddCommand(
		erCmd,
		flowchartCmd,
		journeyCmd,
		mindmapCmd,
		pieCmd,
		renderCmd,
		requirementCmd,
		sequenceCmd,
		stateCmd,
		tuiCmd,
		man.NewManCmd(),
		version.Command(),
	)
}
