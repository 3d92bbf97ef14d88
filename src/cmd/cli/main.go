package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"desktop-automate/src/clipboard"
	"desktop-automate/src/config"
	"desktop-automate/src/geometry"
	"desktop-automate/src/input"
	"desktop-automate/src/overlay"
	"desktop-automate/src/screenshot"
	"desktop-automate/src/window"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return runWithArgs(os.Args[1:])
}

func runWithArgs(args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "automate-tool",
		Short:         "Draw screen outlines and synthesize keyboard/mouse input",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure logging before any operation runs.
			if verbose {
				log.SetOutput(os.Stderr)
			} else {
				log.SetOutput(io.Discard)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output to stderr")

	cmd.AddCommand(
		newOutlineCmd(),
		newFlashCmd(),
		newTypeCmd(),
		newPasteCmd(),
		newClickCmd(),
		newCaptureCmd(),
		newInspectCmd(),
	)

	return cmd
}

// outlineParams carries the shared outline flags; unset values fall back
// to the configuration defaults.
type outlineParams struct {
	rect      string
	thickness int32
	color     string
	duration  int
}

func (p *outlineParams) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.rect, "rect", "", "Rectangle as \"left,top,right,bottom\"")
	cmd.Flags().Int32Var(&p.thickness, "thickness", 0, "Stroke width in pixels")
	cmd.Flags().StringVar(&p.color, "color", "", "Outline color (\"r,g,b\" or \"#RRGGBB\")")
	_ = cmd.MarkFlagRequired("rect")
}

func (p *outlineParams) resolve(cmd *cobra.Command, cfg *config.Config) (overlay.Request, error) {
	rect, err := parseRect(p.rect)
	if err != nil {
		return overlay.Request{}, err
	}

	req := overlay.Request{
		Rect:       rect,
		Thickness:  cfg.OutlineThickness,
		Color:      cfg.OutlineColor,
		DurationMS: cfg.OutlineDurationMS,
	}

	if cmd.Flags().Changed("thickness") {
		req.Thickness = p.thickness
	}
	if cmd.Flags().Changed("color") {
		c, err := geometry.ParseColor(p.color)
		if err != nil {
			return overlay.Request{}, err
		}
		req.Color = c
	}
	if cmd.Flags().Changed("duration") {
		req.DurationMS = p.duration
	}

	return req, nil
}

func newOutlineCmd() *cobra.Command {
	params := &outlineParams{}
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Show a transient rectangle outline overlay (blocks until dismissed)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			req, err := params.resolve(cmd, cfg)
			if err != nil {
				return err
			}
			overlay.Show(req)
			return nil
		},
	}
	params.addFlags(cmd)
	cmd.Flags().IntVar(&params.duration, "duration", 0, "Overlay lifetime in milliseconds")
	return cmd
}

func newFlashCmd() *cobra.Command {
	params := &outlineParams{}
	cmd := &cobra.Command{
		Use:   "flash",
		Short: "Stroke a rectangle directly on screen, erased by the next repaint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			req, err := params.resolve(cmd, cfg)
			if err != nil {
				return err
			}
			overlay.Flash(req.Rect, req.Thickness, req.Color)
			return nil
		},
	}
	params.addFlags(cmd)
	return cmd
}

func newTypeCmd() *cobra.Command {
	var (
		text  string
		delay int
	)
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Synthesize keyboard input for the given text",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("delay") {
				delay = cfg.TypeDelayMS
			}
			return input.TypeText(text, delay)
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Text to type")
	cmd.Flags().IntVar(&delay, "delay", 0, "Pause between characters in milliseconds")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newPasteCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Inject text through the clipboard and a Ctrl+V chord",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := clipboard.Init(); err != nil {
				return err
			}
			return input.PasteText(text)
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Text to paste")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newClickCmd() *cobra.Command {
	var x, y int32
	cmd := &cobra.Command{
		Use:   "click",
		Short: "Move the pointer and synthesize a left click",
		RunE: func(cmd *cobra.Command, args []string) error {
			return input.Click(x, y)
		},
	}
	cmd.Flags().Int32Var(&x, "x", 0, "Screen X coordinate")
	cmd.Flags().Int32Var(&y, "y", 0, "Screen Y coordinate")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	return cmd
}

func newCaptureCmd() *cobra.Command {
	var (
		rectStr string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture a screen rectangle as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			rect, err := captureRect(rectStr)
			if err != nil {
				return err
			}

			data, err := screenshot.CaptureRect(rect)
			if err != nil {
				return err
			}

			if outPath == "-" {
				_, err := os.Stdout.Write(data)
				return err
			}
			return os.WriteFile(outPath, data, 0644)
		},
	}
	cmd.Flags().StringVar(&rectStr, "rect", "", "Rectangle as \"left,top,right,bottom\" (default: primary display)")
	cmd.Flags().StringVar(&outPath, "out", "-", "Output file, or '-' for stdout")
	return cmd
}

func captureRect(rectStr string) (geometry.Rect, error) {
	if rectStr == "" {
		return screenshot.PrimaryBounds()
	}
	return parseRect(rectStr)
}

func newInspectCmd() *cobra.Command {
	var (
		title       string
		class       string
		showOutline bool
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Locate a top-level window and print its bounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := findWindow(title, class)
			if err != nil {
				return err
			}

			rect, err := w.Rect()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", rect)

			if showOutline {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				return w.Outline(cfg.OutlineThickness, cfg.OutlineColor, cfg.OutlineDurationMS)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Exact window title")
	cmd.Flags().StringVar(&class, "class", "", "Window class name")
	cmd.Flags().BoolVar(&showOutline, "outline", false, "Also highlight the window on screen")
	return cmd
}

func findWindow(title, class string) (*window.Window, error) {
	switch {
	case title != "":
		return window.FindByTitle(title)
	case class != "":
		return window.FindByClass(class)
	default:
		return nil, fmt.Errorf("either --title or --class is required")
	}
}
