package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/renameio"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdtint"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	helpMessage      = "Help currently not available"
)

func init() {
	version.SetDefaultModule("pkt.systems/mdtint")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		themeName   string
		listThemes  bool
		boring      bool
		colorFlag   string
		widthFlag   int
		stripFront  bool
		binaryCheck bool
		outPath     string
		showVersion bool
	)

	flags := pflag.NewFlagSet("mdtint", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate output without ANSI styling")
	flags.StringVar(&colorFlag, "color", "auto", "Styling: auto|always|never")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Wrap width (0 disables wrapping, -1 uses terminal width)")
	flags.BoolVar(&stripFront, "strip-front-matter", false, "Drop a leading front matter block")
	flags.BoolVar(&binaryCheck, "reject-binary", false, "Fail on input that looks binary (NUL or many control bytes)")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdtint [flags] <input>\n")
		fmt.Fprintln(stderr, "\nThe last argument is the input file path (file:// and http(s):// URLs are accepted).")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if listThemes {
		printThemes(stdout)
		return 0
	}

	positional := flags.Args()
	if len(positional) == 0 {
		fmt.Fprintln(stdout, helpMessage)
		return 0
	}
	input := positional[len(positional)-1]

	theme, ok := mdtint.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", themeName)
		printThemes(stderr)
		return 2
	}
	colorMode, err := parseColorMode(colorFlag)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --color %q: %v\n", colorFlag, err)
		return 2
	}

	var styleTarget io.Writer
	if outPath == "" {
		styleTarget = stdout
	}
	if boring {
		theme = mdtint.BoringTheme()
	} else {
		theme = resolveTheme(theme, flags.Changed("theme"), colorMode, styleTarget)
	}

	reader, closer, err := openInput(input)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}
	defer func() { _ = closer.Close() }()

	opts := []mdtint.RenderOption{
		mdtint.WithFrontMatter(!stripFront),
		mdtint.WithBinaryCheck(binaryCheck),
	}
	if width := resolveWidth(widthFlag, stdout); width > 0 {
		opts = append(opts, mdtint.WithWidth(width))
	}

	var buf bytes.Buffer
	dst := stdout
	if outPath != "" {
		dst = &buf
	}
	if err := mdtint.Render(mdtint.RenderRequest{
		Reader:  reader,
		Writer:  dst,
		Theme:   theme,
		Options: opts,
	}); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if outPath != "" {
		if err := writeOutput(outPath, buf.Bytes()); err != nil {
			fmt.Fprintf(stderr, "write output: %v\n", err)
			return 1
		}
	}
	return 0
}

type colorMode uint8

const (
	colorAuto colorMode = iota
	colorAlways
	colorNever
)

func parseColorMode(mode string) (colorMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return colorAuto, nil
	case "always", "on", "true", "1", "yes":
		return colorAlways, nil
	case "never", "off", "false", "0", "no":
		return colorNever, nil
	default:
		return colorAuto, fmt.Errorf("expected auto|always|never")
	}
}

// resolveTheme applies the color mode. In auto mode styling follows the
// color profile of w (nil means a file, which is never styled); a 16-color
// terminal gets the ansi16 theme unless one was chosen explicitly.
func resolveTheme(theme mdtint.Theme, explicit bool, mode colorMode, w io.Writer) mdtint.Theme {
	switch mode {
	case colorAlways:
		return theme
	case colorNever:
		return mdtint.BoringTheme()
	}
	if w == nil {
		return mdtint.BoringTheme()
	}
	switch termenv.NewOutput(w).EnvColorProfile() {
	case termenv.Ascii:
		return mdtint.BoringTheme()
	case termenv.ANSI:
		if !explicit {
			if t, ok := mdtint.ThemeByName("ansi16"); ok {
				return t
			}
		}
	}
	return theme
}

func printThemes(w io.Writer) {
	for _, name := range mdtint.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int, w io.Writer) int {
	if width >= 0 {
		return width
	}
	return terminalWidth(w, defaultWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				return cols
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if cols, err := strconv.Atoi(value); err == nil && cols > 0 {
			return cols
		}
	}
	return fallback
}

func openInput(raw string) (io.Reader, io.Closer, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return openURL(raw)
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return openFile(path)
		}
	}
	return openFile(raw)
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// writeOutput replaces path atomically so readers never see a partial file.
func writeOutput(path string, data []byte) error {
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return renameio.WriteFile(clean, data, 0o644)
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
