package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mdtint"
)

func main() {
	root := "testdata"
	themes := []string{"boring", "default"}
	paths, err := filepath.Glob(filepath.Join(root, "*.md"))
	if err != nil {
		fatalf("glob %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		for _, name := range themes {
			theme, ok := mdtint.ThemeByName(name)
			if !ok {
				fatalf("unknown theme %q", name)
			}
			var out bytes.Buffer
			err := mdtint.Render(mdtint.RenderRequest{
				Reader: bytes.NewReader(src),
				Writer: &out,
				Theme:  theme,
			})
			if err != nil {
				fatalf("render %s theme %s: %v", path, name, err)
			}
			goldenPath := strings.TrimSuffix(path, ".md") + "." + name + ".golden"
			if err := os.WriteFile(goldenPath, out.Bytes(), 0o644); err != nil {
				fatalf("write %s: %v", goldenPath, err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
