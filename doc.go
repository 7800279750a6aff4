// Package mdtint renders a small Markdown dialect to ANSI for terminal
// display.
//
// The dialect has ATX headings (# to ######), emphasis with * and **, and
// blockquotes introduced by >. Rendering is a single left-to-right pass: a
// State value is threaded through the document one rune at a time and each
// rune is emitted with the styles active at that point. There is no syntax
// tree and no backtracking.
//
// Core properties:
//   - State.Update is a pure transition over every rune
//   - Heading markers and spaces on heading lines are not echoed
//   - Emphasis follows a run-length rule on '*' (1 italic, 2 bold, 4 off)
//   - Theme-driven styling via ANSI prefixes
//
// Example:
//
//	err := mdtint.Render(mdtint.RenderRequest{
//		Reader: strings.NewReader("# Hello\n\n> quoted *text*\n"),
//		Writer: os.Stdout,
//		Theme:  mdtint.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package mdtint
