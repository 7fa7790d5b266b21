package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/datatug/tviewx/pkg/browser"
	"github.com/datatug/tviewx/pkg/chroma2tcell"
	"github.com/datatug/tviewx/pkg/files"
	"github.com/datatug/tviewx/pkg/files/osfile"
	"github.com/datatug/tviewx/pkg/focusring"
	"github.com/datatug/tviewx/pkg/fsutils"
	"github.com/datatug/tviewx/pkg/profiling"
)

var (
	startDir   = flag.String("dir", "", "directory to browse (defaults to the working directory)")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
)

var osExit = os.Exit

func main() {
	flag.Parse()

	if *cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(*cpuProfile)
		defer stopCPUProfiling()
	}
	if *memProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(*memProfile)
		defer writeMemProfile()
	}

	app, err := newDemoApp(*startDir)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
		return
	}
	run(app)
}

type application interface{ Run() error }

var run = func(app application) {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}

// Panel ids for the focus ring.
const (
	browserPanel = "browser"
	previewPanel = "preview"
)

// previewLimit caps how much of a selected file the preview loads.
const previewLimit = 10 * 1024

var panelStyle = struct {
	focusedBorder tcell.Color
	blurredBorder tcell.Color
}{
	focusedBorder: tcell.ColorCornflowerBlue,
	blurredBorder: tcell.ColorGray,
}

type borderHolder interface {
	SetBorderColor(color tcell.Color) *tview.Box
}

func styleBorder(focused bool, box borderHolder) bool {
	if focused {
		box.SetBorderColor(panelStyle.focusedBorder)
	} else {
		box.SetBorderColor(panelStyle.blurredBorder)
	}
	return focused
}

// newDemoApp builds a tview application with a file browser on the
// left and a syntax highlighted preview of the accepted file on the
// right. Tab and Shift-Tab cycle focus between the two panels.
func newDemoApp(dir string) (*tview.Application, error) {
	if dir != "" {
		dir = fsutils.ExpandHome(dir)
		ok, err := fsutils.DirExists(dir)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("not a directory: %s", dir)
		}
	}

	app := tview.NewApplication()

	preview := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetScrollable(true)
	preview.SetBorder(true)
	preview.SetTitle(" preview ")

	status := tview.NewTextView().SetDynamicColors(true)

	b, err := browser.New(osfile.NewStore(), dir)
	if err != nil {
		return nil, err
	}
	b.SetBorder(true)
	b.SetTitle(" " + b.Path() + " ")
	b.SetDirectoryChangedFunc(func(path string) {
		b.SetTitle(" " + path + " ")
		status.SetText("")
	})
	b.SetSelectedFileFunc(func(entry files.Entry) {
		showPreview(preview, entry)
	})
	b.SetErrorFunc(func(err error) {
		status.SetText("[red]" + tview.Escape(err.Error()))
	})

	ring := focusring.New(browserPanel, previewPanel)
	applyFocus := func() {
		focusring.WithFocus(ring, browserPanel, styleBorder, borderHolder(b))
		focusring.WithFocus(ring, previewPanel, styleBorder, borderHolder(preview))
		switch id, _ := ring.Current(); id {
		case browserPanel:
			app.SetFocus(b)
		case previewPanel:
			app.SetFocus(preview)
		}
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			ring = ring.Next()
			applyFocus()
			return nil
		case tcell.KeyBacktab:
			ring = ring.Prev()
			applyFocus()
			return nil
		case tcell.KeyEscape:
			app.Stop()
			return nil
		}
		return event
	})

	columns := tview.NewFlex().
		AddItem(b, 0, 1, true).
		AddItem(preview, 0, 2, false)
	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(columns, 0, 1, true).
		AddItem(status, 1, 0, false)

	app.SetRoot(root, true)
	applyFocus()
	return app, nil
}

var readFileHead = func(path string, limit int64) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close file %v: %v", path, err)
		}
	}()
	return io.ReadAll(io.LimitReader(file, limit))
}

func showPreview(preview *tview.TextView, entry files.Entry) {
	data, err := readFileHead(entry.Path(), previewLimit)
	if err != nil {
		preview.SetText("[red]" + tview.Escape(err.Error()))
		return
	}
	if lexer := lexers.Match(entry.Name()); lexer != nil {
		if colorized, err := chroma2tcell.Colorize(string(data), "dracula", lexer); err == nil {
			preview.SetText(colorized)
			return
		}
	}
	preview.SetText(tview.Escape(string(data)))
}
