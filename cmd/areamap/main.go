package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"areamap/internal/tui"
)

func main() {
	area := flag.String("area", "", "area to show first")
	logPath := flag.String("log", "", "write log output to this file")
	mouse := flag.Bool("mouse", true, "report the world point under the mouse")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [catalog.geojson]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// the alternate screen owns stdout, so logs go to a file or nowhere
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "areamap")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(flag.Arg(0), *area)
	} else {
		m = tui.New()
	}
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if *mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
