package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/compass/coordinate"
	"github.com/osuushi/compass/internal/dbg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Exit statuses
const (
	exitSimple    = 0
	exitNotSimple = 1
	exitError     = 2
)

// Checks point lists for simplicity. Input on stdin (or the file named by the
// input argument) should be newline separated points in the form "x y" or
// "x y z", with each line string separated by an extra newline.
//
// For each line string, prints whether it is simple, whether it is closed, and
// whether it repeats any coordinate. Exits 1 if any line is not simple.
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	opts := &options{}
	app := newApp(opts)
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	if _, err := app.Parse(args); err != nil {
		log.WithError(err).Error("invalid arguments")
		return exitError
	}

	cfg, err := opts.resolve()
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		return exitError
	}
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithField("config", fmt.Sprintf("%+v", cfg)).Debug("resolved configuration")

	in := stdin
	if opts.input != "" && opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			log.WithError(err).Error("open input")
			return exitError
		}
		defer f.Close()
		in = f
	}

	lines, err := readLines(in)
	if err != nil {
		log.WithError(err).Error("read input")
		return exitError
	}
	if len(lines) == 0 {
		log.WithError(errNoLines).Error("read input")
		return exitError
	}
	log.WithField("lines", len(lines)).Debug("read input")

	au := aurora.NewAurora(cfg.Color)
	status := exitSimple
	for i, line := range lines {
		// One checker pass gives both the verdict and where it failed
		p, violated := dbg.FirstViolation(line)
		simple := !violated
		if !simple {
			status = exitNotSimple
		}
		fields := logrus.Fields{"line": i, "points": line.Len(), "simple": simple}
		if violated && cfg.Verbose {
			fields["violation"] = p.String()
			fields["name"] = dbg.Name(p)
		}
		log.WithFields(fields).Debug("checked line")
		fmt.Fprintln(stdout, report(au, i, line, simple))
	}

	if cfg.PNG != "" {
		if err := dbg.Draw(cfg.PNG, cfg.Scale, lines...); err != nil {
			log.WithError(err).Error("render")
			return exitError
		}
		log.WithField("path", cfg.PNG).Info("rendered")
		if cfg.Imgcat {
			dbg.Show(cfg.PNG)
		}
	}
	return status
}

func report(au aurora.Aurora, i int, line *coordinate.Sequence, simple bool) string {
	verdict := au.Green("simple")
	if !simple {
		verdict = au.Red("not simple")
	}
	closed := "open"
	if line.IsClosed() {
		closed = "closed"
	}
	duplicates := "no duplicates"
	if line.HasDuplicates() {
		duplicates = "duplicates"
	}
	return fmt.Sprintf("%s %d: %d points, %s, %s, %s", au.Bold("line"), i, line.Len(), verdict, closed, duplicates)
}

var errNoLines = errors.New("no lines in input")
