package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/compass/coordinate"
	"github.com/pkg/errors"
)

// readLines parses line strings from in. Each text line is one point, "x y"
// or "x y z", and a blank line ends the current line string. Lines starting
// with # are ignored.
func readLines(in io.Reader) ([]*coordinate.Sequence, error) {
	var lines []*coordinate.Sequence
	seq := coordinate.NewSequence()
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		text := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(text, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the line
		if text == "" {
			if !seq.IsEmpty() {
				lines = append(lines, seq)
				seq = coordinate.NewSequence()
			}
			continue
		}

		c, err := parsePoint(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		seq.Add(c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}

	// Handle trailing line if any
	if !seq.IsEmpty() {
		lines = append(lines, seq)
	}
	return lines, nil
}

func parsePoint(text string) (coordinate.Coordinate, error) {
	parts := strings.Fields(text)
	if len(parts) != 2 && len(parts) != 3 {
		return coordinate.Coordinate{}, errors.Errorf("expected 2 or 3 ordinates, got %d", len(parts))
	}
	ordinates := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return coordinate.Coordinate{}, errors.Wrapf(err, "ordinate %d", i)
		}
		ordinates[i] = v
	}
	if len(ordinates) == 3 {
		return coordinate.New3D(ordinates[0], ordinates[1], ordinates[2])
	}
	return coordinate.New(ordinates[0], ordinates[1])
}
