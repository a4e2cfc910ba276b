package geometry

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/compass/coordinate"
)

// This file parses the svg fixtures into line strings. This is not a full (or
// even correct) svg parser. It finds the first polyline in the file and turns
// its points attribute into a LineString. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) LineString {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) == 0 {
		log.Fatalf("No polylines found in fixture %q", name)
	}
	if len(polylines) > 1 {
		log.Fatalf("More than one polyline found in fixture %q", name)
	}

	pointStrings := strings.Fields(polylines[0].Attributes["points"])
	seq := coordinate.NewSequence()
	for _, pointString := range pointStrings {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", parts[1], err)
		}
		c, err := coordinate.New(x, y)
		if err != nil {
			log.Fatalf("Invalid point %q: %v", pointString, err)
		}
		seq.Add(c)
	}
	return NewLineString(seq)
}
