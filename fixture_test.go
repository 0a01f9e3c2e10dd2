package interpol

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into anchor points. This is not a full (or
// even correct) svg parser. Polygon fixtures contain a single polygon, whose
// vertices are returned in order. Scatter fixtures contain circles, whose
// centers are returned in document order. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) *svgparser.Element {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return rootEl
}

func LoadPolygonFixture(name string) []Point {
	polygons := loadFixture(name).FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		points = append(points, Point{X: parseFloat(coordinates[0]), Y: parseFloat(coordinates[1])})
	}
	return points
}

func LoadScatterFixture(name string) []Point {
	circles := loadFixture(name).FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point, 0, len(circles))
	for _, circle := range circles {
		points = append(points, Point{
			X: parseFloat(circle.Attributes["cx"]),
			Y: parseFloat(circle.Attributes["cy"]),
		})
	}
	return points
}

func parseFloat(s string) float64 {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number %q: %v", s, err)
	}
	return x
}
