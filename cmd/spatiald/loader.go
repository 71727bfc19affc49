package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-spatial/pkg/quadtree"
)

// Place is a named point stored in the index.
type Place struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// AsPoint implements quadtree.AsPoint for Place.
func (p Place) AsPoint() quadtree.Point[float64] {
	return quadtree.Pt(p.X, p.Y)
}

// LoadPlaces reads places from a CSV file with name,x,y records.
func LoadPlaces(path string) ([]Place, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open places file")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	var places []Place
	for line := 1; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}

		x, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d: bad x", path, line)
		}
		y, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d: bad y", path, line)
		}
		places = append(places, Place{Name: rec[0], X: x, Y: y})
	}
	return places, nil
}
