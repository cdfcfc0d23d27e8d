/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package ingest reads the per-subsystem facility and line shapefiles,
// reprojects them to WGS84, normalizes fuel names, and assembles the
// revise.Buffer and revise.Transporter records the revision pipeline
// consumes.
package ingest

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/proj"

	"github.com/LIINES/hfgt-revise/revise"
)

// wgs84 returns the output spatial reference every ingested shapefile
// is reprojected to before its coordinates are rounded and handed to
// revise.
func wgs84() (*proj.SR, error) {
	return proj.Parse("+proj=longlat +datum=WGS84")
}

// round4 rounds x to revise.GPSPrecision decimal digits, matching
// the coordinate precision the clustering epsilons are calibrated
// against.
func round4(x float64) float64 {
	scale := math.Pow(10, float64(revise.GPSPrecision))
	return math.Round(x*scale) / scale
}

// PointRecord is one decoded point feature: its reprojected
// coordinates and its attribute table.
type PointRecord struct {
	X, Y   float64
	Fields map[string]string
}

// LineRecord is one decoded line feature's endpoints and attributes.
// Shapefiles with multi-vertex lines are reduced to their first and
// last vertex (for a multi-part line, those of its first part only);
// the revision pipeline operates only on endpoints.
type LineRecord struct {
	OX, OY, DX, DY float64
	Fields         map[string]string
}

// ReadPoints decodes every point feature in path, reprojecting from
// the shapefile's own spatial reference to WGS84. attrs lists the
// attribute field names to retain.
func ReadPoints(path string, attrs ...string) ([]PointRecord, error) {
	dec, err := shp.NewDecoder(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening %s: %v", path, err)
	}
	defer dec.Close()

	ct, err := transformTo(dec)
	if err != nil {
		return nil, err
	}

	var out []PointRecord
	for {
		g, fields, more := dec.DecodeRowFields(attrs...)
		if !more {
			break
		}
		p, ok := g.(geom.Point)
		if !ok {
			return nil, fmt.Errorf("ingest: %s: expected point geometry, got %T", path, g)
		}
		tg, err := p.Transform(ct)
		if err != nil {
			return nil, fmt.Errorf("ingest: %s: reprojecting point: %v", path, err)
		}
		tp := tg.(geom.Point)
		out = append(out, PointRecord{X: round4(tp.X), Y: round4(tp.Y), Fields: fields})
	}
	return out, nil
}

// ReadLines decodes every line feature in path, reprojecting to WGS84
// and reducing each feature to its origin and destination endpoint.
func ReadLines(path string, attrs ...string) ([]LineRecord, error) {
	dec, err := shp.NewDecoder(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening %s: %v", path, err)
	}
	defer dec.Close()

	ct, err := transformTo(dec)
	if err != nil {
		return nil, err
	}

	var out []LineRecord
	for {
		g, fields, more := dec.DecodeRowFields(attrs...)
		if !more {
			break
		}
		tg, err := g.Transform(ct)
		if err != nil {
			return nil, fmt.Errorf("ingest: %s: reprojecting line: %v", path, err)
		}
		ox, oy, dx, dy, err := lineEndpoints(tg)
		if err != nil {
			return nil, fmt.Errorf("ingest: %s: %v", path, err)
		}
		out = append(out, LineRecord{OX: round4(ox), OY: round4(oy), DX: round4(dx), DY: round4(dy), Fields: fields})
	}
	return out, nil
}

// PolygonRecord is one decoded polygon feature and its attributes.
type PolygonRecord struct {
	Polygon geom.Polygonal
	Fields  map[string]string
}

// ReadPolygons decodes every polygon feature in path, reprojecting to
// WGS84, for the states/ISO/NG-region catalogs package region loads.
func ReadPolygons(path string, attrs ...string) ([]PolygonRecord, error) {
	dec, err := shp.NewDecoder(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening %s: %v", path, err)
	}
	defer dec.Close()

	ct, err := transformTo(dec)
	if err != nil {
		return nil, err
	}

	var out []PolygonRecord
	for {
		g, fields, more := dec.DecodeRowFields(attrs...)
		if !more {
			break
		}
		tg, err := g.Transform(ct)
		if err != nil {
			return nil, fmt.Errorf("ingest: %s: reprojecting polygon: %v", path, err)
		}
		p, ok := tg.(geom.Polygonal)
		if !ok {
			return nil, fmt.Errorf("ingest: %s: expected polygon geometry, got %T", path, tg)
		}
		out = append(out, PolygonRecord{Polygon: p, Fields: fields})
	}
	return out, nil
}

func transformTo(dec *shp.Decoder) (proj.Transformer, error) {
	sr, err := dec.SR()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading spatial reference: %v", err)
	}
	out, err := wgs84()
	if err != nil {
		return nil, fmt.Errorf("ingest: parsing output spatial reference: %v", err)
	}
	return sr.NewTransform(out)
}

func lineEndpoints(g geom.Geom) (ox, oy, dx, dy float64, err error) {
	switch t := g.(type) {
	case geom.LineString:
		if len(t) < 2 {
			return 0, 0, 0, 0, fmt.Errorf("line feature has fewer than 2 vertices")
		}
		first, last := t[0], t[len(t)-1]
		return first.X, first.Y, last.X, last.Y, nil
	case geom.MultiLineString:
		if len(t) == 0 || len(t[0]) < 2 {
			return 0, 0, 0, 0, fmt.Errorf("line feature has no usable vertices")
		}
		first, last := t[0][0], t[0][len(t[0])-1]
		return first.X, first.Y, last.X, last.Y, nil
	default:
		return 0, 0, 0, 0, fmt.Errorf("expected line geometry, got %T", g)
	}
}
