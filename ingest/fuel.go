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

package ingest

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/tealeg/xlsx"

	"github.com/LIINES/hfgt-revise/revise"
)

// fuelCache holds previously loaded fuel-normalization workbooks, to
// avoid reparsing the same file once per subsystem reader.
var fuelCache *requestcache.Cache

var loadFuelCacheOnce sync.Once

// loadFuelTable loads the fuel-normalization table from an xlsx
// workbook at path, with two columns per row: the raw source-record
// fuel label and the normalized revise.Refinement it maps to. The
// workbook is loaded once per process regardless of how many readers
// request it.
func loadFuelTable(path string) (map[string]revise.Refinement, error) {
	loadFuelCacheOnce.Do(func() {
		fuelCache = requestcache.NewCache(func(ctx context.Context, req interface{}) (interface{}, error) {
			filename := req.(string)
			f, err := xlsx.OpenFile(filename)
			if err != nil {
				return nil, fmt.Errorf("ingest: opening fuel table %s: %v", filename, err)
			}
			return tableFromWorkbook(f)
		}, runtime.GOMAXPROCS(-1), requestcache.Memory(10))
	})
	r := fuelCache.NewRequest(context.Background(), path, path)
	tI, err := r.Result()
	if err != nil {
		return nil, err
	}
	return tI.(map[string]revise.Refinement), nil
}

func tableFromWorkbook(f *xlsx.File) (map[string]revise.Refinement, error) {
	sheet, ok := f.Sheet["fuels"]
	if !ok {
		return nil, fmt.Errorf("ingest: fuel table missing required sheet \"fuels\"")
	}
	table := make(map[string]revise.Refinement)
	for _, row := range sheet.Rows {
		if len(row.Cells) < 2 {
			continue
		}
		raw := strings.TrimSpace(row.Cells[0].Value)
		norm := strings.TrimSpace(row.Cells[1].Value)
		if raw == "" || norm == "" {
			continue
		}
		r := revise.Refinement(norm)
		if !revise.IsKnownRefinement(r) {
			return nil, fmt.Errorf("ingest: fuel table maps %q to unrecognized refinement %q", raw, norm)
		}
		table[raw] = r
	}
	return table, nil
}

// NormalizeFuel maps a raw source-record fuel label to its
// revise.Refinement using the workbook at tablePath. Lookup is
// case-sensitive on the exact label as it appears in the shapefile
// attribute, matching the closed lookup table upstream data providers
// already use those exact labels for.
func NormalizeFuel(tablePath, rawFuel string) (revise.Refinement, error) {
	table, err := loadFuelTable(tablePath)
	if err != nil {
		return "", err
	}
	r, ok := table[rawFuel]
	if !ok {
		return "", fmt.Errorf("ingest: unrecognized fuel label %q", rawFuel)
	}
	return r, nil
}
