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

package region

import (
	"fmt"

	"github.com/LIINES/hfgt-revise/ingest"
)

// Load builds a Catalog from path's polygon features, labeling each
// entry with the value of its labelField attribute, the same shapefile
// reader ingest uses for buffers and transporters so every input layer
// goes through one reprojection/rounding path.
func Load(path, labelField string) (*Catalog, error) {
	recs, err := ingest.ReadPolygons(path, labelField)
	if err != nil {
		return nil, fmt.Errorf("region: loading %s: %v", path, err)
	}
	entries := make([]Entry, 0, len(recs))
	for _, r := range recs {
		entries = append(entries, Entry{Label: r.Fields[labelField], Polygon: r.Polygon})
	}
	return NewCatalog(entries), nil
}
