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
	"strconv"

	"github.com/ctessum/unit"
)

// powerDimensions is watts, kg*m^2*s^-3, built from unit's base
// dimensions the way emissions/aep.PointSourceData composes its stack
// parameter units (velocity, diameter) from the same package.
var powerDimensions = unit.Dimensions{
	unit.MassDim:   1,
	unit.LengthDim: 2,
	unit.TimeDim:   -3,
}

// MW scales a bare float64 megawatt reading into a *unit.Unit.
func MW(megawatts float64) *unit.Unit {
	return unit.New(megawatts*1e6, powerDimensions)
}

// MMBTUPerHour scales a bare float64 MMBtu/hr reading (the customary
// unit NG/oil/coal capacity fields report in) into a *unit.Unit of
// power.
func MMBTUPerHour(rate float64) *unit.Unit {
	return unit.New(rate*1.055e9/3600, powerDimensions)
}

// parseCapacity reads a capacity attribute and converts it with conv
// (MW or MMBTUPerHour). A blank or unparseable field yields a nil
// capacity rather than an error: capacity is an opaque attribute, not
// something revision correctness depends on (spec.md §3, §1
// Non-goals).
func parseCapacity(raw string, conv func(float64) *unit.Unit) *unit.Unit {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return conv(v)
}

// maxCapacity mirrors ElectricGrid.py's
// `max([instance['OP_CAP'], instance['SUMMER_CAP'], instance['WINTER_CAP']])`
// pattern for pumped-storage records that report three seasonal
// ratings instead of one.
func maxCapacity(fields map[string]string, conv func(float64) *unit.Unit, rawFieldNames ...string) *unit.Unit {
	var best *unit.Unit
	for _, name := range rawFieldNames {
		c := parseCapacity(fields[name], conv)
		if c == nil {
			continue
		}
		if best == nil || c.Value() > best.Value() {
			best = c
		}
	}
	return best
}
