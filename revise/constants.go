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

package revise

// Default clustering radii, in degrees of WGS84, treated as planar
// Euclidean distances over the stored (x,y) tuples.
const (
	// DefaultEpsilonPrimary groups line endpoints and nearby
	// same-refinement points (~0.1 mi).
	DefaultEpsilonPrimary = 0.001446
	// DefaultEpsilonSecondary attaches an isolated point to the nearest
	// existing endpoint cluster (~1.0 mi).
	DefaultEpsilonSecondary = 0.014465
	// DefaultEpsilonTertiary allocates a new cluster to an isolated
	// buffer and queues a synthetic transporter to the nearest endpoint
	// (~35 mi).
	DefaultEpsilonTertiary = 0.5075

	// GPSPrecision is the number of decimal places raw coordinates are
	// assumed to already be rounded to before ingestion.
	GPSPrecision = 4
)

// Clustering radii actually used by C2/C6. They default to the
// Default* constants above but may be overridden at startup (before any
// Context is revised) by cmd/hfgtrevise's configuration loader, the
// same way InMAP's grid parameters live in a configurable VarGridConfig
// rather than being hardcoded.
var (
	EpsilonPrimary   = DefaultEpsilonPrimary
	EpsilonSecondary = DefaultEpsilonSecondary
	EpsilonTertiary  = DefaultEpsilonTertiary
)

// OilRescueRadius is the search radius for the isolated oil-plant
// rescue pass in C6, four times EpsilonTertiary.
func OilRescueRadius() float64 { return 4 * EpsilonTertiary }

// noCluster is the sentinel value for an unassigned cluster id.
const noCluster Cluster = 0

// firstCluster is the first cluster id C2 allocates. Cluster ids are
// monotonically increasing starting here so that the zero value of
// Cluster can serve as "unassigned".
const firstCluster Cluster = 1
