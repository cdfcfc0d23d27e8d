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

import "fmt"

// MalformedInputError reports a transporter with a missing endpoint or a
// buffer with no refinement. The offending record is skipped, not
// partially inserted.
type MalformedInputError struct {
	Component string
	Detail    string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("revise: %s: malformed input: %s", e.Component, e.Detail)
}

// UnknownRefinementError reports a refinement string outside the closed
// set known to the context.
type UnknownRefinementError struct {
	Component  string
	Refinement string
}

func (e *UnknownRefinementError) Error() string {
	return fmt.Sprintf("revise: %s: unknown refinement %q", e.Component, e.Refinement)
}

// InvariantViolationError is returned when a runtime check detects that
// the positional contract (I1) or another core invariant would be
// broken by a proposed mutation. The whole revision aborts; no partial
// graph is returned.
type InvariantViolationError struct {
	Component string
	Detail    string
	Indices   []int
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("revise: %s: invariant violation: %s %v", e.Component, e.Detail, e.Indices)
}

// PolygonMissError reports that C6 region attribution found no polygon
// containing a buffer and no catalog to fall back on. Processing
// continues with an "UNKNOWN" controller.
type PolygonMissError struct {
	Buffer string
	Catalog string
}

func (e *PolygonMissError) Error() string {
	return fmt.Sprintf("revise: region attribution: %s: no polygon match in %s catalog", e.Buffer, e.Catalog)
}

func invariantViolation(component, detail string, indices ...int) error {
	return &InvariantViolationError{Component: component, Detail: detail, Indices: indices}
}
