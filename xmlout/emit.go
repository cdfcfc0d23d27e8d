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

// Package xmlout serializes a revised graph to the fixed
// hetero-functional graph XML schema, grounded on AMES.py's
// write_xml_hfgt: an LFES root carrying one Operand per refinement,
// one element per buffer and transporter, and one Controller per
// attribution label.
package xmlout

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LIINES/hfgt-revise/revise"
)

type lfesDoc struct {
	XMLName     xml.Name       `xml:"LFES"`
	Name        string         `xml:"name,attr"`
	Type        string         `xml:"type,attr"`
	DataState   string         `xml:"dataState,attr"`
	NumBuffers  int            `xml:"numBuffers,attr"`
	Operands    []operandXML   `xml:"Operand"`
	Buffers     []bufferXML    `xml:"Buffer"`
	Lines       []lineXML      `xml:"Line"`
	Controllers []controllerXML `xml:"Controller"`
}

type operandXML struct {
	Name string `xml:"name,attr"`
}

type fuelXML struct {
	Refinement string  `xml:"refinement,attr"`
	Capacity   float64 `xml:"capacity,attr"`
}

type bufferXML struct {
	Name        string    `xml:"name,attr"`
	NodeType    string    `xml:"nodeType,attr"`
	X           float64   `xml:"x,attr"`
	Y           float64   `xml:"y,attr"`
	Refinements []string  `xml:"Refinement"`
	Fuels       []fuelXML `xml:"Fuel,omitempty"`
	Controllers string    `xml:"controller,attr,omitempty"`
}

type lineXML struct {
	Name        string   `xml:"name,attr"`
	LineType    string   `xml:"lineType,attr"`
	Origin      string   `xml:"origin,attr"`
	Dest        string   `xml:"dest,attr"`
	Status      string   `xml:"status,attr"`
	Refinements []string `xml:"Refinement"`
	Controllers string   `xml:"controller,attr,omitempty"`
}

type controllerXML struct {
	Name   string `xml:"name,attr"`
	Status string `xml:"status,attr"`
}

// buildDoc translates c's revised graph into the serializable document
// tree, the Go equivalent of write_xml_hfgt's root/Operand/node/line/
// Controller assembly loop.
func buildDoc(name string, c *revise.Context) lfesDoc {
	doc := lfesDoc{
		Name:       name,
		Type:       "Energy System",
		DataState:  "raw",
		NumBuffers: len(c.Buffers()),
	}
	for _, r := range c.Refinements() {
		doc.Operands = append(doc.Operands, operandXML{Name: string(r)})
	}
	for _, b := range c.Buffers() {
		bx := bufferXML{
			Name:        b.Name,
			NodeType:    string(b.NodeType),
			X:           b.X,
			Y:           b.Y,
			Controllers: strings.Join(b.Controllers, ","),
		}
		for _, r := range b.Refinements {
			bx.Refinements = append(bx.Refinements, string(r))
		}
		for _, f := range b.Fuels {
			fx := fuelXML{Refinement: string(f.Fuel)}
			if f.Capacity != nil {
				fx.Capacity = f.Capacity.Value()
			}
			bx.Fuels = append(bx.Fuels, fx)
		}
		doc.Buffers = append(doc.Buffers, bx)
	}
	for _, t := range c.Transporters() {
		lx := lineXML{
			Name:        t.Name,
			LineType:    string(t.LineType),
			Origin:      t.Origin.Name,
			Dest:        t.Dest.Name,
			Status:      t.Status,
			Controllers: strings.Join(t.Controllers, ","),
		}
		for _, r := range t.Refinements {
			lx.Refinements = append(lx.Refinements, string(r))
		}
		doc.Lines = append(doc.Lines, lx)
	}
	for _, ctrl := range c.Controllers() {
		doc.Controllers = append(doc.Controllers, controllerXML{Name: ctrl, Status: "true"})
	}
	return doc
}

// Write serializes c's revised graph to w as an HFGT-schema XML
// document named name, preceded by the standard XML declaration
// (tree.write(..., xml_declaration=True) in the source).
func Write(w io.Writer, name string, c *revise.Context) error {
	doc := buildDoc(name, c)
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("xmlout: encoding HFGT document: %w", err)
	}
	_, err := w.Write([]byte("\n"))
	return err
}

// WriteFile creates path and writes c's revised graph to it, the Go
// analog of write_xml_hfgt(fileout).
func WriteFile(path, name string, c *revise.Context) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("xmlout: creating %q: %w", path, err)
	}
	defer f.Close()
	return Write(f, name, c)
}
