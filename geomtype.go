// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

// A GeomType identifies a geometry array variant, or the geometry
// kind of a single row in a mixed array. Values 1 through 7 match the
// Well-Known Binary base type codes.
type GeomType uint8

const (
	// Unknown is the zero GeomType. In a mixed array it tags a null
	// row with no geometry kind.
	Unknown GeomType = iota
	Point
	LineString
	Polygon
	MultiPoint
	MultiLineString
	MultiPolygon
	GeometryCollection
	// Mixed tags a heterogeneous array whose rows carry per-row type
	// discriminants. Not a Well-Known Binary code.
	Mixed
	// WKB tags an opaque-binary array whose rows are undecoded
	// Well-Known Binary payloads. Not a Well-Known Binary code.
	WKB
)

var geomTypeNames = [...]string{
	"Unknown",
	"Point",
	"LineString",
	"Polygon",
	"MultiPoint",
	"MultiLineString",
	"MultiPolygon",
	"GeometryCollection",
	"Mixed",
	"WKB",
}

// String returns the name of the geometry type.
func (t GeomType) String() string {
	if int(t) < len(geomTypeNames) {
		return geomTypeNames[t]
	}
	return "Unknown"
}

// Multi returns the multi-part counterpart of a geometry type, or the
// type itself if it is already a multi type, or Unknown if it has no
// multi counterpart.
func (t GeomType) Multi() GeomType {
	switch t {
	case Point, MultiPoint:
		return MultiPoint
	case LineString, MultiLineString:
		return MultiLineString
	case Polygon, MultiPolygon:
		return MultiPolygon
	default:
		return Unknown
	}
}

// A Dimension is the coordinate dimensionality of an array. All rows
// of one logical column share a single dimension.
type Dimension uint8

const (
	// XY is two-dimensional data.
	XY Dimension = 2
	// XYZ is three-dimensional data.
	XYZ Dimension = 3
)

// String returns the name of the dimension.
func (d Dimension) String() string {
	switch d {
	case XY:
		return "XY"
	case XYZ:
		return "XYZ"
	default:
		return "Unknown"
	}
}

func checkDimension(d Dimension) {
	if d != XY && d != XYZ {
		fmtPanic("dimension must be XY or XYZ, got %d", d)
	}
}
