// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package meta

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/spatialbuf/geocol"
	"github.com/spatialbuf/geocol/buffer"
)

// A CRS identifies the coordinate reference system of a column. A zero
// CRS means the system is unknown or irrelevant. Code is an authority
// code such as an EPSG number; Name and WKT are optional descriptive
// forms.
type CRS struct {
	Code int32
	Name string
	WKT  string
}

// A Meta describes one geometry column.
type Meta struct {
	// Name is the column name. It may be empty.
	Name string
	// Type is the geometry type of every row in the column.
	Type geocol.GeomType
	// Dimension is the column's coordinate dimensionality.
	Dimension geocol.Dimension
	// Layout is the coordinate buffer layout of the stored column.
	Layout buffer.Layout
	// Count is the row count, nulls included.
	Count int64
	// CRS is the column's coordinate reference system.
	CRS CRS
	// Extent is the column's XY bounding box as XMin, YMin, XMax,
	// YMax. HasExtent reports whether it was recorded.
	Extent [4]float64
	// HasExtent reports whether Extent holds a recorded bounding box.
	HasExtent bool
}

// Describe computes the metadata of a geometry array: its type,
// dimensionality, row count, and XY extent. The extent is omitted when
// the array has no coordinates.
func Describe(arr geocol.Array, name string, crs CRS) *Meta {
	m := &Meta{
		Name:      name,
		Type:      arr.Type(),
		Dimension: arr.Dimension(),
		Layout:    buffer.Interleaved,
		Count:     int64(arr.Len()),
		CRS:       crs,
	}
	x0, y0, x1, y1 := geocol.Bounds(arr)
	if x0 <= x1 {
		m.Extent = [4]float64{x0, y0, x1, y1}
		m.HasExtent = true
	}
	return m
}

// Marshal serializes the metadata as a size-prefixed FlatBuffers
// ColumnMeta table.
func (m *Meta) Marshal() ([]byte, error) {
	if m == nil {
		textPanic("nil meta")
	}
	b := flatbuffers.NewBuilder(256)

	var name, crsName, crsWKT flatbuffers.UOffsetT
	if m.Name != "" {
		name = b.CreateString(m.Name)
	}
	if m.CRS.Name != "" {
		crsName = b.CreateString(m.CRS.Name)
	}
	if m.CRS.WKT != "" {
		crsWKT = b.CreateString(m.CRS.WKT)
	}
	var extent flatbuffers.UOffsetT
	if m.HasExtent {
		ColumnMetaStartExtentVector(b, 4)
		for i := 3; i >= 0; i-- {
			b.PrependFloat64(m.Extent[i])
		}
		extent = b.EndVector(4)
	}

	ColumnMetaStart(b)
	if name != 0 {
		ColumnMetaAddName(b, name)
	}
	ColumnMetaAddGeometryType(b, byte(m.Type))
	ColumnMetaAddDimension(b, byte(m.Dimension))
	ColumnMetaAddLayout(b, byte(m.Layout))
	ColumnMetaAddCount(b, m.Count)
	ColumnMetaAddCrsCode(b, m.CRS.Code)
	if crsName != 0 {
		ColumnMetaAddCrsName(b, crsName)
	}
	if crsWKT != 0 {
		ColumnMetaAddCrsWkt(b, crsWKT)
	}
	if extent != 0 {
		ColumnMetaAddExtent(b, extent)
	}
	b.FinishSizePrefixed(ColumnMetaEnd(b))
	return b.FinishedBytes(), nil
}

// Unmarshal deserializes a size-prefixed ColumnMeta table produced by
// Marshal and validates its fields.
func Unmarshal(data []byte) (m *Meta, err error) {
	if len(data) < flatbuffers.SizeUint32 {
		return nil, textErr("metadata block too short for size prefix")
	}
	var cm *ColumnMeta
	err = safeFlatBuffersInteraction(func() error {
		cm = GetSizePrefixedRootAsColumnMeta(data, 0)
		return nil
	})
	if err != nil {
		return nil, err
	}

	m = &Meta{
		Name:      string(cm.Name()),
		Type:      geocol.GeomType(cm.GeometryType()),
		Dimension: geocol.Dimension(cm.Dimension()),
		Layout:    buffer.Layout(cm.Layout()),
		Count:     cm.Count(),
		CRS: CRS{
			Code: cm.CrsCode(),
			Name: string(cm.CrsName()),
			WKT:  string(cm.CrsWkt()),
		},
	}
	switch n := cm.ExtentLength(); n {
	case 0:
	case 4:
		var extent [4]float64
		err = safeFlatBuffersInteraction(func() error {
			for i := range extent {
				extent[i] = cm.Extent(i)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		m.Extent = extent
		m.HasExtent = true
	default:
		return nil, fmtErr("extent has %d values, want 0 or 4", n)
	}

	if m.Type > geocol.WKB {
		return nil, fmtErr("unknown geometry type code %d", byte(m.Type))
	}
	if m.Dimension != geocol.XY && m.Dimension != geocol.XYZ {
		return nil, fmtErr("unknown dimension code %d", byte(m.Dimension))
	}
	if m.Layout != buffer.Interleaved && m.Layout != buffer.Separated {
		return nil, fmtErr("unknown layout code %d", byte(m.Layout))
	}
	if m.Count < 0 {
		return nil, fmtErr("negative row count %d", m.Count)
	}
	return m, nil
}

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
//
// This function exists because FlatBuffers' Go code doesn't use
// standard Go error handling, allegedly for performance reasons, and
// consequently any invalid attempt to interact with FlatBuffers data
// may trigger a panic.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%vpanic: flatbuffers: %v", packageName, r)
		}
	}()
	err = f()
	return
}
