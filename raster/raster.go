// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster renders ink meshes on the CPU.
//
// It is intended for previews, golden tests, and hosts without a GPU. The
// whole mesh is accumulated into a single coverage rasterizer, so triangles
// sharing an edge composite without seams.
package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/ink"
)

// Rasterize renders the mesh into a new RGBA image of the given size.
// Mesh coordinates map directly to pixel coordinates, origin top-left,
// y down.
func Rasterize(m ink.Mesh, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	RasterizeInto(dst, m)
	return dst
}

// RasterizeInto composites the mesh over dst. Mesh coordinates are
// interpreted relative to dst's bounds origin.
func RasterizeInto(dst *image.RGBA, m ink.Mesh) {
	if m.TriangleCount() == 0 {
		return
	}

	b := dst.Bounds()

	// The rasterizer works in bounds-relative coordinates; Draw anchors
	// its output at b.Min, so mesh coordinates pass through untranslated.
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	for i := 0; i < m.TriangleCount(); i++ {
		pa, _ := m.Vertex(3 * i)
		pb, _ := m.Vertex(3*i + 1)
		pc, _ := m.Vertex(3*i + 2)

		// The mesh contract does not fix triangle winding, and mixed
		// windings cancel coverage where triangles overlap. Normalize to
		// counter-clockwise before accumulating.
		if pb.Sub(pa).Cross(pc.Sub(pa)) < 0 {
			pb, pc = pc, pb
		}

		z.MoveTo(float32(pa.X), float32(pa.Y))
		z.LineTo(float32(pb.X), float32(pb.Y))
		z.LineTo(float32(pc.X), float32(pc.Y))
		z.ClosePath()
	}

	// Every vertex carries the same stroke color.
	_, col := m.Vertex(0)
	z.Draw(dst, b, image.NewUniform(col.Color()), image.Point{})
}
