// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpumesh integrates ink meshes with gogpu hosts.
//
// The host application owns the GPU device and passes a
// gpucontext.DeviceProvider; gpumesh stages mesh bytes and manages the
// vertex buffer lifecycle (creation, in-place update, deferred destruction).
// It never creates a device of its own.
//
// Usage:
//
//	buf, err := gpumesh.New(app.GPUContextProvider())
//	if err != nil { ... }
//	defer buf.Close()
//
//	buf.SetMesh(ink.BuildMesh(points, widths, color))
//	vb, err := buf.Upload(renderer)
//
// Bind vb with the layout from ink.VertexLayout and draw
// buf.VertexCount() vertices as a triangle list.
package gpumesh
