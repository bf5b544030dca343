// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ink"
)

// Common errors returned by Buffer operations.
var (
	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpumesh: nil DeviceProvider")

	// ErrClosed is returned when operations are attempted on a closed buffer.
	ErrClosed = errors.New("gpumesh: buffer is closed")

	// ErrEmptyMesh is returned when uploading before a mesh has been staged.
	ErrEmptyMesh = errors.New("gpumesh: empty mesh")

	// ErrInvalidRenderer is returned when the renderer cannot create
	// vertex buffers.
	ErrInvalidRenderer = errors.New("gpumesh: renderer does not support vertex buffer creation")
)

// vertexBufferCreator matches renderers that can create GPU vertex buffers
// from raw bytes.
type vertexBufferCreator interface {
	NewVertexBuffer(data []byte) (any, error)
}

// bufferUpdater matches GPU buffers whose contents can be updated in place.
type bufferUpdater interface {
	UpdateData(data []byte)
}

// bufferDestroyer matches GPU buffers that must be explicitly released.
// This matches the gogpu.Buffer.Destroy signature.
type bufferDestroyer interface {
	Destroy()
}

// Buffer stages an ink mesh for upload as a GPU vertex buffer.
// It tracks dirty state so repeated Upload calls with an unchanged mesh are
// free, and reuses the underlying GPU buffer in place when the backend
// supports it.
//
// Buffer is NOT safe for concurrent use. Create one Buffer per goroutine,
// or use external synchronization.
type Buffer struct {
	provider gpucontext.DeviceProvider
	mesh     ink.Mesh
	buf      any // lazy-created GPU buffer (e.g. *gogpu.Buffer)
	dirty    bool
	closed   bool
}

// New creates a Buffer bound to the given device provider.
// The provider should come from the host application, e.g.
// gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider) (*Buffer, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &Buffer{provider: provider}, nil
}

// SetMesh stages a mesh for upload and marks the buffer dirty.
// The mesh is retained, not copied; do not mutate it while staged.
func (b *Buffer) SetMesh(m ink.Mesh) {
	b.mesh = m
	b.dirty = true
}

// Mesh returns the currently staged mesh.
func (b *Buffer) Mesh() ink.Mesh {
	return b.mesh
}

// VertexCount returns the vertex count of the staged mesh.
func (b *Buffer) VertexCount() int {
	return b.mesh.VertexCount()
}

// Dirty reports whether the staged mesh has changed since the last upload.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// Provider returns the device provider the buffer is bound to.
func (b *Buffer) Provider() gpucontext.DeviceProvider {
	return b.provider
}

// Upload ensures the GPU vertex buffer reflects the staged mesh and returns
// it. The renderer is duck-typed: it must implement
// NewVertexBuffer(data []byte) (any, error), which gogpu renderers do.
//
// If the existing GPU buffer supports in-place updates it is reused;
// otherwise it is destroyed and recreated.
func (b *Buffer) Upload(renderer any) (any, error) {
	if b.closed {
		return nil, ErrClosed
	}
	if b.mesh.VertexCount() == 0 {
		return nil, ErrEmptyMesh
	}
	if !b.dirty && b.buf != nil {
		return b.buf, nil
	}

	data := b.mesh.Bytes()

	if b.buf != nil {
		if updater, ok := b.buf.(bufferUpdater); ok {
			updater.UpdateData(data)
			b.dirty = false
			return b.buf, nil
		}
		b.destroyBuf()
	}

	creator, ok := renderer.(vertexBufferCreator)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrInvalidRenderer, renderer)
	}

	buf, err := creator.NewVertexBuffer(data)
	if err != nil {
		return nil, fmt.Errorf("gpumesh: vertex buffer creation failed: %w", err)
	}

	ink.Logger().Debug("gpumesh: vertex buffer uploaded",
		"vertices", b.mesh.VertexCount(),
		"bytes", len(data))

	b.buf = buf
	b.dirty = false
	return buf, nil
}

// Close releases the GPU buffer, if any. The Buffer cannot be used after
// Close.
func (b *Buffer) Close() {
	if b.closed {
		return
	}
	b.destroyBuf()
	b.closed = true
}

func (b *Buffer) destroyBuf() {
	if d, ok := b.buf.(bufferDestroyer); ok {
		d.Destroy()
	}
	b.buf = nil
}
