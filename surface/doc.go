// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the pixel device that pixdraw renders to.
//
// A Surface models a small display controller: it has a fixed size, an
// addressable clip area, and a hardware clip window that all writes are
// relative to. Drawing happens through three calls only:
//
//   - SetClipWindow programs the window
//   - WriteSolidRun streams count pixels of one color
//   - WriteRaw streams count pixels in the native RGB layout
//
// # Surface Types
//
//   - ImageSurface: CPU emulation backed by *image.RGBA, with PNG output
//   - Recorder: wraps another surface and logs every call as a Command
//
// Both are registered by name ("image", "recorder") in a Registry, so a
// driver for a real panel can be selected the same way:
//
//	s, err := surface.NewByName("recorder", surface.Options{Width: 320, Height: 240})
//
// # Usage
//
//	s := surface.NewImageSurface(320, 240)
//	defer s.Close()
//
//	// Paint a 10x10 square through the clip window
//	_ = s.SetClipWindow(20, 20, 10, 10)
//	_ = s.WriteSolidRun(0, 0, 255, 0, 0, 100)
//	_ = surface.ResetClipWindow(s)
//
//	_ = s.SavePNG("square.png")
package surface
