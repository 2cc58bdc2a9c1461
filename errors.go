// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/palmdoc

package palmdoc

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	// ErrOffsetOutsideData is returned when the stream ends inside a token
	// (a back-reference missing its second byte, or a short literal run).
	ErrOffsetOutsideData = errors.New("offset to LZ77 bits is outside of the data")
	// ErrInvalidOffset is returned when a back-reference distance is zero or
	// points before the start of the output.
	ErrInvalidOffset = errors.New("LZ77 decompression offset is invalid")
	// ErrOutputTooLarge is returned when decoding would exceed DecompressOptions.MaxOutputSize.
	ErrOutputTooLarge = errors.New("decompressed output exceeds limit")
)
