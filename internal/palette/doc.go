// Package palette provides color palettes and nearest-color lookup for image
// quantization.
//
// A palette is an ordered list of 8-bit RGB colors. Palettes can be loaded
// from JSON files or constructed in code, and one palette at a time is held
// in a Store as the "active" palette consulted by quantization.
//
// # Distance Metric
//
// Nearest-color search uses squared Euclidean distance over the three
// channels. The square root is never taken since only the relative ordering
// of distances matters, and all arithmetic is integer, so results are exact
// and deterministic. Ties are resolved to the entry that appears first in
// palette order.
//
// # Palette File Format
//
// Palette files are JSON documents:
//
//	{
//	    "name": "Warm Colors",
//	    "description": "A palette of warm colors",
//	    "colors": [
//	        [255, 0, 0],
//	        "#FFA500",
//	        [255, 255, 0]
//	    ]
//	}
//
// Each entry in "colors" is either a three-element [r, g, b] array with
// values 0-255, or a "#RRGGBB" hex string. A palette with no colors is
// rejected at load time.
//
// # Thread Safety
//
// Store is safe for concurrent use: any number of goroutines may call
// Nearest while another replaces the active palette with SetActive. Readers
// always observe either the previous or the new palette in full, never a
// partial mix.
package palette
