// Package filter implements the image transformation pipeline: palette
// quantization, block pixelation, Floyd-Steinberg dithering, and color
// inversion, applied in a user-specified order over a single image.
//
// # Representation
//
// At every point in the pipeline the image is in exactly one of two
// representations, tracked by Raster:
//
//   - FullColor: three 8-bit channels per pixel (*image.RGBA)
//   - Tone: one 8-bit channel per pixel (*image.Gray), produced only by
//     dithering
//
// Quantize, Pixelate, and Invert require FullColor input and promote a Tone
// raster first by replicating the single channel into r=g=b. Dither accepts
// either representation and always produces Tone. The final representation
// determines the save format: Tone is written as an 8-bit grayscale raster,
// FullColor as RGB.
//
// # Pipeline
//
// A Pipeline interprets an ordered list of Operations against one image,
// strictly in the given order with no reordering, deduplication, or fusion.
// Every operation is a whole-image pass; the pipeline is sequential by
// construction since each pass consumes the full output of its predecessor.
//
// # Determinism
//
// All operations are deterministic pure functions of their input image and
// (for Quantize) the active palette: integer arithmetic throughout, with
// truncating division and first-occurrence tie-breaking in nearest-color
// search.
package filter
