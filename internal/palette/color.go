package palette

// Color is an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255. Color is an immutable value type;
// colors are compared only through the Distance function.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Distance returns the squared Euclidean distance between two colors:
//
//	(a.R-b.R)² + (a.G-b.G)² + (a.B-b.B)²
//
// The square root is omitted since callers only compare distances against
// each other. The result is non-negative and at most 3*255² = 195075.
func Distance(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
