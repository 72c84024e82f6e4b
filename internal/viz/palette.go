package viz

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// LaunchPalette holds the colours a rocket can be assigned at emission time.
// Selection is uniform random and independent of the audio input.
var LaunchPalette = []RGB{
	{255, 82, 64},   // coral red
	{255, 168, 40},  // amber
	{255, 230, 96},  // gold
	{128, 255, 128}, // mint
	{84, 200, 255},  // sky
	{150, 120, 255}, // violet
	{255, 110, 220}, // magenta
	{240, 240, 255}, // white-blue
}

// HighlightColor recolours a fraction of high-energy burst particles for
// sparkle variance.
var HighlightColor = RGB{255, 244, 214}
