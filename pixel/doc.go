// Package pixel implements the pixel formats used by the display backends.
//
// The format set is closed: it holds exactly the layouts the framebuffer
// format normalizer can decide on. Each format comes with a color model
// compatible with Go's native [image/color.Color], and an image type
// implementing [image/draw.Image] over raw surface bytes.
package pixel
