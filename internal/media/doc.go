// Package media converts benchmark screen recordings into looping GIF previews.
//
// Each recording is transcoded by one ffmpeg invocation using a two-pass
// palette filter graph (palettegen + paletteuse) so the 256-color output keeps
// the simulation's gradients. Files are processed one at a time; a failed file
// is reported and the batch moves on.
package media
