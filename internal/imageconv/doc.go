// Package imageconv converts a still or animated image into one or more of
// the known formats (png, jpeg, gif, webp).
//
// A conversion is a straight pipeline: Load validates the extension and
// decodes the source, CheckFormats optionally vets the selection against
// the configured policy, and Save writes one file per format next to the
// source. Converter ties the three together for a Request.
package imageconv
