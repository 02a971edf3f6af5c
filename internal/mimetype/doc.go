// Package mimetype derives the manifestation mimetype pattern from a media
// type registry. The registry is always passed in, so generation runs the same
// against a downloaded mime-db table or a fixed fixture.
package mimetype
