// Command neume-schema validates documents against the neume network
// definitions and regenerates the manifestation mimetype pattern from the
// mime-db registry.
package main
