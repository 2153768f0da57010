// Package dimensions maps the requested terminal width, the optional
// height override, and the probed source resolution onto the pixel size of
// the decoded frames.
package dimensions
