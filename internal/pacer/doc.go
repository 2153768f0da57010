// Package pacer spaces frames out to the target frame rate by sleeping
// away whatever part of the frame interval the decode/render/write work
// did not use.
package pacer
