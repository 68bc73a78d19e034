// Package container provides generic helpers over slices.
//
// The helpers are constraint-checked: calling Sum on a slice whose element
// type does not support addition, or IsEmpty on a non-slice, fails to compile
// rather than failing at runtime.
package container
