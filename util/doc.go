// Package util provides small helpers shared by the transport
// implementations, such as human-readable size parsing for rotation
// limits.
package util
