// Package model defines the data structures shared by the detector, the
// workflow and the UI.
package model

// Path represents a file system path.
type Path string

// File identifies a source file on disk together with the content hash it had
// when it was scanned.
type File struct {
	Path Path
	Hash string
}

// Source is a file queued for analysis along with the profile used to read it.
type Source struct {
	File    File
	Profile string // profile name, e.g. "go"
}
