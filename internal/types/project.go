// Package types defines the core data structures shared across the CV builder.
package types

// Project represents one selectable project snippet: a self-contained LaTeX
// fragment that can be \input into the CV.
type Project struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}
