package compiler

import (
	"os"
	"path/filepath"
	"strings"
)

// junkExtensions are the auxiliary files a compiler run leaves next to the
// source. The .log is handled separately so it can be kept after a failed
// run.
var junkExtensions = []string{".aux", ".out", ".toc", ".fls", ".fdb_latexmk", ".synctex.gz"}

// CleanJunk removes auxiliary files produced by compiling texPath, preserving
// the source and the PDF. keepLog retains the .log file for debugging failed
// runs. Idempotent: missing files are not an error.
func CleanJunk(texPath string, keepLog bool) {
	dir := filepath.Dir(texPath)
	base := strings.TrimSuffix(filepath.Base(texPath), ".tex")

	exts := junkExtensions
	if !keepLog {
		exts = append(append([]string{}, exts...), ".log")
	}

	for _, ext := range exts {
		_ = os.Remove(filepath.Join(dir, base+ext))
	}
}
