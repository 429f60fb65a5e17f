package assembly

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	resumeClassRe   = regexp.MustCompile(`\\documentclass\s*\{[^}]*resume[^}]*\}`)
	moduleInputRe   = regexp.MustCompile(`\\input\{([^}]*/?modules/[^}]*)\}`)
	moduleGraphicRe = regexp.MustCompile(`(\\includegraphics(?:\[[^\]]*\])?\{)([^}]*modules/[^}]*)(\})`)
)

// NormalizeResumeClass rewrites any resume-flavored \documentclass to the
// plain \documentclass{resume}, which TEXINPUTS resolves against the template
// directory regardless of where the compiler runs.
func NormalizeResumeClass(text string) string {
	return resumeClassRe.ReplaceAllString(text, `\documentclass{resume}`)
}

// RewriteResourcePaths turns relative \input and \includegraphics references
// into modules/ into absolute paths anchored at resourceRoot, so LaTeX finds
// them when compiling from jobs/<company>/<role>/.
func RewriteResourcePaths(text, resourceRoot string) string {
	text = moduleInputRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := moduleInputRe.FindStringSubmatch(match)
		return `\input{` + absify(sub[1], resourceRoot) + `}`
	})
	text = moduleGraphicRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := moduleGraphicRe.FindStringSubmatch(match)
		return sub[1] + absify(sub[2], resourceRoot) + sub[3]
	})
	return text
}

// absify strips leading ../ and ./ segments and anchors the remainder at the
// resource root.
func absify(rel, resourceRoot string) string {
	rel = filepath.ToSlash(rel)
	for strings.HasPrefix(rel, "../") {
		rel = rel[3:]
	}
	rel = strings.TrimPrefix(rel, "./")
	return filepath.ToSlash(filepath.Join(resourceRoot, filepath.FromSlash(rel)))
}
