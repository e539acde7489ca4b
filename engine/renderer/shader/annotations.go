// annotations.go defines the annotation type and parser for the Oxy WGSL shader pre-processor.
// Annotations are single-line WGSL comments prefixed with @oxy: that drive struct and helper
// injection, so each shader can share the engine's canonical uniform layouts.
package shader

import (
	"fmt"
	"strings"
)

// annotationPrefix is the marker that identifies an Oxy annotation within a WGSL comment line.
// Every annotation must appear on a line beginning with "//" followed by this prefix.
const annotationPrefix = "@oxy:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
type AnnotationType string

const (
	// AnnotationTypeInclude injects a registered WGSL source fragment at the annotation site.
	//
	// Syntax: // @oxy:include <name>
	//
	// Example: // @oxy:include camera
	AnnotationTypeInclude AnnotationType = "include"
)

// Annotation is a parsed @oxy: directive.
type Annotation struct {
	Type AnnotationType
	Args []string
	Line int
}

// parseAnnotation parses a single source line. Lines that are not "//" comments carrying the
// @oxy: prefix return nil without error.
//
// Parameters:
//   - line: the raw source line
//   - lineNum: the 1-based line number used in errors
//
// Returns:
//   - *Annotation: the parsed annotation, or nil
//   - error: an error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	comment, ok := strings.CutPrefix(trimmed, "//")
	if !ok {
		return nil, nil
	}
	after, ok := strings.CutPrefix(strings.TrimSpace(comment), annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @oxy annotation", lineNum)
	}

	switch AnnotationType(args[0]) {
	case AnnotationTypeInclude:
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @oxy include annotation requires exactly one argument", lineNum)
		}
		return &Annotation{
			Type: AnnotationTypeInclude,
			Args: []string{args[1]},
			Line: lineNum,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown annotation type %q", lineNum, args[0])
	}
}
