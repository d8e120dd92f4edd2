package format

import "github.com/elan-voss/tessera/path"

// parseSubpath parses a relative path fragment such as ".field" or "[2]".
func parseSubpath(sub string) (path.Path, error) {
	return path.Parse(sub)
}

// joinPaths appends every step of rel onto the end of base.
func joinPaths(base, rel path.Path) path.Path {
	p := base
	for _, step := range rel.Steps() {
		if step.IsKey() {
			p = p.Key(step.Key())
		} else {
			p = p.Index(step.Index())
		}
	}
	return p
}
