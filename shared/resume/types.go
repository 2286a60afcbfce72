// Package resume parses the portfolio content map. It has no dependencies on
// ebitengine, donburi, or resolv, so it loads the same under tests.
package resume

// Document is the parsed content of one portfolio map.
type Document struct {
	Owner    string
	Sections []Section
}

// Section is one viewport-wide panel, ordered left to right.
type Section struct {
	ID       string
	Title    string
	Subtitle string
	Body     []string
	Hero     bool // subtitle gets the typewriter effect
	X        float64
}
