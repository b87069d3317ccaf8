package indent

// tracker counts open scopes for one pass over one document. Each pass
// invocation gets its own tracker; nothing is shared between passes or
// between concurrent Format calls.
type tracker struct {
	depth int
}

// next applies the per-line transition and returns the level for the
// current line:
//
//  1. a closer decrements depth before the line's level is taken, so a
//     closing marker sits at the same level as its opener; at depth 0 an
//     unmatched closer is a no-op and the line stays at 0
//  2. the line's level is the depth after step 1
//  3. an opener increments depth after the line's level is taken, so the
//     opener itself stays at the outer level and its contents go one deeper
//
// Ranked heading lines are both closer and opener: they terminate any scope
// of their own pass and immediately start a new one, which keeps a ranked
// pass's depth at most 1.
func (t *tracker) next(p pass, content string) int {
	if t.depth > 0 && p.closes(content) {
		t.depth--
	}
	level := t.depth
	if p.opens(content) {
		t.depth++
	}
	return level
}
