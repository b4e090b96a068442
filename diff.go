package golingo

// Segment is one translatable text segment of a document, keyed by the
// hash of its trimmed text.
type Segment struct {
	Text string
	Hash string
}

// DiffResult represents the difference between the translatable segments
// of two document versions.
type DiffResult struct {
	// Added contains segments that are new (not in the previous version).
	Added []Segment

	// Removed contains segments that were removed (not in the new version).
	Removed []Segment

	// Unchanged contains segments that exist in both versions.
	Unchanged []Segment
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Added     int
	Removed   int
	Unchanged int
}

// Stats returns summary statistics for the diff.
func (d *DiffResult) Stats() DiffStats {
	return DiffStats{
		Added:     len(d.Added),
		Removed:   len(d.Removed),
		Unchanged: len(d.Unchanged),
	}
}

// HasChanges returns true if there are any differences.
func (d *DiffResult) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0
}

// NeedsTranslation returns the segments a re-translation would send to the
// provider: everything new in this version.
func (d *DiffResult) NeedsTranslation() []Segment {
	result := make([]Segment, len(d.Added))
	copy(result, d.Added)
	return result
}

// DiffDocuments compares the translatable segments of two HTML document
// versions. Useful for previewing what an incremental re-translation would
// cost before issuing it.
func DiffDocuments(oldDoc, newDoc string) *DiffResult {
	return DiffSegments(collectSegments(oldDoc), collectSegments(newDoc))
}

// DiffSegments compares two segment lists by hash.
func DiffSegments(oldSegs, newSegs []Segment) *DiffResult {
	result := &DiffResult{}

	oldByHash := make(map[string]Segment, len(oldSegs))
	newByHash := make(map[string]Segment, len(newSegs))
	for _, s := range oldSegs {
		oldByHash[s.Hash] = s
	}
	for _, s := range newSegs {
		newByHash[s.Hash] = s
	}

	// Walk in document order so output ordering is stable.
	seen := make(map[string]bool)
	for _, s := range oldSegs {
		if seen[s.Hash] {
			continue
		}
		seen[s.Hash] = true
		if _, ok := newByHash[s.Hash]; ok {
			result.Unchanged = append(result.Unchanged, s)
		} else {
			result.Removed = append(result.Removed, s)
		}
	}
	seen = make(map[string]bool)
	for _, s := range newSegs {
		if seen[s.Hash] {
			continue
		}
		seen[s.Hash] = true
		if _, ok := oldByHash[s.Hash]; !ok {
			result.Added = append(result.Added, s)
		}
	}

	return result
}

func collectSegments(doc string) []Segment {
	texts := Segments(doc)
	segs := make([]Segment, len(texts))
	for i, t := range texts {
		segs[i] = Segment{Text: t, Hash: HashText(t)}
	}
	return segs
}
