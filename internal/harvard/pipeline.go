// Package harvard rewrites in-text citations, reference-list entries, and
// bare URLs in plain document text into a consistent Harvard style. All
// transformations are pure text-to-text functions with no I/O and no shared
// state, so a pipeline invocation is reentrant.
package harvard

import "strings"

// Process runs the three fixing stages in order: in-text citations, the
// reference list, then URL replacement. An empty input yields an empty output.
func Process(text string) string {
    text = FixInTextCitations(text)
    text = FixReferenceList(text)
    text = ReplaceURLs(text)
    return text
}

// UnclassifiedEntries returns the reference-list entries of the ORIGINAL
// (unprocessed) text that match none of the recognized bibliographic shapes
// and would therefore only receive generic cleanup. Each entry is returned in
// its cleaned-up form, i.e. exactly as it appears in the Process output, so
// callers can substitute improved renditions there. The pipeline itself never
// reformats these beyond cleanup.
func UnclassifiedEntries(text string) []string {
    lines, start, end := referenceBlock(text)
    if start < 0 {
        return nil
    }
    var out []string
    for _, line := range lines[start:end] {
        entry := strings.TrimSpace(line)
        if entry == "" {
            continue
        }
        if journalRe.MatchString(entry) || conferenceRe.MatchString(entry) || bookRe.MatchString(entry) {
            continue
        }
        out = append(out, cleanupEntry(entry))
    }
    return out
}
