package harvard

import (
    "fmt"
    "regexp"
    "strings"
    "unicode"
)

var (
    // refHeadingRe matches a References/Bibliography section heading on its
    // own line, case-insensitively and optionally pluralized.
    refHeadingRe = regexp.MustCompile(`(?i)^\s*(?:references?|bibliograph(?:y|ies))\s*$`)

    // Bibliographic shapes, anchored to the full entry. Precedence is
    // journal, then conference, then book; the patterns are not mutually
    // exclusive by construction, so the order is load-bearing.
    journalRe    = regexp.MustCompile(`^(.+?)\.\s*\((\d{4}[a-z]?)\)\.\s*(.+?)\.\s*(.+?),\s*(\d+)(?:\s*\((\d+)\))?,\s*(?:pp?\.\s*)?(\d+(?:\s*[-–]\s*\d+)?)\.?\s*$`)
    conferenceRe = regexp.MustCompile(`^(.+?)\.\s*\((\d{4}[a-z]?)\)\.\s*(.+?)\.\s*(?:In|Proceedings of)\s+(.+?)(?:,\s*([^,.]+?))?\.?\s*$`)
    bookRe       = regexp.MustCompile(`^(.+?)\.\s*\((\d{4}[a-z]?)\)\.\s*(.+?)\.\s*(.+?)\.?\s*$`)

    periodRunRe = regexp.MustCompile(`\.{2,}`)
    spaceRunRe  = regexp.MustCompile(`\s+`)
)

// FixReferenceList locates a References/Bibliography section and rewrites each
// entry in it to a Harvard shape. Text outside the detected block, including
// the heading line itself, is returned verbatim. When no heading is present
// the input is returned unchanged.
func FixReferenceList(text string) string {
    lines, start, end := referenceBlock(text)
    if start < 0 {
        return text
    }

    entries := make([]string, 0, end-start)
    for _, line := range lines[start:end] {
        if strings.TrimSpace(line) == "" {
            continue
        }
        entries = append(entries, formatReferenceEntry(line))
    }
    if len(entries) == 0 {
        return text
    }

    out := make([]string, 0, len(lines))
    out = append(out, lines[:start]...)
    out = append(out, entries...)
    out = append(out, lines[end:]...)
    return strings.Join(out, "\n")
}

// referenceBlock splits text into lines and locates the reference block as a
// half-open line range [start, end). When no heading is found, or the heading
// is the last line, start is -1.
//
// The block ends at a blank-line-separated line starting with a capital
// letter or digit, at a line starting "Appendix", or at end of text. Go's
// regexp has no lookahead, so the boundary is found with a line scan rather
// than a single pattern.
func referenceBlock(text string) (lines []string, start, end int) {
    lines = strings.Split(text, "\n")

    heading := -1
    for i, line := range lines {
        if refHeadingRe.MatchString(line) {
            heading = i
            break
        }
    }
    if heading == -1 || heading == len(lines)-1 {
        return lines, -1, -1
    }

    // Blank lines directly under the heading belong to the heading, not the
    // block.
    start = heading + 1
    for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
        start++
    }

    end = len(lines)
    for j := start; j < len(lines); j++ {
        trimmed := strings.TrimSpace(lines[j])
        if j > start && trimmed != "" && strings.TrimSpace(lines[j-1]) == "" {
            r := []rune(trimmed)[0]
            if unicode.IsUpper(r) || unicode.IsDigit(r) {
                // Keep the blank separator with the trailing text.
                end = j - 1
                break
            }
        }
        if strings.HasPrefix(lines[j], "Appendix") {
            end = j
            break
        }
    }
    return lines, start, end
}

// formatReferenceEntry applies the first bibliographic shape that matches the
// whole entry, falling back to generic cleanup when none does.
func formatReferenceEntry(entry string) string {
    entry = strings.TrimSpace(entry)
    if m := journalRe.FindStringSubmatch(entry); m != nil {
        return formatJournal(m)
    }
    if m := conferenceRe.FindStringSubmatch(entry); m != nil {
        return formatConference(m)
    }
    if m := bookRe.FindStringSubmatch(entry); m != nil {
        return formatBook(m)
    }
    return cleanupEntry(entry)
}

// formatJournal renders "Authors (Year) 'Title', *Journal*, Volume(Issue),
// pp. Pages." with the issue segment omitted when absent.
func formatJournal(m []string) string {
    authors, year, title, journal := expandAuthors(m[1]), m[2], m[3], m[4]
    volume, issue, pages := m[5], m[6], m[7]
    if issue != "" {
        volume = volume + "(" + issue + ")"
    }
    return fmt.Sprintf("%s (%s) '%s', *%s*, %s, pp. %s.", authors, year, title, journal, volume, pages)
}

// formatConference renders "Authors (Year) 'Title', in *Conference*,
// Location." with the location omitted when absent.
func formatConference(m []string) string {
    authors, year, title, conference, location := expandAuthors(m[1]), m[2], m[3], m[4], m[5]
    if location != "" {
        return fmt.Sprintf("%s (%s) '%s', in *%s*, %s.", authors, year, title, conference, location)
    }
    return fmt.Sprintf("%s (%s) '%s', in *%s*.", authors, year, title, conference)
}

// formatBook renders "Authors (Year) *Title*. Publisher."
func formatBook(m []string) string {
    authors, year, title, publisher := expandAuthors(m[1]), m[2], m[3], m[4]
    return fmt.Sprintf("%s (%s) *%s*. %s.", authors, year, title, publisher)
}

// cleanupEntry is the no-shape fallback: ampersand expansion, double-period
// collapse, and whitespace normalization, with the entry structure otherwise
// preserved.
func cleanupEntry(entry string) string {
    s := strings.ReplaceAll(entry, "&", "and")
    s = periodRunRe.ReplaceAllString(s, ".")
    s = spaceRunRe.ReplaceAllString(s, " ")
    return strings.TrimSpace(s)
}

func expandAuthors(authors string) string {
    return strings.ReplaceAll(authors, "&", "and")
}
