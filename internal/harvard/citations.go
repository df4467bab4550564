package harvard

import (
    "regexp"
    "strings"
)

// inTextRe matches a parenthetical author-year citation such as
// "(Smith & Jones 2020)" or "(Smith 2020a)". The author segment is any run of
// characters excluding ')', so nested parentheses stop the match at the first
// closing paren.
var inTextRe = regexp.MustCompile(`\(([^)]+?)\s+(\d{4}[a-z]?)\)`)

// FixInTextCitations rewrites parenthetical citations to the Harvard
// "(Author, Year)" form, expanding '&' to 'and' in the author segment. A
// citation whose author segment already ends with a comma is left unchanged,
// so running the fixer twice is a no-op.
func FixInTextCitations(text string) string {
    return inTextRe.ReplaceAllStringFunc(text, func(match string) string {
        m := inTextRe.FindStringSubmatch(match)
        if m == nil {
            return match
        }
        authors := m[1]
        year := m[2]
        if strings.HasSuffix(strings.TrimSpace(authors), ",") {
            return match
        }
        authors = strings.ReplaceAll(authors, "&", "and")
        return "(" + authors + ", " + year + ")"
    })
}
