package harvard

import (
    "fmt"
    "net/url"
    "regexp"
    "strings"
)

// urlRe matches an HTTP/HTTPS URL greedily up to the next whitespace, so
// trailing punctuation glued to a URL is part of the match.
var urlRe = regexp.MustCompile(`https?://\S+`)

// urlCitationYear is the literal year used for URL-derived citations. It is
// not derived from the source.
const urlCitationYear = "2024"

// ReplaceURLs substitutes every bare URL with a parenthetical citation keyed
// by its hostname, with a leading "www." stripped. URLs whose hostname cannot
// be parsed are keyed "Source N" with N counting up from 1 across the whole
// pass. The counter is local to the call, so concurrent invocations never
// share state.
func ReplaceURLs(text string) string {
    fallback := 0
    return urlRe.ReplaceAllStringFunc(text, func(raw string) string {
        u, err := url.Parse(raw)
        if err != nil || u.Hostname() == "" {
            fallback++
            return fmt.Sprintf("(Source %d, %s)", fallback, urlCitationYear)
        }
        host := strings.TrimPrefix(u.Hostname(), "www.")
        return fmt.Sprintf("(%s, %s)", host, urlCitationYear)
    })
}
