package app

import (
    "crypto/sha256"
    "encoding/hex"
    "path/filepath"
    "strings"
)

// outputName derives a stable PDF filename for an uploaded document: a slug
// of the original name plus a short content-independent hash of it, so two
// uploads named alike do not collide on anything but identical names.
func outputName(original string) string {
    base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
    slug := slugify(base)
    if slug == "" {
        slug = "document"
    }
    h := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(original))))
    return slug + "-" + hex.EncodeToString(h[:])[:12] + ".pdf"
}

// slugify lowercases and keeps letters and digits, collapsing everything else
// into single hyphens.
func slugify(s string) string {
    var b strings.Builder
    lastHyphen := true
    for _, r := range strings.ToLower(s) {
        switch {
        case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
            b.WriteRune(r)
            lastHyphen = false
        default:
            if !lastHyphen {
                b.WriteByte('-')
                lastHyphen = true
            }
        }
    }
    return strings.Trim(b.String(), "-")
}
