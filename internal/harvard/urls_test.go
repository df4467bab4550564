package harvard

import (
    "strings"
    "testing"
)

func TestReplaceURLs_HostnameCitation(t *testing.T) {
    in := "Visit https://www.example.com/page for info."
    want := "Visit (example.com, 2024) for info."
    if got := ReplaceURLs(in); got != want {
        t.Fatalf("got %q, want %q", got, want)
    }
}

func TestReplaceURLs_IdentityWithoutURLs(t *testing.T) {
    in := "No links here, just text (Smith, 2020) and more text."
    if got := ReplaceURLs(in); got != in {
        t.Fatalf("expected identity, got %q", got)
    }
}

func TestReplaceURLs_SharedHostnameNeverFallsBack(t *testing.T) {
    in := "One https://example.com/a two http://example.com/b three https://www.example.com/c done"
    got := ReplaceURLs(in)
    if strings.Contains(got, "Source") {
        t.Fatalf("fallback label emitted for well-formed URLs: %q", got)
    }
    if strings.Count(got, "(example.com, 2024)") != 3 {
        t.Fatalf("expected three hostname citations, got %q", got)
    }
}

func TestReplaceURLs_FallbackSequence(t *testing.T) {
    in := "Bad http://%zz one and http://%yy two."
    want := "Bad (Source 1, 2024) one and (Source 2, 2024) two."
    if got := ReplaceURLs(in); got != want {
        t.Fatalf("got %q, want %q", got, want)
    }
}

func TestReplaceURLs_CounterResetsPerInvocation(t *testing.T) {
    in := "Link http://%zz here."
    want := "Link (Source 1, 2024) here."
    for i := 0; i < 2; i++ {
        if got := ReplaceURLs(in); got != want {
            t.Fatalf("pass %d: got %q, want %q", i+1, got, want)
        }
    }
}

func TestReplaceURLs_MixedHostnameAndFallback(t *testing.T) {
    in := "See https://docs.example.org/x then http://%zz then https://other.net/y."
    want := "See (docs.example.org, 2024) then (Source 1, 2024) then (other.net, 2024)"
    got := ReplaceURLs(in)
    if !strings.HasPrefix(got, want) {
        t.Fatalf("got %q, want prefix %q", got, want)
    }
}
