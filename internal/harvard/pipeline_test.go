package harvard

import (
    "sync"
    "testing"
)

func TestProcess_EmptyInput(t *testing.T) {
    if got := Process(""); got != "" {
        t.Fatalf("expected empty output, got %q", got)
    }
}

func TestProcess_FullDocument(t *testing.T) {
    in := "A study (Smith & Jones 2020) cites https://www.example.com/page here.\n\n" +
        "References\n" +
        "Smith, J. (2020). A Title. Journal, 5(2), 10-20.\n" +
        "Mystery document & notes..  from archive\n\n" +
        "Conclusion"
    want := "A study (Smith and Jones, 2020) cites (example.com, 2024) here.\n\n" +
        "References\n" +
        "Smith, J (2020) 'A Title', *Journal*, 5(2), pp. 10-20.\n" +
        "Mystery document and notes. from archive\n\n" +
        "Conclusion"
    if got := Process(in); got != want {
        t.Fatalf("got %q, want %q", got, want)
    }
}

// Each invocation carries its own fallback counter, so concurrent runs over
// the same input must all produce the same output.
func TestProcess_Reentrant(t *testing.T) {
    in := "Links http://%zz and http://%yy in text.\n"
    want := Process(in)

    var wg sync.WaitGroup
    results := make([]string, 8)
    for i := range results {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            results[i] = Process(in)
        }(i)
    }
    wg.Wait()
    for i, got := range results {
        if got != want {
            t.Fatalf("run %d: got %q, want %q", i, got, want)
        }
    }
}

func TestUnclassifiedEntries(t *testing.T) {
    in := "References\n" +
        "Smith, J. (2020). A Title. Journal, 5(2), 10-20.\n" +
        "Half-remembered pamphlet without a year\n" +
        "Brown, T. (2018). Deep Learning Basics. MIT Press."
    got := UnclassifiedEntries(in)
    if len(got) != 1 {
        t.Fatalf("expected one unclassified entry, got %v", got)
    }
    if got[0] != "Half-remembered pamphlet without a year" {
        t.Fatalf("unexpected entry %q", got[0])
    }
}

func TestUnclassifiedEntries_NoHeading(t *testing.T) {
    if got := UnclassifiedEntries("Plain text with no reference section."); got != nil {
        t.Fatalf("expected nil, got %v", got)
    }
}
