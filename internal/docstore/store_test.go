package docstore

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestIngest(t *testing.T) {
	store := NewStore(nil)

	if err := store.Ingest("", true); err == nil {
		t.Error("expected error for empty text")
	}
	if all, user := store.Counts(); all != 0 || user != 0 {
		t.Errorf("counts after rejected ingest: got %d/%d, want 0/0", all, user)
	}

	if err := store.Ingest("system document", false); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if all, user := store.Counts(); all != 1 || user != 0 {
		t.Errorf("counts after system ingest: got %d/%d, want 1/0", all, user)
	}

	if err := store.Ingest("user document", true); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if all, user := store.Counts(); all != 2 || user != 1 {
		t.Errorf("counts after user ingest: got %d/%d, want 2/1", all, user)
	}
}

func TestSearch_EmptyStore(t *testing.T) {
	store := NewStore(nil)
	if got := store.Search("anything"); got != "" {
		t.Errorf("Search on empty store: got %q, want empty", got)
	}
}

func TestSearch_SystemDocumentsNotSearched(t *testing.T) {
	store := NewStore(nil)
	if err := store.Ingest("Asthma causes wheezing and coughing.", false); err != nil {
		t.Fatal(err)
	}
	if got := store.Search("wheezing"); got != "" {
		t.Errorf("system-seeded content should not be searchable: got %q", got)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	store := NewStore(nil)
	if err := store.Ingest("Patients with asthma often experience wheezing.", true); err != nil {
		t.Fatal(err)
	}
	if got := store.Search("cardiology"); got != "" {
		t.Errorf("Search with no matching word: got %q, want empty", got)
	}
}

func TestSearch_MatchingSentences(t *testing.T) {
	store := NewStore(nil)
	text := "Patients with asthma often experience wheezing. Inhalers relieve symptoms quickly. Unrelated sentence here."
	if err := store.Ingest(text, true); err != nil {
		t.Fatal(err)
	}

	got := store.Search("wheezing inhalers")
	want := "Patients with asthma often experience wheezing. Inhalers relieve symptoms quickly"
	if got != want {
		t.Errorf("Search: got %q, want %q", got, want)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	store := NewStore(nil)
	if err := store.Ingest("Migraine headaches respond to triptans.", true); err != nil {
		t.Fatal(err)
	}
	got := store.Search("MIGRAINE")
	if !strings.Contains(got, "Migraine headaches respond to triptans") {
		t.Errorf("case-insensitive search: got %q", got)
	}
}

func TestSearch_PunctuationTrimmedFromQuery(t *testing.T) {
	store := NewStore(nil)
	if err := store.Ingest("Patients with asthma often experience wheezing and shortness of breath.", true); err != nil {
		t.Fatal(err)
	}
	got := store.Search("What causes wheezing?")
	if !strings.Contains(got, "wheezing and shortness of breath") {
		t.Errorf("trailing punctuation should not prevent a match: got %q", got)
	}
}

func TestSearch_CapsAtFivePassages(t *testing.T) {
	store := NewStore(nil)
	// Two documents, each with four matching sentences.
	for d := 0; d < 2; d++ {
		var sentences []string
		for i := 0; i < 4; i++ {
			sentences = append(sentences, fmt.Sprintf("Fever note %d-%d", d, i))
		}
		if err := store.Ingest(strings.Join(sentences, ". ")+".", true); err != nil {
			t.Fatal(err)
		}
	}

	got := store.Search("fever")
	parts := strings.Split(got, ". ")
	if len(parts) != 5 {
		t.Errorf("passage count: got %d, want 5 (%q)", len(parts), got)
	}
	// Insertion order, first match: all of document 0 before document 1.
	if parts[0] != "Fever note 0-0" || parts[4] != "Fever note 1-0" {
		t.Errorf("unexpected passage order: %v", parts)
	}
}

func TestSearch_InsertionOrder(t *testing.T) {
	store := NewStore(nil)
	if err := store.Ingest("Zinc supplements may shorten colds.", true); err != nil {
		t.Fatal(err)
	}
	if err := store.Ingest("Vitamin C does not prevent colds.", true); err != nil {
		t.Fatal(err)
	}

	got := store.Search("colds")
	wantFirst := "Zinc supplements may shorten colds"
	if !strings.HasPrefix(got, wantFirst) {
		t.Errorf("results not in insertion order: got %q", got)
	}
}

func TestConcurrentIngestAndSearch(t *testing.T) {
	store := NewStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Ingest(fmt.Sprintf("Concurrent note %d about fever.", i), true)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.Search("fever")
		}()
	}
	wg.Wait()
	if all, user := store.Counts(); all != 50 || user != 50 {
		t.Errorf("counts after concurrent ingests: got %d/%d, want 50/50", all, user)
	}
}
