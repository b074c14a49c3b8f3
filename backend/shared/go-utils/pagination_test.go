package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestParsePage(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"abc": 1,
		"0":   1,
		"-3":  1,
		"2.5": 1,
		"1":   1,
		" 4 ": 4,
	}
	for raw, want := range cases {
		if got := ParsePage(raw); got != want {
			t.Fatalf("ParsePage(%q): expected %d, got %d", raw, want, got)
		}
	}
}

func TestPaginateTotalPages(t *testing.T) {
	for n := 0; n <= 30; n++ {
		for p := 1; p <= 10; p++ {
			got := Paginate(seq(n), 1, p)
			want := (n + p - 1) / p
			if got.TotalPages != want {
				t.Fatalf("N=%d P=%d: expected %d pages, got %d", n, p, want, got.TotalPages)
			}
			if got.TotalItems != n {
				t.Fatalf("N=%d: expected TotalItems %d, got %d", n, n, got.TotalItems)
			}
		}
	}
}

func TestPaginateConcatenationReproducesSequence(t *testing.T) {
	for n := 0; n <= 25; n++ {
		for p := 1; p <= 9; p++ {
			items := seq(n)
			first := Paginate(items, 1, p)
			rebuilt := []int{}
			for page := 1; page <= first.TotalPages; page++ {
				rebuilt = append(rebuilt, Paginate(items, page, p).Items...)
			}
			if diff := cmp.Diff(items, rebuilt); diff != "" {
				t.Fatalf("N=%d P=%d: pages do not reproduce input (-want +got):\n%s", n, p, diff)
			}
		}
	}
}

func TestPaginateOutOfRangeIsEmpty(t *testing.T) {
	got := Paginate(seq(10), 5, 9)
	if len(got.Items) != 0 {
		t.Fatalf("expected empty page, got %v", got.Items)
	}
	if got.CurrentPage != 5 || got.TotalPages != 2 {
		t.Fatalf("unexpected summary: %+v", got)
	}

	huge := ParsePage("1024819115206086202")
	got = Paginate(seq(3), huge, 9)
	if len(got.Items) != 0 {
		t.Fatalf("expected empty page for page %d, got %v", huge, got.Items)
	}
	if got.CurrentPage != huge || got.TotalPages != 1 || got.TotalItems != 3 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestPaginateSlicesTheRequestedWindow(t *testing.T) {
	got := Paginate(seq(20), 2, 9)
	if diff := cmp.Diff([]int{9, 10, 11, 12, 13, 14, 15, 16, 17}, got.Items); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
	last := Paginate(seq(20), 3, 9)
	if diff := cmp.Diff([]int{18, 19}, last.Items); diff != "" {
		t.Fatalf("unexpected last page (-want +got):\n%s", diff)
	}
}

func TestPaginateDoesNotAliasInput(t *testing.T) {
	items := seq(5)
	got := Paginate(items, 1, 3)
	got.Items[0] = 99
	if items[0] != 0 {
		t.Fatal("Paginate must copy the window")
	}
}

func TestEmptyPage(t *testing.T) {
	p := EmptyPage[string]()
	if p.CurrentPage != 1 || p.TotalPages != 0 || p.TotalItems != 0 || len(p.Items) != 0 {
		t.Fatalf("unexpected empty page: %+v", p)
	}
}
