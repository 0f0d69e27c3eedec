package controller

import (
	"slices"
	"strings"
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"pgregory.net/rapid"

	"github.com/idilsaglam/listkeeper/internal/model"
	"github.com/idilsaglam/listkeeper/internal/store"
)

func shortTextGenerator() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		pad := rapid.StringMatching(`[ \t]{0,3}`).Draw(t, "pad")
		core := rapid.StringMatching(`[a-zA-Z0-9çéö]{0,4}`).Draw(t, "core")
		return pad + core + pad
	})
}

func validTextGenerator() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		pad := rapid.StringMatching(`[ \t]{0,3}`).Draw(t, "pad")
		core := rapid.StringMatching(`[a-zA-Z0-9çéö][a-zA-Z0-9çéö ]{3,30}[a-zA-Z0-9çéö]`).Draw(t, "core")
		return pad + core + pad
	})
}

func seededController(t *rapid.T) *Controller {
	texts := rapid.SliceOfN(validTextGenerator(), 0, 12).Draw(t, "seed")
	items := make([]model.Item, 0, len(texts))
	for i, s := range texts {
		items = append(items, model.Item{ID: int64(i + 1), Text: strings.TrimSpace(s)})
	}
	st := store.New(store.NewMemory(), "", nil)
	if err := st.Save(items); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return New(st)
}

func testAdd_RejectsShort_Properties(t *rapid.T) {
	c := seededController(t)
	before := c.Items()
	raw := shortTextGenerator().Draw(t, "raw")

	_, err := c.Add(raw)
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("Add(%q) = %v, want *ValidationError", raw, err)
	}
	if !slices.Equal(before, c.Items()) {
		t.Fatalf("list changed after rejected add")
	}
}

func TestAdd_RejectsShort_Properties(t *testing.T) {
	rapid.Check(t, testAdd_RejectsShort_Properties)
}

func testAdd_AppendsValid_Properties(t *rapid.T) {
	c := seededController(t)
	before := c.Items()
	raw := validTextGenerator().Draw(t, "raw")

	if _, err := c.Add(raw); err != nil {
		t.Fatalf("Add(%q): %v", raw, err)
	}
	after := c.Items()
	if len(after) != len(before)+1 {
		t.Fatalf("length %d, want %d", len(after), len(before)+1)
	}
	if got := after[len(after)-1].Text; got != strings.TrimSpace(raw) {
		t.Fatalf("appended text %q, want %q", got, strings.TrimSpace(raw))
	}
	if !slices.Equal(before, after[:len(before)]) {
		t.Fatalf("existing items changed")
	}
}

func TestAdd_AppendsValid_Properties(t *testing.T) {
	rapid.Check(t, testAdd_AppendsValid_Properties)
}

func testSort_OrderedAndIdempotent_Properties(t *rapid.T) {
	c := seededController(t)

	if err := c.Sort(); err != nil {
		t.Fatalf("sort: %v", err)
	}
	once := c.Items()
	col := collate.New(language.Und)
	for i := 1; i < len(once); i++ {
		if col.CompareString(once[i-1].Text, once[i].Text) > 0 {
			t.Fatalf("out of order at %d: %q > %q", i, once[i-1].Text, once[i].Text)
		}
	}
	if err := c.Sort(); err != nil {
		t.Fatalf("sort: %v", err)
	}
	if !slices.Equal(once, c.Items()) {
		t.Fatalf("second sort changed the list")
	}
}

func TestSort_OrderedAndIdempotent_Properties(t *testing.T) {
	rapid.Check(t, testSort_OrderedAndIdempotent_Properties)
}

func testReorder_SamePositionIsNoop_Properties(t *rapid.T) {
	c := seededController(t)
	if c.Len() == 0 {
		return
	}
	before := c.Items()
	i := rapid.IntRange(0, c.Len()-1).Draw(t, "i")

	moved, err := c.Reorder(i, i)
	if err != nil || moved {
		t.Fatalf("Reorder(%d, %d) = %v, %v; want false, nil", i, i, moved, err)
	}
	if !slices.Equal(before, c.Items()) {
		t.Fatalf("list changed")
	}
}

func TestReorder_SamePositionIsNoop_Properties(t *testing.T) {
	rapid.Check(t, testReorder_SamePositionIsNoop_Properties)
}

func testReorder_IsRelocation_Properties(t *rapid.T) {
	c := seededController(t)
	if c.Len() == 0 {
		return
	}
	before := c.Items()
	from := rapid.IntRange(0, c.Len()-1).Draw(t, "from")
	to := rapid.IntRange(0, c.Len()-1).Draw(t, "to")

	if _, err := c.Reorder(from, to); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	after := c.Items()
	if after[to] != before[from] {
		t.Fatalf("item %+v not at %d", before[from], to)
	}
	rest := slices.Delete(slices.Clone(before), from, from+1)
	got := slices.Delete(slices.Clone(after), to, to+1)
	if !slices.Equal(rest, got) {
		t.Fatalf("other items changed order")
	}
}

func TestReorder_IsRelocation_Properties(t *testing.T) {
	rapid.Check(t, testReorder_IsRelocation_Properties)
}
