package listview

import (
	"testing"

	"github.com/hamzzakaya/nano-envanter/internal/domain"
)

func inventory(counts ...int) []domain.Product {
	products := make([]domain.Product, 0, len(counts))
	for i, c := range counts {
		products = append(products, domain.Product{
			ID:    string(rune('a' + i)),
			Name:  "Item " + string(rune('A'+i)),
			Code:  "C-" + string(rune('A'+i)),
			Count: c,
		})
	}
	return products
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		count int
		want  Status
	}{
		{0, StatusOutOfStock},
		{1, StatusLowStock},
		{5, StatusLowStock},
		{6, StatusInStock},
		{100, StatusInStock},
	}
	for _, tc := range cases {
		if got := StatusOf(tc.count); got != tc.want {
			t.Fatalf("StatusOf(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestSortBy_TogglesAndResets(t *testing.T) {
	v := New()
	if f, desc := v.Sort(); f != FieldName || desc {
		t.Fatalf("expected default name ascending, got %v desc=%v", f, desc)
	}
	v.SortBy(FieldName)
	if _, desc := v.Sort(); !desc {
		t.Fatal("expected re-select to flip to descending")
	}
	v.SortBy(FieldCount)
	if f, desc := v.Sort(); f != FieldCount || desc {
		t.Fatalf("expected new field to reset ascending, got %v desc=%v", f, desc)
	}
}

func TestRender_SortsByField(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Zebra", Code: "B-2", Count: 3},
		{ID: "2", Name: "apple", Code: "A-1", Count: 9},
		{ID: "3", Name: "Mango", Code: "C-3", Count: 1},
	}

	v := New()
	page := v.Render(products)
	if page.Rows[0].Product.Name != "apple" || page.Rows[2].Product.Name != "Zebra" {
		t.Fatalf("expected case-insensitive lexical name order, got %+v", page.Rows)
	}

	v.SortBy(FieldCount)
	page = v.Render(products)
	if page.Rows[0].Product.Count != 1 || page.Rows[2].Product.Count != 9 {
		t.Fatalf("expected numeric count order, got %+v", page.Rows)
	}

	v.SortBy(FieldCount)
	page = v.Render(products)
	if page.Rows[0].Product.Count != 9 {
		t.Fatalf("expected descending count after toggle, got %+v", page.Rows)
	}
}

func TestRender_SortIsStable(t *testing.T) {
	products := []domain.Product{
		{ID: "first", Name: "Same", Count: 1},
		{ID: "second", Name: "Same", Count: 2},
		{ID: "third", Name: "Same", Count: 3},
	}
	v := New()
	page := v.Render(products)
	if page.Rows[0].Product.ID != "first" || page.Rows[1].Product.ID != "second" || page.Rows[2].Product.ID != "third" {
		t.Fatalf("expected insertion order for equal keys, got %+v", page.Rows)
	}
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Zebra"},
		{ID: "2", Name: "Apple"},
	}
	v := New()
	v.Render(products)
	if products[0].ID != "1" {
		t.Fatalf("input slice reordered: %+v", products)
	}
}

func TestPagination_Windows(t *testing.T) {
	products := inventory(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23)
	v := New()

	page := v.Render(products)
	if page.TotalPages != 3 || page.Number != 1 || len(page.Rows) != 10 {
		t.Fatalf("unexpected first page %+v", page)
	}

	v.GoToPage(3)
	page = v.Render(products)
	if page.Number != 3 || len(page.Rows) != 3 {
		t.Fatalf("expected remainder page of 3, got %+v", page)
	}

	v.NextPage()
	page = v.Render(products)
	if page.Number != 3 {
		t.Fatalf("expected clamp at last page, got %d", page.Number)
	}

	v.GoToPage(-5)
	page = v.Render(products)
	if page.Number != 1 {
		t.Fatalf("expected clamp at first page, got %d", page.Number)
	}
}

func TestPagination_PerPageChangeResetsPage(t *testing.T) {
	products := inventory(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	v := New()
	v.Render(products)
	v.GoToPage(2)

	v.SetItemsPerPage(5)
	page := v.Render(products)
	if page.Number != 1 || page.TotalPages != 3 || len(page.Rows) != 5 {
		t.Fatalf("expected reset to page 1 of 3, got %+v", page)
	}
}

func TestPagination_ShrinkingCollectionClampsPage(t *testing.T) {
	v := New()
	v.Render(inventory(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12))
	v.GoToPage(2)

	page := v.Render(inventory(1, 2, 3))
	if page.Number != 1 || page.TotalPages != 1 || len(page.Rows) != 3 {
		t.Fatalf("expected clamp back to page 1, got %+v", page)
	}
}

func TestPagination_EmptyCollection(t *testing.T) {
	v := New()
	page := v.Render(nil)
	if page.TotalPages != 1 || page.Number != 1 || len(page.Rows) != 0 {
		t.Fatalf("unexpected empty page %+v", page)
	}
}

func TestAggregates_IgnorePageAndSort(t *testing.T) {
	products := inventory(0, 2, 5, 6, 40, 7, 1, 9, 8, 10, 11, 3)
	v := New()
	v.SetItemsPerPage(4)
	v.SortBy(FieldCount)
	v.GoToPage(2)

	page := v.Render(products)
	if page.TotalUnits != 102 {
		t.Fatalf("expected 102 total units, got %d", page.TotalUnits)
	}
	// counts 0, 1, 2, 3, 5 are at or below the threshold
	if page.LowStockItems != 5 {
		t.Fatalf("expected 5 low-stock items, got %d", page.LowStockItems)
	}
	if page.TotalItems != 12 {
		t.Fatalf("expected 12 items, got %d", page.TotalItems)
	}
}

func TestEditState_SingleRowEdit(t *testing.T) {
	v := New()
	v.BeginRowEdit("a")
	v.BeginRowEdit("b")
	if id, ok := v.RowEdit(); !ok || id != "b" {
		t.Fatalf("expected row edit displaced to b, got %q ok=%v", id, ok)
	}
	if id, ok := v.CommitRowEdit(); !ok || id != "b" {
		t.Fatalf("expected commit of b, got %q ok=%v", id, ok)
	}
	if _, ok := v.RowEdit(); ok {
		t.Fatal("expected row edit cleared after commit")
	}
}

func TestEditState_CountEditCommitAndCancel(t *testing.T) {
	v := New()
	v.BeginCountEdit("a")
	if id, ok := v.CountEdit(); !ok || id != "a" {
		t.Fatalf("expected count edit on a, got %q ok=%v", id, ok)
	}
	if id, ok := v.CommitCountEdit(); !ok || id != "a" {
		t.Fatalf("expected commit of a, got %q ok=%v", id, ok)
	}

	v.BeginCountEdit("b")
	v.CancelCountEdit()
	if _, ok := v.CountEdit(); ok {
		t.Fatal("expected count edit discarded after cancel")
	}
	if id, ok := v.CommitCountEdit(); ok || id != "" {
		t.Fatalf("expected nothing to commit after cancel, got %q", id)
	}
}

func TestEditState_MutuallyExclusivePerProduct(t *testing.T) {
	v := New()
	v.BeginRowEdit("a")
	v.BeginCountEdit("a")
	if _, ok := v.RowEdit(); ok {
		t.Fatal("expected row edit on a cleared by count edit on a")
	}

	v.BeginRowEdit("b")
	if id, ok := v.CountEdit(); !ok || id != "a" {
		t.Fatalf("expected count edit on a untouched by row edit on b, got %q ok=%v", id, ok)
	}

	v.BeginRowEdit("a")
	if _, ok := v.CountEdit(); ok {
		t.Fatal("expected count edit on a cleared by row edit on a")
	}
}
