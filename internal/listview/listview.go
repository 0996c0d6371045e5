// Package listview computes the display view of an inventory collection:
// stable sort order, derived stock status, a paginated window and the
// transient per-row edit state. It never talks to the network; mutations are
// emitted upward by the caller.
package listview

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hamzzakaya/nano-envanter/internal/domain"
)

const (
	// LowStockThreshold is the count at or below which a product with stock
	// is flagged for attention.
	LowStockThreshold = 5

	DefaultItemsPerPage = 10
)

type Field string

const (
	FieldName  Field = "name"
	FieldCode  Field = "code"
	FieldCount Field = "count"
)

type Status string

const (
	StatusInStock    Status = "in stock"
	StatusLowStock   Status = "low stock"
	StatusOutOfStock Status = "out of stock"
)

// StatusOf derives the stock status for a count.
func StatusOf(count int) Status {
	switch {
	case count == 0:
		return StatusOutOfStock
	case count <= LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Row is a product paired with its derived status.
type Row struct {
	Product domain.Product
	Status  Status
}

// Page is the rendered window over the collection plus the aggregate values
// computed over the full, unpaginated collection.
type Page struct {
	Rows          []Row
	Number        int
	TotalPages    int
	TotalItems    int
	TotalUnits    int
	LowStockItems int
}

// View holds the presentation state between renders.
type View struct {
	field      Field
	descending bool
	perPage    int
	page       int
	totalPages int
	rowEdit    string
	countEdit  string
	collator   *collate.Collator
}

func New() *View {
	return &View{
		field:      FieldName,
		perPage:    DefaultItemsPerPage,
		page:       1,
		totalPages: 1,
		collator:   collate.New(language.Und),
	}
}

// SortBy selects the sort field. Re-selecting the current field flips the
// direction; switching fields resets to ascending.
func (v *View) SortBy(f Field) {
	if f == v.field {
		v.descending = !v.descending
		return
	}
	v.field = f
	v.descending = false
}

// Sort reports the current sort field and whether order is descending.
func (v *View) Sort() (Field, bool) {
	return v.field, v.descending
}

// SetItemsPerPage changes the page size and resets to the first page.
func (v *View) SetItemsPerPage(n int) {
	if n < 1 {
		n = 1
	}
	v.perPage = n
	v.page = 1
}

func (v *View) ItemsPerPage() int {
	return v.perPage
}

// GoToPage navigates to page n, clamped to [1, totalPages] as of the last
// render.
func (v *View) GoToPage(n int) {
	if n < 1 {
		n = 1
	}
	if n > v.totalPages {
		n = v.totalPages
	}
	v.page = n
}

func (v *View) NextPage() { v.GoToPage(v.page + 1) }
func (v *View) PrevPage() { v.GoToPage(v.page - 1) }

func (v *View) PageNumber() int {
	return v.page
}

// Render sorts the collection, derives statuses and slices out the current
// page. The input slice is not mutated.
func (v *View) Render(products []domain.Product) Page {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		if v.descending {
			i, j = j, i
		}
		return v.less(sorted[i], sorted[j])
	})

	v.totalPages = totalPages(len(sorted), v.perPage)
	if v.page > v.totalPages {
		v.page = v.totalPages
	}

	start := (v.page - 1) * v.perPage
	end := start + v.perPage
	if start > len(sorted) {
		start = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}

	rows := make([]Row, 0, end-start)
	for _, p := range sorted[start:end] {
		rows = append(rows, Row{Product: p, Status: StatusOf(p.Count)})
	}

	totalUnits, lowStock := 0, 0
	for _, p := range products {
		totalUnits += p.Count
		if p.Count <= LowStockThreshold {
			lowStock++
		}
	}

	return Page{
		Rows:          rows,
		Number:        v.page,
		TotalPages:    v.totalPages,
		TotalItems:    len(products),
		TotalUnits:    totalUnits,
		LowStockItems: lowStock,
	}
}

func (v *View) less(a, b domain.Product) bool {
	switch v.field {
	case FieldCode:
		return v.collator.CompareString(a.Code, b.Code) < 0
	case FieldCount:
		return a.Count < b.Count
	default:
		return v.collator.CompareString(a.Name, b.Name) < 0
	}
}

func totalPages(items, perPage int) int {
	if items == 0 {
		return 1
	}
	return (items + perPage - 1) / perPage
}

// BeginRowEdit puts a product into full-row edit mode, displacing any other
// row edit and clearing an inline count edit on the same product.
func (v *View) BeginRowEdit(id string) {
	if v.countEdit == id {
		v.countEdit = ""
	}
	v.rowEdit = id
}

// CommitRowEdit clears the row edit state and returns the id that was being
// edited, if any.
func (v *View) CommitRowEdit() (string, bool) {
	id := v.rowEdit
	v.rowEdit = ""
	return id, id != ""
}

func (v *View) CancelRowEdit() {
	v.rowEdit = ""
}

// RowEdit reports the product currently in full-row edit mode.
func (v *View) RowEdit() (string, bool) {
	return v.rowEdit, v.rowEdit != ""
}

// BeginCountEdit puts a product into inline count edit mode, displacing any
// other count edit and clearing a row edit on the same product.
func (v *View) BeginCountEdit(id string) {
	if v.rowEdit == id {
		v.rowEdit = ""
	}
	v.countEdit = id
}

// CommitCountEdit clears the count edit state and returns the id that was
// being edited, if any. Both the blur and the confirm-key paths land here.
func (v *View) CommitCountEdit() (string, bool) {
	id := v.countEdit
	v.countEdit = ""
	return id, id != ""
}

// CancelCountEdit discards the pending count edit.
func (v *View) CancelCountEdit() {
	v.countEdit = ""
}

// CountEdit reports the product currently in inline count edit mode.
func (v *View) CountEdit() (string, bool) {
	return v.countEdit, v.countEdit != ""
}
