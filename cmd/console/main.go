// Console renderer for the inventory: fetches the collection through the API
// client and prints one sorted, paginated page with stock status and totals.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/hamzzakaya/nano-envanter/internal/client"
	"github.com/hamzzakaya/nano-envanter/internal/listview"
	"github.com/hamzzakaya/nano-envanter/internal/session"
)

func main() {
	var (
		apiURL  string
		sortKey string
		desc    bool
		page    int
		perPage int
	)
	flag.StringVar(&apiURL, "api", "http://localhost:8080", "Base URL of the inventory API")
	flag.StringVar(&sortKey, "sort", "name", "Sort field: name, code or count")
	flag.BoolVar(&desc, "desc", false, "Sort descending")
	flag.IntVar(&page, "page", 1, "Page to display (1-indexed)")
	flag.IntVar(&perPage, "per-page", listview.DefaultItemsPerPage, "Items per page")
	flag.Parse()

	field := listview.Field(sortKey)
	switch field {
	case listview.FieldName, listview.FieldCode, listview.FieldCount:
	default:
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	s := session.New(client.New(apiURL))
	s.Dispatch(ctx, session.ReloadRequested{})
	if msg := s.Err(); msg != "" {
		log.Fatalf("load products: %s", msg)
	}

	view := listview.New()
	if current, _ := view.Sort(); current != field {
		view.SortBy(field)
	}
	if desc {
		view.SortBy(field)
	}
	view.SetItemsPerPage(perPage)
	view.Render(s.Products())
	view.GoToPage(page)

	rendered := view.Render(s.Products())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCODE\tCOUNT\tSTATUS\tUPDATED")
	for _, row := range rendered.Rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			row.Product.Name, row.Product.Code, row.Product.Count, row.Status,
			row.Product.UpdatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()

	fmt.Printf("\npage %d/%d, %d items, %d units in stock, %d low on stock\n",
		rendered.Number, rendered.TotalPages, rendered.TotalItems, rendered.TotalUnits, rendered.LowStockItems)
}
