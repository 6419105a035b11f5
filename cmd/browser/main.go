package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/fangearhq/fangear-api/internal/browser"
)

// Headless product browser: loads the catalog from a running API
// server, applies the four client-side filters, and prints the result.
func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:8080", "API base URL")
		typeFilter = flag.String("type", "", "filter by product type (substring)")
		priceRange = flag.String("price", "", `filter by price bucket: "0-50", "51-100", "101-150", "151-200", "200+"`)
		team       = flag.String("team", "", "filter by team (substring)")
		sport      = flag.String("sport", "", "filter by sport (substring)")
		addID      = flag.Int64("add", 0, "add this product id to the cart after loading")
	)
	flag.Parse()

	b := browser.New(browser.NewClient(*baseURL), nil)
	b.OnCartCount = func(n int) {
		fmt.Printf("cart now holds %d item(s)\n", n)
	}

	ctx := context.Background()
	if err := b.Load(ctx); err != nil {
		log.Fatalf("loading catalog: %v", err)
	}

	b.SetTypeFilter(*typeFilter)
	b.SetPriceRangeFilter(*priceRange)
	b.SetTeamFilter(*team)
	b.SetSportFilter(*sport)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tBUCKET\tTYPE\tTEAM\tSPORT")
	for _, p := range b.Visible() {
		fmt.Fprintf(w, "%d\t%s\t$%.2f\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Price, browser.PriceBucket(p.Price), p.ProductType, p.Team, p.Sport)
	}
	_ = w.Flush()

	if *addID != 0 {
		if err := b.AddToCart(ctx, *addID); err != nil {
			log.Printf("add to cart: %v", err)
		}
		fmt.Println(b.Message())
	}
}
