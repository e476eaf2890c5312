package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"estate-search/internal/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const missing = "n/a"

// TextRenderer writes search results for a terminal
type TextRenderer struct {
	currency string
	printer  *message.Printer
}

// NewTextRenderer creates a renderer that prefixes prices with currency
func NewTextRenderer(currency string) *TextRenderer {
	return &TextRenderer{
		currency: currency,
		printer:  message.NewPrinter(language.English),
	}
}

// Render writes the detected filters, the warning if any, and every hit
func (r *TextRenderer) Render(w io.Writer, resp *model.SearchResponse) error {
	filters, err := json.Marshal(resp.Filters)
	if err != nil {
		return fmt.Errorf("marshal filters: %w", err)
	}

	if resp.Warning != "" {
		fmt.Fprintf(w, "⚠️  %s\n", resp.Warning)
	}
	fmt.Fprintf(w, "🔎 Detected Filters: %s\n\n", filters)
	fmt.Fprintln(w, "📄 Matching Results")

	if len(resp.Results) == 0 {
		_, err := fmt.Fprintln(w, "No matching listings found.")
		return err
	}

	for _, hit := range resp.Results {
		if err := r.writeListing(w, hit.Listing); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%d listing(s) in %dms\n", resp.Total, resp.Took)
	return err
}

func (r *TextRenderer) writeListing(w io.Writer, l model.Listing) error {
	_, err := fmt.Fprintf(w,
		"%s\n  📍 Location: %s, %s\n  🛏 Bedrooms: %s | 🛁 Bathrooms: %s\n  💰 Price: %s\n---\n",
		orMissing(model.StringValue(l.Title)),
		orMissing(model.StringValue(l.Location)),
		orMissing(model.StringValue(l.City)),
		intOrMissing(l.Bedrooms),
		intOrMissing(l.Bathrooms),
		r.Price(l.Price),
	)
	return err
}

// Price formats an amount with digit grouping, e.g. ₹5,500,000
func (r *TextRenderer) Price(p *int64) string {
	if p == nil {
		return missing
	}
	return r.currency + r.printer.Sprintf("%d", *p)
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}

func intOrMissing(n *int) string {
	if n == nil {
		return missing
	}
	return strconv.Itoa(*n)
}
