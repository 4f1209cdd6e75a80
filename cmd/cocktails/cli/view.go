// ABOUTME: Text table view that receives displayed rows from the result store
// ABOUTME: Renders rows with tabwriter or as JSON once all filters are applied

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"
	"unicode/utf8"

	"cocktails-app-api/api/dto/mappers"
	"cocktails-app-api/core/domain"
	"cocktails-app-api/core/present"
)

const maxCellWidth = 60

// TextView keeps the most recent rows and error pushed by the store
type TextView struct {
	mu      sync.Mutex
	rows    []domain.Cocktail
	message string
	wide    bool
}

// ReplaceRows swaps the rows to render
func (v *TextView) ReplaceRows(rows []domain.Cocktail) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rows = rows
	v.message = ""
}

// ShowError records a failed load
func (v *TextView) ShowError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.message = message
}

// Message returns the last error shown, if any
func (v *TextView) Message() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.message
}

// Render writes the current rows in the given format
func (v *TextView) Render(w io.Writer, format string) error {
	v.mu.Lock()
	rows := append([]domain.Cocktail(nil), v.rows...)
	v.mu.Unlock()

	if format == "json" {
		return writeJSON(w, mappers.ToRowResponses(rows))
	}
	return writeRows(w, present.ToRows(rows), v.wide)
}

func writeRows(w io.Writer, rows []present.Row, wide bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "ID\tNAME\tCATEGORY\tALCOHOLIC\tINGREDIENTS"
	if wide {
		header += "\tGLASS\tINSTRUCTIONS"
	}
	fmt.Fprintln(tw, header)

	for _, r := range rows {
		cells := []string{r.ID, r.Name, r.Category, r.Alcoholic, truncate(r.Ingredients, maxCellWidth)}
		if wide {
			cells = append(cells, r.Glass, truncate(r.Instructions, maxCellWidth))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d drinks\n", len(rows))
	return err
}

func writeNames(w io.Writer, title string, names []string) error {
	if _, err := fmt.Fprintf(w, "%s (%d)\n", title, len(names)); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "  %s\n", name); err != nil {
			return err
		}
	}
	return nil
}

func writeDetail(w io.Writer, c *domain.Cocktail) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", c.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", c.Name)
	fmt.Fprintf(tw, "Category:\t%s\n", c.Category)
	fmt.Fprintf(tw, "Alcoholic:\t%s\n", c.Alcoholic)
	fmt.Fprintf(tw, "Glass:\t%s\n", c.Glass)
	fmt.Fprintln(tw, "Ingredients:\t")
	for i, ingredient := range c.Ingredients {
		if ingredient == "" {
			continue
		}
		fmt.Fprintf(tw, "\t%s\t%s\n", ingredient, strings.TrimSpace(c.Measures[i]))
	}
	fmt.Fprintf(tw, "Instructions:\t%s\n", c.Instructions)
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
