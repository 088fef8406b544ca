package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rohmanhakim/park-finder/internal/places"
	"github.com/rohmanhakim/park-finder/internal/site"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const rule = "----------------------------------"

// StateTitle turns a lowercase state key into its display form,
// e.g. "new mexico" into "New Mexico".
func StateTitle(state string) string {
	return cases.Title(language.English).String(strings.TrimSpace(state))
}

// RenderSites prints the numbered site listing for a state.
func RenderSites(w io.Writer, state string, sites []site.Site) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "List of national sites in %s\n", StateTitle(state))
	fmt.Fprintln(w, rule)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Site", "Phone"})
	for i, s := range sites {
		t.AppendRow(table.Row{fmt.Sprintf("[%d]", i+1), s.Info(), s.Phone()})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderStates prints the state index sorted by name.
func RenderStates(w io.Writer, names []string, index map[string]string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"State", "URL"})
	for _, name := range names {
		t.AppendRow(table.Row{StateTitle(name), index[name]})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderPlaces prints the places found near siteName, one per line.
func RenderPlaces(w io.Writer, siteName string, results []places.PlaceResult) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Places near %s\n", siteName)
	fmt.Fprintln(w, rule)
	for _, p := range results {
		fmt.Fprintf(w, "- %s (%s): %s, %s\n", p.Name, p.Category, p.Address, p.City)
	}
}
