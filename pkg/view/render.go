package view

import (
	"embed"
	"html/template"
	"io"
	"strconv"

	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))

var funcs = template.FuncMap{
	"str": func(s *string) string {
		return deref(s)
	},
	"dict": func(p Page, i Item) controls {
		return controls{Page: p, Item: i}
	},
	"rating": func(r *int32) string {
		if r == nil {
			return "-"
		}
		return strconv.Itoa(int(*r))
	},
}

// Status is the media server state of a title, not stored with it
type Status struct {
	Available bool
	Requested bool
}

type controls struct {
	Page Page
	Item Item
}

type Item struct {
	*model.Title
	Status
}

// Page is everything the watchlist page renders
type Page struct {
	Kind       storage.Kind
	Heading    string
	Items      []Item
	Total      int
	Options    Options
	Layouts    []Layout
	CanRequest bool
}

// NewPage applies opts to titles and attaches their status
func NewPage(kind storage.Kind, titles []*model.Title, status map[int64]Status, opts Options) Page {
	opts = opts.Normalize()

	heading := "Movies"
	if kind == storage.KindSeries {
		heading = "Series"
	}

	filtered := Apply(titles, opts)
	items := make([]Item, len(filtered))
	for i, t := range filtered {
		items[i] = Item{Title: t, Status: status[t.ID]}
	}

	return Page{
		Kind:       kind,
		Heading:    heading,
		Items:      items,
		Total:      len(titles),
		Options:    opts,
		Layouts:    []Layout{LayoutGrid, LayoutList, LayoutPoster},
		CanRequest: kind == storage.KindMovie && status != nil,
	}
}

// Render writes the page as html
func Render(w io.Writer, page Page) error {
	return templates.ExecuteTemplate(w, "page", page)
}
