package view

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func fixtures() []*model.Title {
	return []*model.Title{
		{ID: 1, Title: ptr("alien"), Year: ptr("1979"), Rating: ptr(int32(9)), Critic: ptr("93%"), Watched: true},
		{ID: 2, Title: ptr("Amélie"), Year: ptr("2001"), Critic: ptr("89%")},
		{ID: 3, Title: ptr("Zodiac"), Year: ptr("2007"), Rating: ptr(int32(7)), Watched: true},
		{ID: 4, Title: ptr("Arrival"), Year: ptr("2016"), Rating: ptr(int32(8)), Critic: ptr("94%")},
		{ID: 5, Year: nil},
	}
}

func ids(titles []*model.Title) []int64 {
	out := make([]int64, len(titles))
	for i, t := range titles {
		out[i] = t.ID
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []int64
	}{
		{name: "title ascending ignores case and accents", opts: Options{Sort: SortTitle, Order: OrderAsc}, want: []int64{5, 1, 2, 4, 3}},
		{name: "title descending", opts: Options{Sort: SortTitle, Order: OrderDesc}, want: []int64{3, 4, 2, 1, 5}},
		{name: "year", opts: Options{Sort: SortYear, Order: OrderAsc}, want: []int64{5, 1, 2, 3, 4}},
		{name: "rating descending", opts: Options{Sort: SortRating, Order: OrderDesc}, want: []int64{1, 4, 3, 2, 5}},
		{name: "critic descending", opts: Options{Sort: SortCritic, Order: OrderDesc}, want: []int64{4, 1, 2, 3, 5}},
		{name: "unwatched", opts: Options{Sort: SortYear, Filter: FilterUnwatched}, want: []int64{5, 2, 4}},
		{name: "watched", opts: Options{Sort: SortTitle, Filter: FilterWatched}, want: []int64{1, 3}},
		{name: "unknown values use defaults", opts: Options{Sort: "popularity", Order: "sideways", Filter: "maybe"}, want: []int64{5, 1, 2, 4, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fixtures()
			before := ids(in)

			got := Apply(in, tt.opts)
			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, before, ids(in), "input must not be reordered")
		})
	}
}

func TestApply_Snapshot(t *testing.T) {
	var out []string
	for _, sort := range []SortField{SortTitle, SortYear, SortRating, SortCritic} {
		for _, order := range []Order{OrderAsc, OrderDesc} {
			titles := Apply(fixtures(), Options{Sort: sort, Order: order})
			names := make([]string, len(titles))
			for i, title := range titles {
				names[i] = deref(title.Title)
			}
			out = append(out, string(sort)+" "+string(order)+": "+strings.Join(names, ", "))
		}
	}
	snaps.MatchSnapshot(t, strings.Join(out, "\n"))
}

func TestOptions_Merge(t *testing.T) {
	saved := Options{Layout: LayoutPoster, Sort: SortYear, Order: OrderDesc, Filter: FilterUnwatched}

	got := saved.Merge(url.Values{"sort": {"critic"}})
	assert.Equal(t, Options{Layout: LayoutPoster, Sort: SortCritic, Order: OrderDesc, Filter: FilterUnwatched}, got)

	got = saved.Merge(url.Values{"layout": {"carousel"}})
	assert.Equal(t, LayoutGrid, got.Layout)

	got = Options{}.Merge(nil)
	assert.Equal(t, DefaultOptions(), got)

	assert.Equal(t, "desc", saved.Query().Get("order"))
}

func TestRender(t *testing.T) {
	status := map[int64]Status{
		1: {Available: true},
		2: {Requested: true},
	}

	for _, layout := range []Layout{LayoutGrid, LayoutList, LayoutPoster} {
		t.Run(string(layout), func(t *testing.T) {
			page := NewPage(storage.KindMovie, fixtures(), status, Options{Layout: layout, Filter: FilterAll})
			assert.True(t, page.CanRequest)
			assert.Equal(t, 5, page.Total)

			var buf bytes.Buffer
			err := Render(&buf, page)
			require.NoError(t, err)

			html := buf.String()
			assert.Contains(t, html, `<body data-kind="movie">`)
			assert.Contains(t, html, `data-id="4"`)
			assert.Contains(t, html, "Amélie")
			assert.Contains(t, html, `data-action="request"`)
			assert.Contains(t, html, "Requested")
			assert.Contains(t, html, `<option value="`+string(layout)+`" selected>`)
		})
	}
}

func TestRender_Series(t *testing.T) {
	page := NewPage(storage.KindSeries, []*model.Title{{ID: 1396, Title: ptr("Breaking <Bad>")}}, nil, DefaultOptions())
	assert.False(t, page.CanRequest)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, page))

	html := buf.String()
	assert.Contains(t, html, "Watchlist - Series")
	assert.Contains(t, html, "Breaking &lt;Bad&gt;")
	assert.NotContains(t, html, `data-action="request"`)
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, NewPage(storage.KindMovie, nil, nil, DefaultOptions())))
	assert.Contains(t, buf.String(), "Nothing on the watchlist yet.")
	assert.Contains(t, buf.String(), `<form class="search" data-search>`)
}

func TestRender_Search(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, templates.ExecuteTemplate(&buf, "search", NewPage(storage.KindSeries, nil, nil, DefaultOptions())))
	snaps.MatchSnapshot(t, buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, NewPage(storage.KindMovie, fixtures(), nil, DefaultOptions())))

	html := buf.String()
	assert.Contains(t, html, `placeholder="Add a movie"`)
	assert.Contains(t, html, `"/api/" + kind + "/search"`)
	assert.Contains(t, html, `"/api/" + kind + "/add"`)
	assert.Contains(t, html, "result.added")
}
