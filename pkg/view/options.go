package view

import (
	"net/url"
)

type Layout string

const (
	LayoutGrid   Layout = "grid"
	LayoutList   Layout = "list"
	LayoutPoster Layout = "poster"
)

type SortField string

const (
	SortTitle  SortField = "title"
	SortYear   SortField = "year"
	SortRating SortField = "rating"
	SortCritic SortField = "critic"
)

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterWatched   Filter = "watched"
	FilterUnwatched Filter = "unwatched"
)

// Options is how a list of titles is displayed
type Options struct {
	Layout Layout    `json:"layout"`
	Sort   SortField `json:"sort"`
	Order  Order     `json:"order"`
	Filter Filter    `json:"filter"`
}

func DefaultOptions() Options {
	return Options{
		Layout: LayoutGrid,
		Sort:   SortTitle,
		Order:  OrderAsc,
		Filter: FilterAll,
	}
}

// Normalize replaces unknown values with the defaults
func (o Options) Normalize() Options {
	d := DefaultOptions()
	switch o.Layout {
	case LayoutGrid, LayoutList, LayoutPoster:
	default:
		o.Layout = d.Layout
	}
	switch o.Sort {
	case SortTitle, SortYear, SortRating, SortCritic:
	default:
		o.Sort = d.Sort
	}
	switch o.Order {
	case OrderAsc, OrderDesc:
	default:
		o.Order = d.Order
	}
	switch o.Filter {
	case FilterAll, FilterWatched, FilterUnwatched:
	default:
		o.Filter = d.Filter
	}
	return o
}

// Merge overrides o with the values set in query
func (o Options) Merge(query url.Values) Options {
	if v := query.Get("layout"); v != "" {
		o.Layout = Layout(v)
	}
	if v := query.Get("sort"); v != "" {
		o.Sort = SortField(v)
	}
	if v := query.Get("order"); v != "" {
		o.Order = Order(v)
	}
	if v := query.Get("filter"); v != "" {
		o.Filter = Filter(v)
	}
	return o.Normalize()
}

// Query encodes the options as url query values
func (o Options) Query() url.Values {
	return url.Values{
		"layout": {string(o.Layout)},
		"sort":   {string(o.Sort)},
		"order":  {string(o.Order)},
		"filter": {string(o.Filter)},
	}
}
