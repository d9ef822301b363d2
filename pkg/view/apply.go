package view

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Apply filters and sorts titles according to opts. The input is not modified.
func Apply(titles []*model.Title, opts Options) []*model.Title {
	opts = opts.Normalize()

	out := make([]*model.Title, 0, len(titles))
	for _, t := range titles {
		if t == nil {
			continue
		}
		switch opts.Filter {
		case FilterWatched:
			if !t.Watched {
				continue
			}
		case FilterUnwatched:
			if t.Watched {
				continue
			}
		}
		out = append(out, t)
	}

	compare := comparator(opts.Sort)
	slices.SortStableFunc(out, func(a, b *model.Title) int {
		if opts.Order == OrderDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})

	return out
}

func comparator(field SortField) func(a, b *model.Title) int {
	switch field {
	case SortYear:
		return func(a, b *model.Title) int {
			return cmp.Compare(year(a), year(b))
		}
	case SortRating:
		return func(a, b *model.Title) int {
			return cmp.Compare(deref(a.Rating), deref(b.Rating))
		}
	case SortCritic:
		return func(a, b *model.Title) int {
			return cmp.Compare(criticScore(a), criticScore(b))
		}
	default:
		// collators are not safe for concurrent use
		c := collate.New(language.English, collate.IgnoreCase, collate.IgnoreDiacritics)
		return func(a, b *model.Title) int {
			return c.CompareString(deref(a.Title), deref(b.Title))
		}
	}
}

func year(t *model.Title) int {
	y, err := strconv.Atoi(strings.TrimSpace(deref(t.Year)))
	if err != nil {
		return 0
	}
	return y
}

// criticScore parses a score like "87%". Titles without a score sort first.
func criticScore(t *model.Title) int {
	s := strings.TrimSuffix(strings.TrimSpace(deref(t.Critic)), "%")
	v, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return v
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
