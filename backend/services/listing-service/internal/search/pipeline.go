package search

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

// Searcher is the slice of the gateway the pipeline needs.
type Searcher interface {
	Search(ctx context.Context, f models.FilterSpec) ([]*models.Property, error)
}

// ListingResult is everything a listings page renders. Err is set when the
// search failed; Page is then the zeroed empty page.
type ListingResult struct {
	Page    utils.Page[*models.Property]
	Filters RawFilters
	Spec    models.FilterSpec
	Err     error

	basePath string
}

// Degraded reports whether the listing is empty because the search failed.
func (r ListingResult) Degraded() bool {
	return r.Err != nil
}

// PageURL links to page n of the same search.
func (r ListingResult) PageURL(n int) string {
	v := r.Filters.Values()
	if n > 1 {
		v.Set(ParamPage, strconv.Itoa(n))
	}
	if len(v) == 0 {
		return r.basePath
	}
	return r.basePath + "?" + v.Encode()
}

type Pipeline struct {
	searcher Searcher
	pageSize int
	basePath string
}

func NewPipeline(searcher Searcher, pageSize int, basePath string) *Pipeline {
	if pageSize < 1 {
		pageSize = utils.DefaultListingsPageSize
	}
	return &Pipeline{searcher: searcher, pageSize: pageSize, basePath: basePath}
}

func (p *Pipeline) PageSize() int { return p.pageSize }

// Run parses filters and page, searches, and paginates. It never fails: a
// search error is logged and reported through the result.
func (p *Pipeline) Run(ctx context.Context, q url.Values) ListingResult {
	raw := ReadRawFilters(q)
	res := ListingResult{
		Filters:  raw,
		Spec:     raw.Spec(),
		basePath: p.basePath,
	}
	page := utils.ParsePage(q.Get(ParamPage))

	props, err := p.searcher.Search(ctx, res.Spec)
	if err != nil {
		utils.Logger.WithFields(logrus.Fields{
			"filters": raw,
			"page":    page,
		}).WithError(err).Error("Property search failed; rendering empty listing")
		res.Page = utils.EmptyPage[*models.Property]()
		res.Err = err
		return res
	}

	res.Page = utils.Paginate(props, page, p.pageSize)
	return res
}
