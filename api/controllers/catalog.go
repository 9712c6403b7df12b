package controllers

import (
	"net/http"

	"github.com/opheliasgarden/nursery-backend/api/responses"
	"github.com/opheliasgarden/nursery-backend/internal/catalog"
	"github.com/opheliasgarden/nursery-backend/internal/catalog/filter"
	"github.com/opheliasgarden/nursery-backend/pkg/enums"
	"github.com/opheliasgarden/nursery-backend/pkg/logger"
)

type catalogResponse struct {
	Entries   []catalog.Entry `json:"entries"`
	Count     int             `json:"count"`
	NoResults bool            `json:"no_results"`
	Summaries summaries       `json:"summaries"`
}

type summaries struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}

// GetCatalog lists varieties, narrowed by repeatable category= and color=
// params plus in_stock=true. Unknown filter values simply match nothing
// within their group; they never error.
func GetCatalog(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		state := filter.NewStateFromSelections(
			query["category"],
			query["color"],
			query.Get("in_stock") == "true",
		)

		result := state.Apply(cat.Entries())
		responses.WriteSuccess(w, catalogResponse{
			Entries:   result.Entries,
			Count:     result.Count,
			NoResults: result.NoResults,
			Summaries: summaries{
				Category: state.SummaryLabel(enums.FilterGroupCategory),
				Color:    state.SummaryLabel(enums.FilterGroupColor),
			},
		})
	}
}
