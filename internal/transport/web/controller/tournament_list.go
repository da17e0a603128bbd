package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/codebytes2/gamerec/internal/datasources"
	"github.com/codebytes2/gamerec/internal/domain"
)

type TournamentList struct {
	Lister interface {
		datasources.TournamentLister
		datasources.TournamentCounter
	}
}

type TournamentListResponse struct {
	Data     []TournamentDetail  `json:"data"`
	Metadata domain.ListMetadata `json:"metadata"`
}

func (c TournamentList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse list options in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	filters, err := tournamentFiltersFromQuery(r.URL.Query())
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse tournament filters in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tournaments, err := c.Lister.ListTournaments(ctx, filters, options)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	total, err := c.Lister.CountTournaments(ctx, filters)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	data := make([]TournamentDetail, 0, len(tournaments))
	for _, t := range tournaments {
		data = append(data, tournamentDetail(t))
	}

	writeJSON(ctx, w, http.StatusOK, TournamentListResponse{
		Data:     data,
		Metadata: domain.ListMetadata{TotalRows: total},
	})
}

func tournamentFiltersFromQuery(q url.Values) (domain.TournamentFilters, error) {
	var filters domain.TournamentFilters

	if q.Has("status") {
		status := domain.TournamentStatus(strings.ToUpper(q.Get("status")))
		if !slices.Contains(domain.ValidTournamentStatuses, status) {
			return domain.TournamentFilters{}, fmt.Errorf("unrecognised tournament status: %s", q.Get("status"))
		}
		filters.Status = status
	}

	filters.GameContains = q.Get("game")
	filters.Search = q.Get("search")

	return filters, nil
}
