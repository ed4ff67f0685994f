package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/agency-dashboard-api/pkg/log"
	"github.com/vfg2006/agency-dashboard-api/pkg/utils"
)

func GetAccountInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("insights: fetching account insights by ID")

		filters, ok := parseInsightFilters(w, r, logger, "account_id", id)
		if !ok {
			return
		}

		insights, err := service.GetAccountInsights(id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("insights: failed to get insights for account")

			if strings.Contains(err.Error(), "não encontrada") {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("insights: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetCampaignInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("campaign_id", id).Info("insights: fetching campaign insights by ID")

		filters, ok := parseInsightFilters(w, r, logger, "campaign_id", id)
		if !ok {
			return
		}

		insights, err := service.GetCampaignInsights(id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("insights: failed to get insights for campaign")

			if strings.Contains(err.Error(), "não encontrada") {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("insights: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseInsightFilters lê start_date e end_date da query string. Responde o
// erro ao cliente e retorna ok=false quando alguma data é inválida.
func parseInsightFilters(w http.ResponseWriter, r *http.Request, logger log.Logger, idField, id string) (*domain.InsightFilters, bool) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			idField:      id,
			"start_date": r.URL.Query().Get("start_date"),
			"error":      err.Error(),
		}).Warn("insights: invalid start_date parameter")

		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			idField:    id,
			"end_date": r.URL.Query().Get("end_date"),
			"error":    err.Error(),
		}).Warn("insights: invalid end_date parameter")

		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	logger.WithFields(log.Fields{
		idField:      id,
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Debug("insights: fetching with filters")

	return &domain.InsightFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, true
}
