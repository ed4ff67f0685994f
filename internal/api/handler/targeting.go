package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/targeting"
	"github.com/vfg2006/agency-dashboard-api/pkg/apiErrors"
)

// GetCampaignTargeting devolve a segmentação agregada de uma campanha, com as
// localizações incluídas já resolvidas para exibição no mapa.
func GetCampaignTargeting(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		response, err := service.GetCampaignTargeting(id)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("targeting: erro ao buscar segmentação da campanha")

			if strings.Contains(err.Error(), "não encontrada") {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar segmentação da campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// SyncCampaignTargeting força a ressincronização da segmentação da campanha a
// partir da API da plataforma.
func SyncCampaignTargeting(service targeting.Targeter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncCampaignTargeting")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		if err := service.SyncCampaignTargeting(id); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("targeting: erro ao sincronizar segmentação da campanha")

			if strings.Contains(err.Error(), "não encontrada") {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao sincronizar segmentação da campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":     "Segmentação sincronizada com sucesso",
			"campaign_id": id,
		})
	})
}
