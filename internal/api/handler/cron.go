package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/internal/scheduler"
	"github.com/vfg2006/agency-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeInsights = "insights"
	CronJobTypeInvoices = "invoices"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os agendadores que podem ser disparados manualmente
type CronJobServices struct {
	InsightSyncService    *scheduler.InsightSyncService
	InvoiceOverdueService *scheduler.InvoiceOverdueService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeInsights:
			if services.InsightSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de insights não disponível", nil)
				return
			}
			services.InsightSyncService.TriggerManualSync()

		case CronJobTypeInvoices:
			if services.InvoiceOverdueService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de vencimento de faturas não disponível", nil)
				return
			}
			services.InvoiceOverdueService.TriggerManualRun()

		case CronJobTypeAll:
			if services.InsightSyncService != nil {
				services.InsightSyncService.TriggerManualSync()
			}
			if services.InvoiceOverdueService != nil {
				services.InvoiceOverdueService.TriggerManualRun()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: insights, invoices, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"insights": services.InsightSyncService.GetStatus(),
			"invoices": services.InvoiceOverdueService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
