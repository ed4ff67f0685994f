package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/crm"
	"github.com/vfg2006/agency-dashboard-api/pkg/apiErrors"
)

type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status"`
}

// GetBillingSummary devolve as faturas do cliente com os totais por status
func GetBillingSummary(service crm.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		summary, err := service.GetBillingSummary(id)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"client_id": id,
				"error":     err.Error(),
			}).Error("billing: erro ao montar resumo de cobrança")

			if strings.Contains(err.Error(), "não encontrado") {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar resumo de cobrança", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// CreateInvoice emite uma nova fatura para o cliente
func CreateInvoice(service crm.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateInvoice")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
			return
		}

		var request domain.CreateInvoiceRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		// O cliente vem da URL
		request.ClientID = id

		invoice, err := service.CreateInvoice(&request)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"client_id": id,
				"error":     err.Error(),
			}).Error("billing: erro ao emitir fatura")

			switch {
			case strings.Contains(err.Error(), "não encontrado"):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

			case strings.Contains(err.Error(), "maior que zero"):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao emitir fatura", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(invoice); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UpdateInvoiceStatus muda o status de uma fatura respeitando as transições
// permitidas (faturas pagas ou canceladas não mudam mais).
func UpdateInvoiceStatus(service crm.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateInvoiceStatus")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura é obrigatório", nil)
			return
		}

		var request UpdateInvoiceStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		invoice, err := service.UpdateInvoiceStatus(id, request.Status)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"invoice_id": id,
				"status":     request.Status,
				"error":      err.Error(),
			}).Error("billing: erro ao atualizar status da fatura")

			switch {
			case strings.Contains(err.Error(), "não encontrada"):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

			case strings.Contains(err.Error(), "não pode mudar"):
				apiErrors.WriteError(w, apiErrors.ErrResourceConflict, err.Error(), nil)

			case strings.Contains(err.Error(), "status de fatura inválido"):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar status da fatura", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(invoice); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
