package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/middleware"
)

// ======================================================
// HELPERS
// ======================================================

// Mensagens exibidas ao usuário final para cada recusa de agenda.
var rejectionMessages = map[domain.Reason]string{
	domain.ReasonNotWorkingThisDay: "O barbeiro não atende neste dia.",
	domain.ReasonOutsideLeadTime:   "O horário precisa de pelo menos 1 hora de antecedência.",
	domain.ReasonOutsideShift:      "Horário fora do expediente.",
	domain.ReasonOverlapsExisting:  "Horário já ocupado por outro agendamento.",
	domain.ReasonOverlapsWalkIn:    "O barbeiro está com um atendimento de balcão neste horário.",
}

var businessMessages = map[string]string{
	"invalid_date":              "Data inválida.",
	"invalid_time":              "Hora inválida.",
	"invalid_month":             "Mês inválido.",
	"barber_not_found":          "Barbeiro não encontrado.",
	"appointment_not_found":     "Agendamento não encontrado.",
	"services_required":         "Informe ao menos um serviço.",
	"service_not_found":         "Serviço não encontrado.",
	"services_without_duration": "Os serviços selecionados não têm duração cadastrada.",
	"invalid_state":             "Operação não permitida no status atual.",
	"product_not_found":         "Produto não encontrado.",
	"insufficient_stock":        "Estoque insuficiente.",
	"order_not_found":           "Ordem não encontrada.",
	"uploads_disabled":          "Upload de imagens desabilitado.",
	"payments_disabled":         "Cobrança online desabilitada.",
	"invalid_image":             "Imagem inválida.",
	"product_is_service":        "Serviços não têm controle de estoque.",
	"invalid_weekday":           "Dia da semana inválido.",
	"duplicated_weekday":        "Mais de uma entrada para o mesmo dia.",
	"invalid_hours":             "Horário de expediente inválido.",
	"invalid_lunch":             "Intervalo de almoço inválido.",
}

// writeUseCaseError traduz os erros dos use cases para a resposta
// HTTP: recusa de agenda vira 409 (conflito) ou 400, erro de negócio
// vira 400/404, o resto é 500.
func writeUseCaseError(c *gin.Context, err error) {
	var rej domain.RejectionError
	if errors.As(err, &rej) {
		msg, ok := rejectionMessages[rej.Reason]
		if !ok {
			msg = "Horário indisponível."
		}

		status := http.StatusBadRequest
		if rej.Reason == domain.ReasonOverlapsExisting || rej.Reason == domain.ReasonOverlapsWalkIn {
			status = http.StatusConflict
		}

		httperr.Write(c, status, string(rej.Reason), msg)
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		msg, found := businessMessages[code]
		if !found {
			msg = "Requisição inválida."
		}

		status := http.StatusBadRequest
		switch code {
		case "appointment_not_found", "barber_not_found", "order_not_found", "product_not_found":
			status = http.StatusNotFound
		case "invalid_state":
			status = http.StatusConflict
		}

		httperr.Write(c, status, code, msg)
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(v), true
}

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextUserID)
	id, _ := v.(uint)
	return id
}
