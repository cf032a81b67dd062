package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	"github.com/BruksfildServices01/barber-pos/internal/cache"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

// ScheduleHandler administra o expediente semanal dos barbeiros.
type ScheduleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewScheduleHandler(db *gorm.DB, auditDisp *audit.Dispatcher, availability *cache.AvailabilityCache) *ScheduleHandler {
	return &ScheduleHandler{db: db, audit: auditDisp, cache: availability}
}

type ScheduleEntryRequest struct {
	Weekday    int    `json:"weekday"`
	StartHour  string `json:"start_hour" binding:"required"`
	EndHour    string `json:"end_hour" binding:"required"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type ReplaceScheduleRequest struct {
	Entries []ScheduleEntryRequest `json:"entries" binding:"required"`
}

// List devolve o expediente cadastrado de um barbeiro, ordenado por
// dia da semana (segunda = 0).
func (h *ScheduleHandler) List(c *gin.Context) {
	barberID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var entries []models.WorkSchedule
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday").
		Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedule", "Erro ao listar expediente.")
		return
	}

	httpresp.List(c, entries)
}

// Replace troca a semana inteira de uma vez: apaga o expediente atual
// do barbeiro e grava o novo, tudo na mesma transação. Dias ausentes
// viram folga.
func (h *ScheduleHandler) Replace(c *gin.Context) {
	barberID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var barber models.BarberProfile
	if err := h.db.First(&barber, barberID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req ReplaceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	entries, err := buildScheduleEntries(barberID, req.Entries)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.WorkSchedule{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar expediente.")
		return
	}

	actorID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "schedule_replaced",
		Entity:   "work_schedule",
		EntityID: &barberID,
	})

	// Expediente novo muda a disponibilidade da semana inteira; o TTL
	// curto do cache resolve os dias já consultados.

	httpresp.OK(c, entries)
}

// buildScheduleEntries valida as entradas: no máximo uma por dia,
// horários parseáveis e almoço (quando houver) dentro do expediente.
func buildScheduleEntries(barberID uint, reqs []ScheduleEntryRequest) ([]models.WorkSchedule, error) {
	seen := map[int]bool{}
	entries := make([]models.WorkSchedule, 0, len(reqs))

	// Data de referência qualquer, só para validar os horários.
	ref := time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC)

	for _, r := range reqs {
		if !domain.Weekday(r.Weekday).Valid() {
			return nil, httperr.ErrBusiness("invalid_weekday")
		}
		if seen[r.Weekday] {
			return nil, httperr.ErrBusiness("duplicated_weekday")
		}
		seen[r.Weekday] = true

		ws := models.WorkSchedule{
			BarberID:   barberID,
			Weekday:    r.Weekday,
			StartHour:  r.StartHour,
			EndHour:    r.EndHour,
			LunchStart: r.LunchStart,
			LunchEnd:   r.LunchEnd,
		}

		start, err := domain.ParseClock(ref, r.StartHour)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_hours")
		}
		end, err := domain.ParseClock(ref, r.EndHour)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_hours")
		}
		if r.StartHour == r.EndHour {
			return nil, httperr.ErrBusiness("invalid_hours")
		}

		// Almoço vem em par ou não vem.
		if (r.LunchStart == "") != (r.LunchEnd == "") {
			return nil, httperr.ErrBusiness("invalid_lunch")
		}
		if r.LunchStart != "" {
			work := domain.NewInterval(ref, start, end)

			ls, err := domain.ParseClock(ref, r.LunchStart)
			if err != nil {
				return nil, httperr.ErrBusiness("invalid_lunch")
			}
			le, err := domain.ParseClock(ref, r.LunchEnd)
			if err != nil {
				return nil, httperr.ErrBusiness("invalid_lunch")
			}

			lunch := domain.NewInterval(ref, ls, le)
			if !work.Contains(lunch) {
				return nil, httperr.ErrBusiness("invalid_lunch")
			}
		}

		entries = append(entries, ws)
	}

	return entries, nil
}
