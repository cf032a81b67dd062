package scheduling

import "github.com/BruksfildServices01/barber-pos/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// ActiveStatuses são os status que ocupam agenda. COMPLETED continua
// ocupando o intervalo reservado: um atendimento concluído hoje com
// horário ainda à frente do relógio segue bloqueando a vaga.
func ActiveStatuses() []string {
	return []string{
		string(StatusRequested),
		string(StatusConfirmed),
		string(StatusCompleted),
	}
}

// ===============================
// Transições
// ===============================

// REQUESTED → CONFIRMED → COMPLETED; REQUESTED/CONFIRMED → CANCELED.
// COMPLETED e CANCELED são terminais.

func CanConfirm(current Status) error {
	if current != StatusRequested {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusRequested && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus é o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusRequested
}
