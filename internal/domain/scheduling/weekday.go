package scheduling

import "time"

// Weekday segue a convenção da agenda (segunda = 0, domingo = 6),
// diferente de time.Weekday (domingo = 0). Toda conversão passa por
// WeekdayOf para evitar off-by-one.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	names := [...]string{
		"segunda", "terça", "quarta", "quinta", "sexta", "sábado", "domingo",
	}
	if !d.Valid() {
		return "inválido"
	}
	return names[d]
}
