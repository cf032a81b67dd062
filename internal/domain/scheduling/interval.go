package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Interval é um intervalo semiaberto [Start, End) com instantes
// absolutos. Expediente ou atendimento que vira a madrugada carrega o
// End já no dia seguinte, então nenhuma comparação precisa de ajuste
// de "fim menor que início".
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval combina a data com dois horários do dia; quando o fim é
// menor que o início, o fim avança para o dia seguinte. Intervalo de
// comprimento zero permanece zero.
func NewInterval(date time.Time, start, end time.Time) Interval {
	s := At(date, start)
	e := At(date, end)
	if e.Before(s) {
		e = e.AddDate(0, 0, 1)
	}
	return Interval{Start: s, End: e}
}

// At projeta um horário do dia (só hora/minuto relevantes) sobre a data.
func At(date time.Time, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		date.Location(),
	)
}

// ParseClock interpreta "15:04" sobre a data informada.
func ParseClock(date time.Time, hm string) (time.Time, error) {
	parts := strings.Split(hm, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("horário inválido: %q", hm)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("hora inválida: %q", hm)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("minuto inválido: %q", hm)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		hour, minute, 0, 0,
		date.Location(),
	), nil
}

func (iv Interval) Empty() bool {
	return !iv.Start.Before(iv.End)
}

// Overlaps é estrito: extremos encostados não conflitam e intervalos
// vazios nunca sobrepõem nada.
func (iv Interval) Overlaps(o Interval) bool {
	if iv.Empty() || o.Empty() {
		return false
	}
	return iv.Start.Before(o.End) && o.Start.Before(iv.End)
}

// Contains verifica se o é inteiramente coberto por iv.
func (iv Interval) Contains(o Interval) bool {
	return !o.Start.Before(iv.Start) && !o.End.After(iv.End)
}

func (iv Interval) Duration() time.Duration {
	if iv.Empty() {
		return 0
	}
	return iv.End.Sub(iv.Start)
}

// SameLocalDate compara ano/mês/dia no fuso de a; os chamadores do
// core sempre passam os dois instantes já no fuso da barbearia.
func SameLocalDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
