package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// buildDaySlots вычисляет доступные слоты на дату по снапшоту расписания
// и активным записям. Чистая функция без побочных эффектов
//
// Алгоритм:
//  1. Берем окно работы на день недели; выходной - пустой результат
//  2. Блокировка на весь день закрывает дату целиком
//  3. Интервальные блокировки и активные записи складываются в занятое
//     множество, пересекающиеся и смежные интервалы склеиваются
//  4. Занятое множество вычитается из окна, остаются свободные сегменты
//  5. Внутри каждого сегмента слоты генерируются от его начала с шагом step;
//     слот валиден, только если целиком помещается в сегмент
//
// Граничные случаи: блокировка, касающаяся окна или записи ровно границей,
// не влияет на результат; блокировки вне окна игнорируются; длительность
// больше окна дает пустой результат, а не ошибку
func buildDaySlots(
	snapshot *domain.ScheduleSnapshot,
	date time.Time,
	durationMinutes int,
	step int,
	appointments []*domain.Appointment,
) []domain.Slot {
	window := snapshot.WindowFor(date)
	if window == nil {
		return nil
	}

	blocked := make([]domain.Interval, 0, len(appointments))
	for _, exc := range snapshot.ExceptionsFor(date) {
		if exc.FullDay {
			return nil
		}
		blocked = append(blocked, exc.Interval())
	}

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		blocked = append(blocked, appt.Interval())
	}

	free := domain.SubtractIntervals(window.Interval(), domain.MergeIntervals(blocked))

	var slots []domain.Slot
	for _, segment := range free {
		for start := segment.Start; start+durationMinutes <= segment.End; start += step {
			slots = append(slots, domain.Slot{
				StartMinute: start,
				EndMinute:   start + durationMinutes,
			})
		}
	}

	return slots
}
