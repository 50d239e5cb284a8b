package appointments

import "time"

// Partition separa próximos (fecha >= now y no cancelados) del historial.
// Conserva el orden de entrada.
func Partition(items []WithPet, now time.Time) (upcoming, past []WithPet) {
	upcoming = make([]WithPet, 0, len(items))
	past = make([]WithPet, 0)
	for _, a := range items {
		if !a.Date.Before(now) && a.Status != StatusCancelled {
			upcoming = append(upcoming, a)
			continue
		}
		past = append(past, a)
	}
	return upcoming, past
}
