package domain

import "time"

// Snapshot guarda os dados carregados dos dois endpoints. É imutável depois
// de criado; uma nova carga gera um novo Snapshot.
type Snapshot struct {
	ID       string          `json:"id"`
	LoadedAt time.Time       `json:"loaded_at"`
	Current  []MonthlyRecord `json:"current"`
	Previous []MonthlyRecord `json:"previous"`
}

// CurrentYear retorna o ano do conjunto atual, usando o primeiro registro
func (s *Snapshot) CurrentYear() int {
	if len(s.Current) > 0 && s.Current[0].Year > 0 {
		return s.Current[0].Year
	}
	return s.LoadedAt.Year()
}

// LastRecordedDate retorna a data mais recente de registro no conjunto atual
func (s *Snapshot) LastRecordedDate() *time.Time {
	var last *time.Time
	for i := range s.Current {
		d := s.Current[i].LastRecordedDate
		if d != nil && (last == nil || d.After(*last)) {
			last = d
		}
	}
	return last
}
