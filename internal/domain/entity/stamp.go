package entity

import "time"

// AgentManager identifica las escrituras hechas desde los casos de uso (managers).
const AgentManager = "manager"

// Stamp metadatos de auditoría comunes a los documentos del sistema.
// Deleted implementa el borrado lógico: los registros nunca se eliminan físicamente.
type Stamp struct {
	CreatedBy    string
	CreatedAgent string
	CreatedAt    time.Time
	UpdatedBy    string
	UpdatedAgent string
	UpdatedAt    time.Time
	Deleted      bool
}

// Touch marca el documento como creado (si aún no lo está) y modificado por username/agent.
func (s *Stamp) Touch(username, agent string, now time.Time) {
	if s.CreatedAt.IsZero() {
		s.CreatedBy = username
		s.CreatedAgent = agent
		s.CreatedAt = now
	}
	s.UpdatedBy = username
	s.UpdatedAgent = agent
	s.UpdatedAt = now
}
