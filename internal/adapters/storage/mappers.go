package storage

import (
	"github.com/renato0307/inboxsim/internal/domain"
)

// runModelToDomain converts a RunModel (GORM) and its sessions to domain.Run
func runModelToDomain(m RunModel, sessions []RunSessionModel) domain.Run {
	run := domain.Run{
		FinishedAt:  m.FinishedAt,
		ID:          m.ID,
		LogPath:     m.LogPath,
		Participant: m.Participant,
		StartedAt:   m.StartedAt,
		Status:      domain.RunStatus(m.Status),
		StudyPath:   m.StudyPath,
	}
	for _, s := range sessions {
		run.Sessions = append(run.Sessions, runSessionModelToDomain(s))
	}
	return run
}

// domainToRunModel converts a domain.Run to RunModel (GORM)
func domainToRunModel(r domain.Run) RunModel {
	status := r.Status
	if status == "" {
		status = domain.RunStatusRunning
	}
	return RunModel{
		FinishedAt:  r.FinishedAt,
		ID:          r.ID,
		LogPath:     r.LogPath,
		Participant: r.Participant,
		StartedAt:   r.StartedAt,
		Status:      string(status),
		StudyPath:   r.StudyPath,
	}
}

func runSessionModelToDomain(m RunSessionModel) domain.RunSession {
	return domain.RunSession{
		FinishedAt: m.FinishedAt,
		Name:       m.Name,
		Position:   m.Position,
		StartedAt:  m.StartedAt,
		Unread:     m.Unread,
		Visible:    m.Visible,
	}
}

func domainToRunSessionModel(runID string, s domain.RunSession) RunSessionModel {
	return RunSessionModel{
		FinishedAt: s.FinishedAt,
		Name:       s.Name,
		Position:   s.Position,
		RunID:      runID,
		StartedAt:  s.StartedAt,
		Unread:     s.Unread,
		Visible:    s.Visible,
	}
}
