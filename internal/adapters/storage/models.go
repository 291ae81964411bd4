package storage

import "time"

// RunModel is the GORM model for runs table
type RunModel struct {
	CreatedAt   time.Time
	FinishedAt  *time.Time `gorm:"default:null"`
	ID          string     `gorm:"primaryKey"`
	LogPath     string     `gorm:"not null;default:''"`
	Participant string     `gorm:"not null;index:idx_participant"`
	StartedAt   time.Time  `gorm:"not null;index:idx_started_at"`
	Status      string     `gorm:"not null;default:'running';check:status IN ('running','finished','aborted')"`
	StudyPath   string     `gorm:"not null;default:''"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (RunModel) TableName() string { return "runs" }

// RunSessionModel is the GORM model for run_sessions table
type RunSessionModel struct {
	CreatedAt  time.Time
	FinishedAt *time.Time `gorm:"default:null"`
	Name       string     `gorm:"not null"`
	Position   int        `gorm:"primaryKey;autoIncrement:false"`
	RunID      string     `gorm:"primaryKey;index:idx_run_id"`
	StartedAt  time.Time  `gorm:"not null"`
	Unread     int        `gorm:"not null;default:0"`
	UpdatedAt  time.Time
	Visible    int `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (RunSessionModel) TableName() string { return "run_sessions" }
