package model

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies who is asking and from which calendar panel.
// PanelID keys the per-panel fetch generation.
type Scope struct {
	UserID  string
	PanelID string
}

// Key returns the identity used for per-panel bookkeeping.
func (sc Scope) Key() string {
	return sc.UserID + "/" + sc.PanelID
}
