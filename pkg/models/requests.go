package models

// CreateHierarchyRequest contains fields for registering a hierarchy.
type CreateHierarchyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Supervisor  string `json:"supervisor"`
	Teams       []Team `json:"teams"`
}

// StartRunRequest contains fields for starting a run.
type StartRunRequest struct {
	HierarchyID string `json:"hierarchy_id"`
	Task        string `json:"task"`
}
