package api

// RunIDRequest addresses a single run.
type RunIDRequest struct {
	RunID string `json:"run_id"`
}

// ListRunsRequest is the body of POST /runs/list.
type ListRunsRequest struct {
	Page        int    `json:"page"`
	Size        int    `json:"size"`
	HierarchyID string `json:"hierarchy_id,omitempty"`
	Status      string `json:"status,omitempty"`
}

// HierarchyIDRequest addresses a single hierarchy.
type HierarchyIDRequest struct {
	HierarchyID string `json:"hierarchy_id"`
}

// ListHierarchiesRequest is the body of POST /hierarchies/list.
type ListHierarchiesRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}
