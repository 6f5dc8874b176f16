package models

// AgentType identifies the role of an agent within a hierarchy.
type AgentType string

// Agent type constants.
const (
	AgentTypeGlobalSupervisor AgentType = "global_supervisor"
	AgentTypeTeamSupervisor   AgentType = "team_supervisor"
	AgentTypeWorker           AgentType = "worker"
)

// Worker is a leaf agent inside a team. Agent references the adapter-side
// agent definition used when the worker is invoked.
type Worker struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Agent string `json:"agent"`
}

// Team groups a team supervisor with its workers. The supervisor is
// addressed through the team's own id/name/agent fields.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Agent   string   `json:"agent"`
	Workers []Worker `json:"workers"`
}

// Hierarchy is the static two-level agent tree a run executes against:
// one global supervisor and N teams, each with one supervisor and M workers.
type Hierarchy struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Supervisor  string `json:"supervisor"` // adapter agent reference for the global supervisor
	Teams       []Team `json:"teams"`
}

// Team returns the team with the given name, or nil.
func (h *Hierarchy) Team(name string) *Team {
	for i := range h.Teams {
		if h.Teams[i].Name == name || h.Teams[i].ID == name {
			return &h.Teams[i]
		}
	}
	return nil
}

// Worker returns the worker with the given name within the team, or nil.
func (t *Team) Worker(name string) *Worker {
	for i := range t.Workers {
		if t.Workers[i].Name == name || t.Workers[i].ID == name {
			return &t.Workers[i]
		}
	}
	return nil
}

// Topology is the deep copy of a hierarchy recorded on the run at start.
type Topology struct {
	HierarchyID string `json:"hierarchy_id"`
	Name        string `json:"name"`
	Supervisor  string `json:"supervisor"`
	Teams       []Team `json:"teams"`
}

// Snapshot builds the topology snapshot stored on a run. Teams and workers
// are copied so later hierarchy edits cannot mutate the snapshot.
func (h *Hierarchy) Snapshot() *Topology {
	teams := make([]Team, len(h.Teams))
	for i, t := range h.Teams {
		workers := make([]Worker, len(t.Workers))
		copy(workers, t.Workers)
		t.Workers = workers
		teams[i] = t
	}
	return &Topology{
		HierarchyID: h.ID,
		Name:        h.Name,
		Supervisor:  h.Supervisor,
		Teams:       teams,
	}
}
