package service

import (
	"fmt"
	"strings"

	"github.com/studyos/studyos/internal/model"
	"github.com/studyos/studyos/internal/store"
)

type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
}

type AddMilestoneInput struct {
	ProjectID string
	Name      string
	Deadline  string
	Blockers  string
}

func CreateProject(st *store.Store, in CreateProjectInput) (model.Project, error) {
	var project model.Project

	name, err := requireText("project name", in.Name)
	if err != nil {
		return project, err
	}
	startDate, err := validateOptionalDate("start date", in.StartDate)
	if err != nil {
		return project, err
	}
	endDate, err := validateOptionalDate("end date", in.EndDate)
	if err != nil {
		return project, err
	}

	project = model.Project{
		ID:          newID(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		StartDate:   startDate,
		EndDate:     endDate,
		ProgressPct: 0,
		Milestones:  []model.Milestone{},
	}
	return store.Save(st, model.CollectionProjects, project)
}

func ListProjects(st *store.Store) ([]model.Project, error) {
	return store.Get[model.Project](st, model.CollectionProjects)
}

func DeleteProject(st *store.Store, id string) error {
	projects, err := store.Get[model.Project](st, model.CollectionProjects)
	if err != nil {
		return err
	}
	if _, err := findProject(projects, id); err != nil {
		return err
	}
	return store.Delete[model.Project](st, model.CollectionProjects, id)
}

// SetProjectProgress stores a directly authored percentage, clamped to [0,100].
func SetProjectProgress(st *store.Store, id string, pct int) error {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	projects, err := store.Get[model.Project](st, model.CollectionProjects)
	if err != nil {
		return err
	}
	idx, err := findProject(projects, id)
	if err != nil {
		return err
	}
	projects[idx].ProgressPct = pct
	return store.Set(st, model.CollectionProjects, projects)
}

func AddMilestone(st *store.Store, in AddMilestoneInput) (model.Milestone, error) {
	var milestone model.Milestone

	name, err := requireText("milestone name", in.Name)
	if err != nil {
		return milestone, err
	}
	deadline, err := validateOptionalDate("deadline", in.Deadline)
	if err != nil {
		return milestone, err
	}

	projects, err := store.Get[model.Project](st, model.CollectionProjects)
	if err != nil {
		return milestone, err
	}
	idx, err := findProject(projects, in.ProjectID)
	if err != nil {
		return milestone, err
	}

	milestone = model.Milestone{
		ID:       newID(),
		Name:     name,
		Deadline: deadline,
		Blockers: strings.TrimSpace(in.Blockers),
		Done:     false,
	}
	projects[idx].Milestones = append(projects[idx].Milestones, milestone)
	if err := store.Set(st, model.CollectionProjects, projects); err != nil {
		return milestone, err
	}
	return milestone, nil
}

func ToggleMilestone(st *store.Store, projectID, milestoneID string, done bool) error {
	projects, err := store.Get[model.Project](st, model.CollectionProjects)
	if err != nil {
		return err
	}
	idx, err := findProject(projects, projectID)
	if err != nil {
		return err
	}
	for i := range projects[idx].Milestones {
		if projects[idx].Milestones[i].ID == milestoneID {
			projects[idx].Milestones[i].Done = done
			return store.Set(st, model.CollectionProjects, projects)
		}
	}
	return fmt.Errorf("milestone %q not found in project %q", milestoneID, projectID)
}

func findProject(projects []model.Project, id string) (int, error) {
	for i := range projects {
		if projects[i].ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("project %q not found", id)
}

// MilestonesDone counts completed milestones.
func MilestonesDone(p model.Project) int {
	done := 0
	for _, m := range p.Milestones {
		if m.Done {
			done++
		}
	}
	return done
}
