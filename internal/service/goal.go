package service

import (
	"fmt"
	"math"
	"time"

	"github.com/studyos/studyos/internal/model"
	"github.com/studyos/studyos/internal/store"
)

type CreateGoalInput struct {
	Title    string
	Type     string
	Target   int
	Deadline string
}

// GoalProgress is the evaluated state of one goal at a point in time.
type GoalProgress struct {
	Goal     model.Goal
	Current  int
	Percent  int
	Complete bool
	DaysLeft *int
}

func CreateGoal(st *store.Store, in CreateGoalInput, now time.Time) (model.Goal, error) {
	var goal model.Goal

	title, err := requireText("goal title", in.Title)
	if err != nil {
		return goal, err
	}
	if in.Type == "" {
		in.Type = model.GoalTypeCustom
	}
	if !model.ValidGoalType(in.Type) {
		return goal, fmt.Errorf("invalid goal type %q (expected dsa, study, pomodoro or custom)", in.Type)
	}
	if err := validatePositiveInt("target", in.Target); err != nil {
		return goal, err
	}
	deadline, err := validateOptionalDate("deadline", in.Deadline)
	if err != nil {
		return goal, err
	}

	goal = model.Goal{
		ID:           newID(),
		Title:        title,
		Type:         in.Type,
		Target:       in.Target,
		Deadline:     deadline,
		CreatedAt:    DateOf(now),
		CurrentValue: 0,
	}
	return store.Save(st, model.CollectionGoals, goal)
}

func ListGoals(st *store.Store) ([]model.Goal, error) {
	return store.Get[model.Goal](st, model.CollectionGoals)
}

func DeleteGoal(st *store.Store, id string) error {
	goals, err := store.Get[model.Goal](st, model.CollectionGoals)
	if err != nil {
		return err
	}
	found := false
	for _, g := range goals {
		if g.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("goal %q not found", id)
	}
	return store.Delete[model.Goal](st, model.CollectionGoals, id)
}

// IncrementGoal bumps the stored counter of a custom goal. Computed goal
// types derive their progress, so incrementing them is rejected.
func IncrementGoal(st *store.Store, id string) error {
	goals, err := store.Get[model.Goal](st, model.CollectionGoals)
	if err != nil {
		return err
	}
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		if goals[i].Type != model.GoalTypeCustom {
			return fmt.Errorf("goal %q has computed progress (type %s); only custom goals can be incremented", id, goals[i].Type)
		}
		goals[i].CurrentValue++
		return store.Set(st, model.CollectionGoals, goals)
	}
	return fmt.Errorf("goal %q not found", id)
}

// EvaluateGoal computes current progress for one goal against the practice
// log and pomodoro history. Pure; recomputes from the given slices.
func EvaluateGoal(goal model.Goal, entries []model.PracticeEntry, sessions []model.PomodoroSession, now time.Time) GoalProgress {
	current := 0
	switch goal.Type {
	case model.GoalTypeDSA:
		for _, e := range entries {
			if e.Date < goal.CreatedAt {
				continue
			}
			if goal.Deadline != "" && e.Date > goal.Deadline {
				continue
			}
			current++
		}
	case model.GoalTypePomodoro:
		for _, s := range sessions {
			if s.Date >= goal.CreatedAt {
				current++
			}
		}
	case model.GoalTypeStudy:
		minutes := 0
		for _, s := range sessions {
			if s.Date >= goal.CreatedAt {
				minutes += s.DurationMinutes
			}
		}
		current = minutes / 60
	default:
		current = goal.CurrentValue
	}

	percent := 0
	if goal.Target > 0 {
		percent = int(math.Round(float64(current) / float64(goal.Target) * 100))
		if percent > 100 {
			percent = 100
		}
	}

	progress := GoalProgress{
		Goal:     goal,
		Current:  current,
		Percent:  percent,
		Complete: percent >= 100,
	}
	if goal.Deadline != "" {
		if days, err := daysUntil(goal.Deadline, now); err == nil {
			progress.DaysLeft = &days
		}
	}
	return progress
}

// EvaluateGoals loads everything a goal can reference and evaluates each one.
func EvaluateGoals(st *store.Store, now time.Time) ([]GoalProgress, error) {
	goals, err := store.Get[model.Goal](st, model.CollectionGoals)
	if err != nil {
		return nil, err
	}
	entries, err := store.Get[model.PracticeEntry](st, model.CollectionPractice)
	if err != nil {
		return nil, err
	}
	sessions, err := store.Get[model.PomodoroSession](st, model.CollectionPomodoro)
	if err != nil {
		return nil, err
	}
	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, EvaluateGoal(g, entries, sessions, now))
	}
	return out, nil
}
