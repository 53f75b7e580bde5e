package service_test

import (
	"testing"

	"github.com/studyos/studyos/internal/model"
	"github.com/studyos/studyos/internal/service"
)

func TestCreateGoalRejectsNonPositiveTarget(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	_, err := service.CreateGoal(st, service.CreateGoalInput{Title: "solve problems", Type: model.GoalTypeDSA, Target: 0}, testNow)
	if err == nil {
		t.Fatal("expected error for target 0")
	}
	goals, err := service.ListGoals(st)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(goals) != 0 {
		t.Fatalf("failed validation still mutated the store: %+v", goals)
	}
}

func TestCustomGoalCompletion(t *testing.T) {
	t.Parallel()

	done := model.Goal{ID: "g1", Title: "read papers", Type: model.GoalTypeCustom, Target: 5, CreatedAt: day(-10), CurrentValue: 5}
	progress := service.EvaluateGoal(done, nil, nil, testNow)
	if progress.Current != 5 || progress.Percent != 100 || !progress.Complete {
		t.Fatalf("5/5 custom goal: %+v", progress)
	}

	partial := model.Goal{ID: "g2", Title: "read papers", Type: model.GoalTypeCustom, Target: 5, CreatedAt: day(-10), CurrentValue: 3}
	progress = service.EvaluateGoal(partial, nil, nil, testNow)
	if progress.Current != 3 || progress.Percent != 60 || progress.Complete {
		t.Fatalf("3/5 custom goal: %+v", progress)
	}
}

func TestDSAGoalCountsEntriesInWindow(t *testing.T) {
	t.Parallel()

	goal := model.Goal{ID: "g", Title: "sprint", Type: model.GoalTypeDSA, Target: 10, CreatedAt: day(-5), Deadline: day(-1)}
	entries := []model.PracticeEntry{
		{ID: "1", Date: day(-6)}, // before createdAt
		{ID: "2", Date: day(-5)},
		{ID: "3", Date: day(-3)},
		{ID: "4", Date: day(-1)},
		{ID: "5", Date: day(0)}, // after deadline
	}
	progress := service.EvaluateGoal(goal, entries, nil, testNow)
	if progress.Current != 3 {
		t.Fatalf("expected 3 entries in window, got %d", progress.Current)
	}
	if progress.Percent != 30 {
		t.Fatalf("expected 30%%, got %d", progress.Percent)
	}

	// Without a deadline the window is open-ended.
	goal.Deadline = ""
	progress = service.EvaluateGoal(goal, entries, nil, testNow)
	if progress.Current != 4 {
		t.Fatalf("expected 4 entries with open window, got %d", progress.Current)
	}
}

func TestStudyGoalFloorsWholeHours(t *testing.T) {
	t.Parallel()

	goal := model.Goal{ID: "g", Title: "deep work", Type: model.GoalTypeStudy, Target: 2, CreatedAt: day(-3)}
	sessions := []model.PomodoroSession{
		{ID: "1", DurationMinutes: 50, Date: day(-2)},
		{ID: "2", DurationMinutes: 50, Date: day(-1)},
		{ID: "3", DurationMinutes: 25, Date: day(-4)}, // before createdAt
	}
	progress := service.EvaluateGoal(goal, nil, sessions, testNow)
	if progress.Current != 1 {
		t.Fatalf("expected floor(100m/60)=1 hour, got %d", progress.Current)
	}
	if progress.Percent != 50 {
		t.Fatalf("expected 50%%, got %d", progress.Percent)
	}
}

func TestPomodoroGoalCountsSessionsSinceCreation(t *testing.T) {
	t.Parallel()

	goal := model.Goal{ID: "g", Title: "sessions", Type: model.GoalTypePomodoro, Target: 4, CreatedAt: day(-1)}
	sessions := []model.PomodoroSession{
		{ID: "1", DurationMinutes: 25, Date: day(-2)},
		{ID: "2", DurationMinutes: 25, Date: day(-1)},
		{ID: "3", DurationMinutes: 25, Date: day(0)},
	}
	progress := service.EvaluateGoal(goal, nil, sessions, testNow)
	if progress.Current != 2 {
		t.Fatalf("expected 2 sessions since creation, got %d", progress.Current)
	}
}

func TestGoalPercentCapsAtHundred(t *testing.T) {
	t.Parallel()

	goal := model.Goal{ID: "g", Title: "overshoot", Type: model.GoalTypeCustom, Target: 2, CreatedAt: day(0), CurrentValue: 9}
	progress := service.EvaluateGoal(goal, nil, nil, testNow)
	if progress.Percent != 100 || !progress.Complete {
		t.Fatalf("expected capped 100%%, got %+v", progress)
	}
}

func TestIncrementGoalOnlyForCustomType(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	custom, err := service.CreateGoal(st, service.CreateGoalInput{Title: "notes", Type: model.GoalTypeCustom, Target: 3}, testNow)
	if err != nil {
		t.Fatalf("create custom goal: %v", err)
	}
	computed, err := service.CreateGoal(st, service.CreateGoalInput{Title: "solve", Type: model.GoalTypeDSA, Target: 3}, testNow)
	if err != nil {
		t.Fatalf("create dsa goal: %v", err)
	}

	if err := service.IncrementGoal(st, custom.ID); err != nil {
		t.Fatalf("increment custom goal: %v", err)
	}
	if err := service.IncrementGoal(st, computed.ID); err == nil {
		t.Fatal("expected error incrementing a computed goal")
	}

	goals, err := service.ListGoals(st)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	for _, g := range goals {
		switch g.ID {
		case custom.ID:
			if g.CurrentValue != 1 {
				t.Fatalf("custom goal counter: got %d", g.CurrentValue)
			}
		case computed.ID:
			if g.CurrentValue != 0 {
				t.Fatalf("computed goal counter mutated: %d", g.CurrentValue)
			}
		}
	}
}

func TestDeleteGoalNotFound(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := service.DeleteGoal(st, "missing"); err == nil {
		t.Fatal("expected not-found error")
	}
}
