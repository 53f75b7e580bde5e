package service

import (
	"sort"
	"time"

	"github.com/studyos/studyos/internal/model"
	"github.com/studyos/studyos/internal/store"
)

const (
	DeadlineExam      = "exam"
	DeadlineProject   = "project"
	DeadlineMilestone = "milestone"
	DeadlineGoal      = "goal"
)

const (
	UrgencyUrgent  = "urgent"
	UrgencyWarning = "warning"
	UrgencyNormal  = "normal"
)

type Deadline struct {
	Name     string
	Date     string
	Type     string
	DaysLeft int
	Urgency  string
}

type SubjectStatus struct {
	Subject  model.Subject
	Done     int
	Progress int
}

// DashboardSummary is the aggregate view over every collection.
type DashboardSummary struct {
	Date              string
	TodayPractice     int
	TotalPractice     int
	SessionsToday     int
	FocusMinutesToday int
	TasksToday        []model.Task
	TasksDoneToday    int
	Streak            int
	Deadlines         []Deadline
	Heatmap           []HeatmapDay
	Subjects          []SubjectStatus
}

// UpcomingDeadlines merges exam dates, project end dates, milestone
// deadlines and goal deadlines, keeps dates >= today, sorts ascending and
// returns at most limit items.
func UpcomingDeadlines(subjects []model.Subject, projects []model.Project, goals []model.Goal, today time.Time, limit int) []Deadline {
	all := make([]Deadline, 0)
	add := func(name, date, kind string) {
		if date == "" {
			return
		}
		all = append(all, Deadline{Name: name, Date: date, Type: kind})
	}
	for _, s := range subjects {
		add(s.Name+" Exam", s.ExamDate, DeadlineExam)
	}
	for _, p := range projects {
		add(p.Name, p.EndDate, DeadlineProject)
		for _, m := range p.Milestones {
			add(p.Name+": "+m.Name, m.Deadline, DeadlineMilestone)
		}
	}
	for _, g := range goals {
		add(g.Title, g.Deadline, DeadlineGoal)
	}

	todayStr := DateOf(today)
	upcoming := make([]Deadline, 0, len(all))
	for _, d := range all {
		if d.Date < todayStr {
			continue
		}
		days, err := daysUntil(d.Date, today)
		if err != nil {
			continue
		}
		d.DaysLeft = days
		d.Urgency = urgencyFor(days)
		upcoming = append(upcoming, d)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

func urgencyFor(daysLeft int) string {
	switch {
	case daysLeft <= 3:
		return UrgencyUrgent
	case daysLeft <= 7:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}

// BuildDashboard recomputes the aggregate view from current store state.
// Calling it twice without intervening writes yields identical values.
func BuildDashboard(st *store.Store, now time.Time, heatmapDays, deadlineLimit int) (*DashboardSummary, error) {
	entries, err := store.Get[model.PracticeEntry](st, model.CollectionPractice)
	if err != nil {
		return nil, err
	}
	sessions, err := store.Get[model.PomodoroSession](st, model.CollectionPomodoro)
	if err != nil {
		return nil, err
	}
	tasks, err := store.Get[model.Task](st, model.CollectionTasks)
	if err != nil {
		return nil, err
	}
	subjects, err := store.Get[model.Subject](st, model.CollectionSubjects)
	if err != nil {
		return nil, err
	}
	projects, err := store.Get[model.Project](st, model.CollectionProjects)
	if err != nil {
		return nil, err
	}
	goals, err := store.Get[model.Goal](st, model.CollectionGoals)
	if err != nil {
		return nil, err
	}

	today := DateOf(now)
	summary := &DashboardSummary{
		Date:          today,
		TotalPractice: len(entries),
		Streak:        Streak(entries, now),
		Deadlines:     UpcomingDeadlines(subjects, projects, goals, now, deadlineLimit),
		Heatmap:       Heatmap(entries, heatmapDays, now),
	}

	for _, e := range entries {
		if e.Date == today {
			summary.TodayPractice++
		}
	}
	for _, s := range sessions {
		if s.Date == today {
			summary.SessionsToday++
			summary.FocusMinutesToday += s.DurationMinutes
		}
	}
	for _, t := range tasks {
		if t.Date == today {
			summary.TasksToday = append(summary.TasksToday, t)
			if t.Done {
				summary.TasksDoneToday++
			}
		}
	}
	for _, s := range subjects {
		done := 0
		for _, u := range s.Units {
			if u.Status == model.UnitCompleted {
				done++
			}
		}
		summary.Subjects = append(summary.Subjects, SubjectStatus{
			Subject:  s,
			Done:     done,
			Progress: SubjectProgress(s),
		})
	}
	return summary, nil
}
