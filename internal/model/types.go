package model

// Collection names as persisted in the data file.
const (
	CollectionTasks    = "tasks"
	CollectionPractice = "dsa"
	CollectionSubjects = "subjects"
	CollectionProjects = "projects"
	CollectionPomodoro = "pomodoro"
	CollectionGoals    = "goals"
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

const (
	StatusSolved    = "Solved"
	StatusRevisit   = "Revisit"
	StatusAttempted = "Attempted"
)

const (
	UnitNotStarted = "Not Started"
	UnitInProgress = "In Progress"
	UnitCompleted  = "Completed"
)

const (
	GoalTypeDSA      = "dsa"
	GoalTypeStudy    = "study"
	GoalTypePomodoro = "pomodoro"
	GoalTypeCustom   = "custom"
)

// PracticeEntry is one logged coding problem. Dates are YYYY-MM-DD strings.
type PracticeEntry struct {
	ID          string `json:"id"`
	Platform    string `json:"platform"`
	Name        string `json:"name"`
	Topic       string `json:"topic"`
	Difficulty  string `json:"difficulty"`
	TimeMinutes int    `json:"time"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

func (e PracticeEntry) RecordID() string { return e.ID }

type Task struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"cat"`
	Priority string `json:"priority"`
	Date     string `json:"date"`
	Done     bool   `json:"done"`
}

func (t Task) RecordID() string { return t.ID }

// Subject owns its units; there is no separate unit collection.
type Subject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ExamDate string `json:"examDate,omitempty"`
	Color    string `json:"color"`
	Units    []Unit `json:"units"`
}

func (s Subject) RecordID() string { return s.ID }

type Unit struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Topics        string `json:"topics"`
	Status        string `json:"status"`
	RevisionCount int    `json:"revisions"`
}

type Project struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"desc"`
	StartDate   string      `json:"startDate,omitempty"`
	EndDate     string      `json:"endDate,omitempty"`
	ProgressPct int         `json:"progress"`
	Milestones  []Milestone `json:"milestones"`
}

func (p Project) RecordID() string { return p.ID }

type Milestone struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Deadline string `json:"deadline,omitempty"`
	Blockers string `json:"blockers"`
	Done     bool   `json:"done"`
}

// PomodoroSession is written only when a focus interval runs to zero.
type PomodoroSession struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	DurationMinutes int    `json:"duration"`
	Date            string `json:"date"`
	Timestamp       string `json:"ts"`
}

func (s PomodoroSession) RecordID() string { return s.ID }

// Goal progress is computed from other collections for dsa, study and
// pomodoro goals; CurrentValue is authoritative only for custom goals.
type Goal struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Target       int    `json:"target"`
	Deadline     string `json:"deadline,omitempty"`
	CreatedAt    string `json:"createdAt"`
	CurrentValue int    `json:"current"`
}

func (g Goal) RecordID() string { return g.ID }

func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

func ValidPracticeStatus(s string) bool {
	return s == StatusSolved || s == StatusRevisit || s == StatusAttempted
}

func ValidUnitStatus(s string) bool {
	return s == UnitNotStarted || s == UnitInProgress || s == UnitCompleted
}

func ValidGoalType(t string) bool {
	return t == GoalTypeDSA || t == GoalTypeStudy || t == GoalTypePomodoro || t == GoalTypeCustom
}
