package service

import (
	"sort"
	"time"

	"github.com/studyos/studyos/internal/model"
)

// All aggregators in this file are pure: they read the slices they are
// given, take the current day as an explicit parameter, and recompute from
// scratch on every call.

type HeatmapDay struct {
	Date  string
	Count int
	Level int
}

type TopicCount struct {
	Topic string
	Count int
}

type DifficultySplit struct {
	Easy   int
	Medium int
	Hard   int
}

type BreakdownReport struct {
	Total        int
	Topics       []TopicCount
	Difficulties DifficultySplit
	TotalMinutes int
	AvgMinutes   int
	ActiveDays   int
}

type WeakTopic struct {
	Topic      string
	Count      int
	NotStarted bool
}

type DayCount struct {
	Date  string
	Label string
	Count int
}

// Streak counts consecutive practice days ending at today or yesterday.
// Distinct days are walked newest-first; the first gap ends the run. A most
// recent day older than yesterday means the streak is already broken.
func Streak(entries []model.PracticeEntry, today time.Time) int {
	distinct := distinctDates(entries)
	if len(distinct) == 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.StringSlice(distinct)))

	first, err := time.Parse(dateLayout, distinct[0])
	if err != nil {
		return 0
	}
	offset := daysBetween(first, today)
	if offset != 0 && offset != 1 {
		return 0
	}

	streak := 0
	for i, ds := range distinct {
		d, err := time.Parse(dateLayout, ds)
		if err != nil {
			break
		}
		if daysBetween(d, today)-offset != i {
			break
		}
		streak++
	}
	return streak
}

// Heatmap buckets per-day entry counts for the window of `days` calendar
// days ending today, oldest first. Levels: 0→0, 1→1, 2–3→2, 4–5→3, 6+→4.
func Heatmap(entries []model.PracticeEntry, days int, today time.Time) []HeatmapDay {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Date]++
	}
	out := make([]HeatmapDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := DateOf(today.AddDate(0, 0, -i))
		n := counts[date]
		out = append(out, HeatmapDay{Date: date, Count: n, Level: heatLevel(n)})
	}
	return out
}

func heatLevel(n int) int {
	switch {
	case n == 0:
		return 0
	case n == 1:
		return 1
	case n <= 3:
		return 2
	case n <= 5:
		return 3
	default:
		return 4
	}
}

// Breakdown groups the practice log by topic and difficulty. Topics keep
// first-appearance order as a tiebreak and are sorted by count descending.
func Breakdown(entries []model.PracticeEntry) BreakdownReport {
	report := BreakdownReport{Total: len(entries)}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, e := range entries {
		if _, seen := counts[e.Topic]; !seen {
			order = append(order, e.Topic)
		}
		counts[e.Topic]++
		switch e.Difficulty {
		case model.DifficultyEasy:
			report.Difficulties.Easy++
		case model.DifficultyMedium:
			report.Difficulties.Medium++
		case model.DifficultyHard:
			report.Difficulties.Hard++
		}
		report.TotalMinutes += e.TimeMinutes
	}

	report.Topics = make([]TopicCount, 0, len(order))
	for _, topic := range order {
		report.Topics = append(report.Topics, TopicCount{Topic: topic, Count: counts[topic]})
	}
	sort.SliceStable(report.Topics, func(i, j int) bool {
		return report.Topics[i].Count > report.Topics[j].Count
	})

	if report.Total > 0 {
		report.AvgMinutes = int(float64(report.TotalMinutes)/float64(report.Total) + 0.5)
	}
	report.ActiveDays = len(distinctDates(entries))
	return report
}

// WeakTopics reports canonical topics with no entries ("not started") ahead
// of topics practiced fewer than threshold times, ascending by count. The
// two groups are capped separately for display.
func WeakTopics(entries []model.PracticeEntry, canonical []string, threshold, maxNotStarted, maxWeak int) []WeakTopic {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Topic]++
	}

	out := make([]WeakTopic, 0)
	notStarted := 0
	for _, topic := range canonical {
		if counts[topic] == 0 && notStarted < maxNotStarted {
			out = append(out, WeakTopic{Topic: topic, NotStarted: true})
			notStarted++
		}
	}

	weak := make([]WeakTopic, 0)
	for topic, n := range counts {
		if n > 0 && n < threshold {
			weak = append(weak, WeakTopic{Topic: topic, Count: n})
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		if weak[i].Count != weak[j].Count {
			return weak[i].Count < weak[j].Count
		}
		return weak[i].Topic < weak[j].Topic
	})
	if len(weak) > maxWeak {
		weak = weak[:maxWeak]
	}
	return append(out, weak...)
}

// DailyCounts is the last `days` days of entry counts ending today, oldest
// first, with a short weekday label for chart axes.
func DailyCounts(entries []model.PracticeEntry, days int, today time.Time) []DayCount {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Date]++
	}
	out := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		date := DateOf(d)
		out = append(out, DayCount{
			Date:  date,
			Label: d.Weekday().String()[:2],
			Count: counts[date],
		})
	}
	return out
}

func distinctDates(entries []model.PracticeEntry) []string {
	seen := make(map[string]bool)
	dates := make([]string, 0)
	for _, e := range entries {
		if !seen[e.Date] {
			seen[e.Date] = true
			dates = append(dates, e.Date)
		}
	}
	return dates
}
