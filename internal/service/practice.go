package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/studyos/studyos/internal/model"
	"github.com/studyos/studyos/internal/store"
)

type CreatePracticeInput struct {
	Platform    string
	Name        string
	Topic       string
	Difficulty  string
	TimeMinutes int
	Date        string
	Status      string
	Notes       string
}

type ListPracticeFilter struct {
	Topic      string
	Difficulty string
	Date       string
}

func CreatePracticeEntry(st *store.Store, in CreatePracticeInput, now time.Time) (model.PracticeEntry, error) {
	var entry model.PracticeEntry

	name, err := requireText("problem name", in.Name)
	if err != nil {
		return entry, err
	}
	topic, err := requireText("topic", in.Topic)
	if err != nil {
		return entry, err
	}
	if !model.ValidDifficulty(in.Difficulty) {
		return entry, fmt.Errorf("invalid difficulty %q (expected Easy, Medium or Hard)", in.Difficulty)
	}
	if in.Status == "" {
		in.Status = model.StatusSolved
	}
	if !model.ValidPracticeStatus(in.Status) {
		return entry, fmt.Errorf("invalid status %q (expected Solved, Revisit or Attempted)", in.Status)
	}
	if err := validateNonNegativeInt("time", in.TimeMinutes); err != nil {
		return entry, err
	}
	date, err := normalizeDate("date", in.Date, now)
	if err != nil {
		return entry, err
	}

	entry = model.PracticeEntry{
		ID:          newID(),
		Platform:    strings.TrimSpace(in.Platform),
		Name:        name,
		Topic:       topic,
		Difficulty:  in.Difficulty,
		TimeMinutes: in.TimeMinutes,
		Date:        date,
		Status:      in.Status,
		Notes:       strings.TrimSpace(in.Notes),
	}
	return store.Save(st, model.CollectionPractice, entry)
}

// ListPracticeEntries returns entries newest-first, optionally filtered.
func ListPracticeEntries(st *store.Store, f ListPracticeFilter) ([]model.PracticeEntry, error) {
	entries, err := store.Get[model.PracticeEntry](st, model.CollectionPractice)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.PracticeEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if f.Topic != "" && e.Topic != f.Topic {
			continue
		}
		if f.Difficulty != "" && e.Difficulty != f.Difficulty {
			continue
		}
		if f.Date != "" && e.Date != f.Date {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

func DeletePracticeEntry(st *store.Store, id string) error {
	entries, err := store.Get[model.PracticeEntry](st, model.CollectionPractice)
	if err != nil {
		return err
	}
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("practice entry %q not found", id)
	}
	return store.Delete[model.PracticeEntry](st, model.CollectionPractice, id)
}

// PracticeTopics returns the distinct topics seen in the log, sorted.
func PracticeTopics(st *store.Store) ([]string, error) {
	entries, err := store.Get[model.PracticeEntry](st, model.CollectionPractice)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	topics := make([]string, 0)
	for _, e := range entries {
		if !seen[e.Topic] {
			seen[e.Topic] = true
			topics = append(topics, e.Topic)
		}
	}
	sort.Strings(topics)
	return topics, nil
}
