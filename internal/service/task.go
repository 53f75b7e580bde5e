package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/studyos/studyos/internal/model"
	"github.com/studyos/studyos/internal/store"
)

type CreateTaskInput struct {
	Name     string
	Category string
	Priority string
	Date     string
}

func CreateTask(st *store.Store, in CreateTaskInput, now time.Time) (model.Task, error) {
	var task model.Task

	name, err := requireText("task name", in.Name)
	if err != nil {
		return task, err
	}
	date, err := normalizeDate("date", in.Date, now)
	if err != nil {
		return task, err
	}

	task = model.Task{
		ID:       newID(),
		Name:     name,
		Category: strings.TrimSpace(in.Category),
		Priority: strings.TrimSpace(in.Priority),
		Date:     date,
		Done:     false,
	}
	return store.Save(st, model.CollectionTasks, task)
}

// ListTasks returns tasks in insertion order, optionally restricted to one day.
func ListTasks(st *store.Store, date string) ([]model.Task, error) {
	tasks, err := store.Get[model.Task](st, model.CollectionTasks)
	if err != nil {
		return nil, err
	}
	if date == "" {
		return tasks, nil
	}
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Date == date {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func ToggleTask(st *store.Store, id string, done bool) error {
	tasks, err := store.Get[model.Task](st, model.CollectionTasks)
	if err != nil {
		return err
	}
	found := false
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Done = done
			found = true
		}
	}
	if !found {
		return fmt.Errorf("task %q not found", id)
	}
	return store.Set(st, model.CollectionTasks, tasks)
}

func DeleteTask(st *store.Store, id string) error {
	tasks, err := store.Get[model.Task](st, model.CollectionTasks)
	if err != nil {
		return err
	}
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("task %q not found", id)
	}
	return store.Delete[model.Task](st, model.CollectionTasks, id)
}
