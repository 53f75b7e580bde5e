package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/studyos/studyos/internal/model"
	"github.com/studyos/studyos/internal/store"
)

type CreateSubjectInput struct {
	Name     string
	ExamDate string
	Color    string
}

type AddUnitInput struct {
	SubjectID string
	Name      string
	Topics    string
}

func CreateSubject(st *store.Store, in CreateSubjectInput) (model.Subject, error) {
	var subject model.Subject

	name, err := requireText("subject name", in.Name)
	if err != nil {
		return subject, err
	}
	examDate, err := validateOptionalDate("exam date", in.ExamDate)
	if err != nil {
		return subject, err
	}
	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = "#7c6aff"
	}

	subject = model.Subject{
		ID:       newID(),
		Name:     name,
		ExamDate: examDate,
		Color:    color,
		Units:    []model.Unit{},
	}
	return store.Save(st, model.CollectionSubjects, subject)
}

func ListSubjects(st *store.Store) ([]model.Subject, error) {
	return store.Get[model.Subject](st, model.CollectionSubjects)
}

func DeleteSubject(st *store.Store, id string) error {
	subjects, err := store.Get[model.Subject](st, model.CollectionSubjects)
	if err != nil {
		return err
	}
	if _, err := findSubject(subjects, id); err != nil {
		return err
	}
	return store.Delete[model.Subject](st, model.CollectionSubjects, id)
}

func AddUnit(st *store.Store, in AddUnitInput) (model.Unit, error) {
	var unit model.Unit

	name, err := requireText("unit name", in.Name)
	if err != nil {
		return unit, err
	}

	subjects, err := store.Get[model.Subject](st, model.CollectionSubjects)
	if err != nil {
		return unit, err
	}
	idx, err := findSubject(subjects, in.SubjectID)
	if err != nil {
		return unit, err
	}

	unit = model.Unit{
		ID:     newID(),
		Name:   name,
		Topics: strings.TrimSpace(in.Topics),
		Status: model.UnitNotStarted,
	}
	subjects[idx].Units = append(subjects[idx].Units, unit)
	if err := store.Set(st, model.CollectionSubjects, subjects); err != nil {
		return unit, err
	}
	return unit, nil
}

func UpdateUnitStatus(st *store.Store, subjectID, unitID, status string) error {
	if !model.ValidUnitStatus(status) {
		return fmt.Errorf("invalid unit status %q (expected Not Started, In Progress or Completed)", status)
	}
	return updateUnit(st, subjectID, unitID, func(u *model.Unit) {
		u.Status = status
	})
}

// MarkRevision bumps the unit's revision counter; it never decreases.
func MarkRevision(st *store.Store, subjectID, unitID string) error {
	return updateUnit(st, subjectID, unitID, func(u *model.Unit) {
		u.RevisionCount++
	})
}

func updateUnit(st *store.Store, subjectID, unitID string, apply func(*model.Unit)) error {
	subjects, err := store.Get[model.Subject](st, model.CollectionSubjects)
	if err != nil {
		return err
	}
	idx, err := findSubject(subjects, subjectID)
	if err != nil {
		return err
	}
	for i := range subjects[idx].Units {
		if subjects[idx].Units[i].ID == unitID {
			apply(&subjects[idx].Units[i])
			return store.Set(st, model.CollectionSubjects, subjects)
		}
	}
	return fmt.Errorf("unit %q not found in subject %q", unitID, subjectID)
}

func findSubject(subjects []model.Subject, id string) (int, error) {
	for i := range subjects {
		if subjects[i].ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("subject %q not found", id)
}

// SubjectProgress is the percentage of units completed, 0 for no units.
func SubjectProgress(s model.Subject) int {
	if len(s.Units) == 0 {
		return 0
	}
	done := 0
	for _, u := range s.Units {
		if u.Status == model.UnitCompleted {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(s.Units)) * 100))
}
