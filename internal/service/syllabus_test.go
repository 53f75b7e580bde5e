package service_test

import (
	"testing"

	"github.com/studyos/studyos/internal/model"
	"github.com/studyos/studyos/internal/service"
)

func TestAddUnitToMissingSubjectFails(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	_, err := service.AddUnit(st, service.AddUnitInput{SubjectID: "ghost", Name: "Trees"})
	if err == nil {
		t.Fatal("expected not-found error for missing subject")
	}
	subjects, listErr := service.ListSubjects(st)
	if listErr != nil {
		t.Fatalf("list subjects: %v", listErr)
	}
	if len(subjects) != 0 {
		t.Fatalf("failed add mutated the store: %+v", subjects)
	}
}

func TestUnitLifecycleAndProgress(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	subject, err := service.CreateSubject(st, service.CreateSubjectInput{Name: "Operating Systems", ExamDate: day(10)})
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}

	var units []model.Unit
	for _, name := range []string{"Processes", "Memory", "File Systems", "Scheduling"} {
		u, err := service.AddUnit(st, service.AddUnitInput{SubjectID: subject.ID, Name: name})
		if err != nil {
			t.Fatalf("add unit %s: %v", name, err)
		}
		if u.Status != model.UnitNotStarted {
			t.Fatalf("new unit status: %s", u.Status)
		}
		units = append(units, u)
	}

	if err := service.UpdateUnitStatus(st, subject.ID, units[0].ID, model.UnitCompleted); err != nil {
		t.Fatalf("complete unit: %v", err)
	}
	if err := service.UpdateUnitStatus(st, subject.ID, units[1].ID, model.UnitInProgress); err != nil {
		t.Fatalf("start unit: %v", err)
	}
	if err := service.UpdateUnitStatus(st, subject.ID, units[0].ID, "Finished"); err == nil {
		t.Fatal("expected error for invalid status")
	}

	subjects, err := service.ListSubjects(st)
	if err != nil {
		t.Fatalf("list subjects: %v", err)
	}
	if len(subjects) != 1 || len(subjects[0].Units) != 4 {
		t.Fatalf("unexpected syllabus state: %+v", subjects)
	}
	if got := service.SubjectProgress(subjects[0]); got != 25 {
		t.Fatalf("expected 25%% progress, got %d", got)
	}
}

func TestSubjectProgressZeroWithoutUnits(t *testing.T) {
	t.Parallel()
	if got := service.SubjectProgress(model.Subject{ID: "s"}); got != 0 {
		t.Fatalf("expected 0%% for empty subject, got %d", got)
	}
}

func TestMarkRevisionIncrements(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	subject, err := service.CreateSubject(st, service.CreateSubjectInput{Name: "DBMS"})
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	unit, err := service.AddUnit(st, service.AddUnitInput{SubjectID: subject.ID, Name: "Indexing"})
	if err != nil {
		t.Fatalf("add unit: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := service.MarkRevision(st, subject.ID, unit.ID); err != nil {
			t.Fatalf("mark revision %d: %v", i+1, err)
		}
	}
	if err := service.MarkRevision(st, subject.ID, "ghost"); err == nil {
		t.Fatal("expected not-found error for missing unit")
	}

	subjects, err := service.ListSubjects(st)
	if err != nil {
		t.Fatalf("list subjects: %v", err)
	}
	if subjects[0].Units[0].RevisionCount != 3 {
		t.Fatalf("expected 3 revisions, got %d", subjects[0].Units[0].RevisionCount)
	}
}

func TestDeleteSubjectRemovesEmbeddedUnits(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	subject, err := service.CreateSubject(st, service.CreateSubjectInput{Name: "Networks"})
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	if _, err := service.AddUnit(st, service.AddUnitInput{SubjectID: subject.ID, Name: "TCP"}); err != nil {
		t.Fatalf("add unit: %v", err)
	}

	if err := service.DeleteSubject(st, subject.ID); err != nil {
		t.Fatalf("delete subject: %v", err)
	}
	subjects, err := service.ListSubjects(st)
	if err != nil {
		t.Fatalf("list subjects: %v", err)
	}
	if len(subjects) != 0 {
		t.Fatalf("subject still present: %+v", subjects)
	}
	if err := service.DeleteSubject(st, subject.ID); err == nil {
		t.Fatal("expected not-found error on second delete")
	}
}
