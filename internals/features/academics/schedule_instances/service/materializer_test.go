package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	instanceModel "campustrack_backend/internals/features/academics/schedule_instances/model"
	scheduleModel "campustrack_backend/internals/features/academics/schedules/model"
	"campustrack_backend/internals/helpers/dates"
)

type stubStore struct {
	templates []scheduleModel.ScheduleModel
	listErr   error

	rosters   map[uuid.UUID][]uuid.UUID
	rosterErr map[uuid.UUID]error

	created   []*instanceModel.ScheduleInstanceModel
	rosterLog map[uuid.UUID][]uuid.UUID
	createErr map[uuid.UUID]error

	lastListDay  dates.DayOfWeek
	lastListDate time.Time
}

func newStubStore() *stubStore {
	return &stubStore{
		rosters:   map[uuid.UUID][]uuid.UUID{},
		rosterErr: map[uuid.UUID]error{},
		rosterLog: map[uuid.UUID][]uuid.UUID{},
		createErr: map[uuid.UUID]error{},
	}
}

func (s *stubStore) TemplatesDueOn(_ context.Context, day dates.DayOfWeek, date time.Time) ([]scheduleModel.ScheduleModel, error) {
	s.lastListDay = day
	s.lastListDate = date
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.templates, nil
}

func (s *stubStore) RosterUserIDs(_ context.Context, scheduleID uuid.UUID) ([]uuid.UUID, error) {
	if err := s.rosterErr[scheduleID]; err != nil {
		return nil, err
	}
	return s.rosters[scheduleID], nil
}

func (s *stubStore) FindInstanceByIdentity(_ context.Context, id InstanceIdentity) (*instanceModel.ScheduleInstanceModel, error) {
	for _, inst := range s.created {
		if inst.ScheduleInstanceScheduleID == id.ScheduleID &&
			inst.ScheduleInstanceTeacherID == id.TeacherID &&
			inst.ScheduleInstanceLocationID == id.LocationID &&
			inst.ScheduleInstanceDate.Equal(id.Date) &&
			inst.ScheduleInstanceStartTimeUTC.Equal(id.StartTimeUTC) &&
			inst.ScheduleInstanceEndTimeUTC.Equal(id.EndTimeUTC) {
			return inst, nil
		}
	}
	return nil, nil
}

func (s *stubStore) CreateInstanceWithRoster(_ context.Context, inst *instanceModel.ScheduleInstanceModel, userIDs []uuid.UUID) error {
	if err := s.createErr[inst.ScheduleInstanceScheduleID]; err != nil {
		return err
	}
	inst.ScheduleInstanceID = uuid.New()
	s.created = append(s.created, inst)
	s.rosterLog[inst.ScheduleInstanceScheduleID] = userIDs
	return nil
}

func fixedNow() time.Time {
	// a Monday
	return time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
}

func recurringTemplate(day dates.DayOfWeek) scheduleModel.ScheduleModel {
	return scheduleModel.ScheduleModel{
		ScheduleID:            uuid.New(),
		ScheduleTeacherID:     uuid.New(),
		ScheduleLocationID:    uuid.New(),
		ScheduleIsReoccurring: true,
		ScheduleDay:           day,
		ScheduleStartTimeUTC:  dates.TodOf(10, 0, 0),
		ScheduleEndTimeUTC:    dates.TodOf(11, 0, 0),
	}
}

func oneOffTemplate(date time.Time) scheduleModel.ScheduleModel {
	d := date
	return scheduleModel.ScheduleModel{
		ScheduleID:            uuid.New(),
		ScheduleTeacherID:     uuid.New(),
		ScheduleLocationID:    uuid.New(),
		ScheduleIsReoccurring: false,
		ScheduleDate:          &d,
		ScheduleDay:           dates.DayOf(date),
		ScheduleStartTimeUTC:  dates.TodOf(14, 0, 0),
		ScheduleEndTimeUTC:    dates.TodOf(15, 30, 0),
	}
}

func TestMaterializePassCreatesDueTemplates(t *testing.T) {
	store := newStubStore()
	now := fixedNow()

	recurring := recurringTemplate(dates.Monday)
	oneOff := oneOffTemplate(dates.DateOnlyUTC(now))
	store.templates = []scheduleModel.ScheduleModel{recurring, oneOff}

	students := []uuid.UUID{uuid.New(), uuid.New()}
	store.rosters[recurring.ScheduleID] = append([]uuid.UUID{recurring.ScheduleTeacherID}, students...)
	store.rosters[oneOff.ScheduleID] = []uuid.UUID{oneOff.ScheduleTeacherID}

	m := NewMaterializer(store)
	sum, err := m.MaterializePassAt(context.Background(), now)
	if err != nil {
		t.Fatalf("pass failed: %v", err)
	}

	want := PassSummary{Due: 2, Created: 2}
	if sum != want {
		t.Fatalf("summary = %+v, want %+v", sum, want)
	}
	if store.lastListDay != dates.Monday {
		t.Errorf("listed day = %s, want monday", store.lastListDay)
	}
	if !store.lastListDate.Equal(dates.DateOnlyUTC(now)) {
		t.Errorf("listed date = %v, want %v", store.lastListDate, dates.DateOnlyUTC(now))
	}
	if len(store.created) != 2 {
		t.Fatalf("created %d instances, want 2", len(store.created))
	}

	inst := store.created[0]
	if inst.ScheduleInstanceScheduleID != recurring.ScheduleID ||
		inst.ScheduleInstanceTeacherID != recurring.ScheduleTeacherID ||
		inst.ScheduleInstanceLocationID != recurring.ScheduleLocationID {
		t.Errorf("instance references do not match template")
	}
	if !inst.ScheduleInstanceDate.Equal(dates.DateOnlyUTC(now)) {
		t.Errorf("recurring instance date = %v, want today", inst.ScheduleInstanceDate)
	}
	if !inst.ScheduleInstanceStartTimeUTC.Equal(recurring.ScheduleStartTimeUTC) ||
		!inst.ScheduleInstanceEndTimeUTC.Equal(recurring.ScheduleEndTimeUTC) {
		t.Errorf("instance times do not match template")
	}
}

func TestMaterializePassSnapshotsRoster(t *testing.T) {
	store := newStubStore()
	now := fixedNow()

	tmpl := recurringTemplate(dates.Monday)
	store.templates = []scheduleModel.ScheduleModel{tmpl}
	roster := []uuid.UUID{tmpl.ScheduleTeacherID, uuid.New(), uuid.New(), uuid.New()}
	store.rosters[tmpl.ScheduleID] = roster

	m := NewMaterializer(store)
	if _, err := m.MaterializePassAt(context.Background(), now); err != nil {
		t.Fatalf("pass failed: %v", err)
	}

	got := store.rosterLog[tmpl.ScheduleID]
	if len(got) != len(roster) {
		t.Fatalf("snapshotted %d roster members, want %d", len(got), len(roster))
	}
	for i := range roster {
		if got[i] != roster[i] {
			t.Errorf("roster[%d] = %s, want %s", i, got[i], roster[i])
		}
	}
}

func TestMaterializePassIsIdempotent(t *testing.T) {
	store := newStubStore()
	now := fixedNow()

	tmpl := recurringTemplate(dates.Monday)
	store.templates = []scheduleModel.ScheduleModel{tmpl}
	store.rosters[tmpl.ScheduleID] = []uuid.UUID{tmpl.ScheduleTeacherID}

	m := NewMaterializer(store)

	first, err := m.MaterializePassAt(context.Background(), now)
	if err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	if first.Created != 1 {
		t.Fatalf("first pass created = %d, want 1", first.Created)
	}

	// later the same day: nothing new
	second, err := m.MaterializePassAt(context.Background(), now.Add(40*time.Minute))
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if second.Created != 0 || second.Skipped != 1 {
		t.Fatalf("second pass = %+v, want created=0 skipped=1", second)
	}
	if len(store.created) != 1 {
		t.Fatalf("total instances = %d, want 1", len(store.created))
	}
}

func TestMaterializeOneOffUsesTemplateDate(t *testing.T) {
	store := newStubStore()
	now := fixedNow()

	date := dates.DateOnlyUTC(now)
	tmpl := oneOffTemplate(date)
	store.templates = []scheduleModel.ScheduleModel{tmpl}
	store.rosters[tmpl.ScheduleID] = []uuid.UUID{tmpl.ScheduleTeacherID}

	m := NewMaterializer(store)
	if _, err := m.MaterializePassAt(context.Background(), now); err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	if len(store.created) != 1 {
		t.Fatalf("created %d instances, want 1", len(store.created))
	}
	if !store.created[0].ScheduleInstanceDate.Equal(date) {
		t.Errorf("instance date = %v, want template date %v", store.created[0].ScheduleInstanceDate, date)
	}
}

func TestMaterializeSkipsOneOffPastItsDate(t *testing.T) {
	store := newStubStore()

	// one-off dated Tuesday 2024-03-05, pass runs Wednesday 2024-03-06;
	// nothing may materialize even when the listing hands the row over
	tmpl := oneOffTemplate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	store.templates = []scheduleModel.ScheduleModel{tmpl}
	store.rosters[tmpl.ScheduleID] = []uuid.UUID{tmpl.ScheduleTeacherID}

	m := NewMaterializer(store)
	sum, err := m.MaterializePassAt(context.Background(), time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("pass failed: %v", err)
	}

	want := PassSummary{Due: 1, Skipped: 1}
	if sum != want {
		t.Fatalf("summary = %+v, want %+v", sum, want)
	}
	if len(store.created) != 0 {
		t.Fatalf("created %d instances, want 0", len(store.created))
	}
}

func TestMaterializeSkipsOneOffWithMismatchedWeekday(t *testing.T) {
	store := newStubStore()
	now := fixedNow() // a Monday

	tmpl := oneOffTemplate(dates.DateOnlyUTC(now))
	tmpl.ScheduleDay = dates.Friday // inconsistent with its own date
	store.templates = []scheduleModel.ScheduleModel{tmpl}
	store.rosters[tmpl.ScheduleID] = []uuid.UUID{tmpl.ScheduleTeacherID}

	m := NewMaterializer(store)
	sum, err := m.MaterializePassAt(context.Background(), now)
	if err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	if sum.Created != 0 || sum.Skipped != 1 {
		t.Fatalf("summary = %+v, want created=0 skipped=1", sum)
	}
	if len(store.created) != 0 {
		t.Fatalf("created %d instances, want 0", len(store.created))
	}
}

func TestMaterializeSkipsRecurringOnWrongWeekday(t *testing.T) {
	store := newStubStore()

	tmpl := recurringTemplate(dates.Tuesday)
	store.templates = []scheduleModel.ScheduleModel{tmpl}
	store.rosters[tmpl.ScheduleID] = []uuid.UUID{tmpl.ScheduleTeacherID}

	m := NewMaterializer(store)
	sum, err := m.MaterializePassAt(context.Background(), fixedNow()) // a Monday
	if err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	if sum.Created != 0 || sum.Skipped != 1 {
		t.Fatalf("summary = %+v, want created=0 skipped=1", sum)
	}
	if len(store.created) != 0 {
		t.Fatalf("created %d instances, want 0", len(store.created))
	}
}

func TestMaterializeOneOffWithoutDateFails(t *testing.T) {
	store := newStubStore()

	tmpl := recurringTemplate(dates.Monday)
	tmpl.ScheduleIsReoccurring = false
	tmpl.ScheduleDate = nil
	store.templates = []scheduleModel.ScheduleModel{tmpl}

	m := NewMaterializer(store)
	sum, err := m.MaterializePassAt(context.Background(), fixedNow())
	if err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	if sum.Failed != 1 || sum.Created != 0 {
		t.Fatalf("summary = %+v, want failed=1 created=0", sum)
	}
	if len(store.created) != 0 {
		t.Fatalf("created %d instances, want 0", len(store.created))
	}
}

func TestMaterializeDuplicateKeyRaceIsSkip(t *testing.T) {
	store := newStubStore()

	tmpl := recurringTemplate(dates.Monday)
	store.templates = []scheduleModel.ScheduleModel{tmpl}
	store.rosters[tmpl.ScheduleID] = []uuid.UUID{tmpl.ScheduleTeacherID}
	store.createErr[tmpl.ScheduleID] = gorm.ErrDuplicatedKey

	m := NewMaterializer(store)
	sum, err := m.MaterializePassAt(context.Background(), fixedNow())
	if err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	if sum.Skipped != 1 || sum.Failed != 0 || sum.Created != 0 {
		t.Fatalf("summary = %+v, want skipped=1 failed=0 created=0", sum)
	}
}

func TestMaterializePassIsolatesTemplateFailures(t *testing.T) {
	store := newStubStore()

	good1 := recurringTemplate(dates.Monday)
	bad := recurringTemplate(dates.Monday)
	good2 := recurringTemplate(dates.Monday)
	store.templates = []scheduleModel.ScheduleModel{good1, bad, good2}

	store.rosters[good1.ScheduleID] = []uuid.UUID{good1.ScheduleTeacherID}
	store.rosters[good2.ScheduleID] = []uuid.UUID{good2.ScheduleTeacherID}
	store.rosterErr[bad.ScheduleID] = errors.New("roster query failed")

	m := NewMaterializer(store)
	sum, err := m.MaterializePassAt(context.Background(), fixedNow())
	if err != nil {
		t.Fatalf("pass failed: %v", err)
	}

	want := PassSummary{Due: 3, Created: 2, Failed: 1}
	if sum != want {
		t.Fatalf("summary = %+v, want %+v", sum, want)
	}
	if len(store.created) != 2 {
		t.Fatalf("created %d instances, want 2", len(store.created))
	}
}

func TestMaterializePassFailsWhenListingFails(t *testing.T) {
	store := newStubStore()
	store.listErr = errors.New("db down")

	m := NewMaterializer(store)
	if _, err := m.MaterializePassAt(context.Background(), fixedNow()); err == nil {
		t.Fatal("expected pass error when template listing fails")
	}
}

func TestMaterializePassUsesInjectedClock(t *testing.T) {
	store := newStubStore()

	m := NewMaterializer(store).WithClock(fixedNow)
	if _, err := m.MaterializePass(context.Background()); err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	if store.lastListDay != dates.Monday {
		t.Errorf("listed day = %s, want monday", store.lastListDay)
	}
}
