package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	instanceModel "campustrack_backend/internals/features/academics/schedule_instances/model"
	scheduleModel "campustrack_backend/internals/features/academics/schedules/model"
	"campustrack_backend/internals/helpers/dates"
)

// InstanceIdentity is the six-column tuple that makes an instance unique.
type InstanceIdentity struct {
	ScheduleID   uuid.UUID
	TeacherID    uuid.UUID
	LocationID   uuid.UUID
	Date         time.Time
	StartTimeUTC dates.Tod
	EndTimeUTC   dates.Tod
}

// Store is the storage surface the materializer needs. The GORM
// implementation lives in the repository package; tests stub it.
type Store interface {
	TemplatesDueOn(ctx context.Context, day dates.DayOfWeek, date time.Time) ([]scheduleModel.ScheduleModel, error)
	RosterUserIDs(ctx context.Context, scheduleID uuid.UUID) ([]uuid.UUID, error)
	FindInstanceByIdentity(ctx context.Context, id InstanceIdentity) (*instanceModel.ScheduleInstanceModel, error)
	// CreateInstanceWithRoster persists the instance and its roster rows
	// in a single transaction. A unique violation on the identity index
	// must surface as gorm.ErrDuplicatedKey.
	CreateInstanceWithRoster(ctx context.Context, inst *instanceModel.ScheduleInstanceModel, userIDs []uuid.UUID) error
}

// PassSummary reports what one materialization pass did.
type PassSummary struct {
	Due     int
	Created int
	Skipped int
	Failed  int
}

func (s PassSummary) String() string {
	return fmt.Sprintf("due=%d created=%d skipped=%d failed=%d", s.Due, s.Created, s.Skipped, s.Failed)
}

// Materializer turns due schedule templates into schedule instances.
// Store and clock are injected so passes can run without a live trigger.
type Materializer struct {
	store Store
	now   func() time.Time
}

func NewMaterializer(store Store) *Materializer {
	return &Materializer{store: store, now: time.Now}
}

// WithClock overrides the clock. Test hook.
func (m *Materializer) WithClock(now func() time.Time) *Materializer {
	m.now = now
	return m
}

// MaterializePass runs one pass at the current instant.
func (m *Materializer) MaterializePass(ctx context.Context) (PassSummary, error) {
	return m.MaterializePassAt(ctx, m.now())
}

// MaterializePassAt runs one pass as of the given instant (anchored to
// UTC). A storage failure while listing due templates fails the whole
// pass; per-template failures are isolated, logged and counted so one
// bad template cannot starve its siblings.
func (m *Materializer) MaterializePassAt(ctx context.Context, now time.Time) (PassSummary, error) {
	var sum PassSummary

	nowUTC := now.UTC()
	today := dates.DateOnlyUTC(nowUTC)

	templates, err := m.store.TemplatesDueOn(ctx, dates.DayOf(nowUTC), today)
	if err != nil {
		return sum, fmt.Errorf("list due templates: %w", err)
	}
	sum.Due = len(templates)

	for i := range templates {
		created, err := m.materializeTemplate(ctx, &templates[i], today)
		switch {
		case err != nil:
			sum.Failed++
			log.Printf("[MATERIALIZER ERROR] schedule=%s: %v", templates[i].ScheduleID, err)
		case created:
			sum.Created++
		default:
			sum.Skipped++
		}
	}

	return sum, nil
}

// materializeTemplate creates today's instance for one template unless it
// already exists. Returns created=false when the instance was already
// present (directly or by losing the insert race).
func (m *Materializer) materializeTemplate(ctx context.Context, t *scheduleModel.ScheduleModel, today time.Time) (bool, error) {
	if !t.ScheduleIsReoccurring && t.ScheduleDate == nil {
		return false, fmt.Errorf("non-recurring template has no date")
	}

	// the due query already filters on weekday and date; re-check here so
	// a stale row handed to the pass cannot materialize off-schedule
	if !t.IsDueOn(dates.DayOf(today), today) {
		return false, nil
	}

	effectiveDate := today
	if !t.ScheduleIsReoccurring {
		effectiveDate = dates.DateOnlyUTC(*t.ScheduleDate)
	}

	identity := InstanceIdentity{
		ScheduleID:   t.ScheduleID,
		TeacherID:    t.ScheduleTeacherID,
		LocationID:   t.ScheduleLocationID,
		Date:         effectiveDate,
		StartTimeUTC: t.ScheduleStartTimeUTC,
		EndTimeUTC:   t.ScheduleEndTimeUTC,
	}

	existing, err := m.store.FindInstanceByIdentity(ctx, identity)
	if err != nil {
		return false, fmt.Errorf("identity lookup: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	roster, err := m.store.RosterUserIDs(ctx, t.ScheduleID)
	if err != nil {
		return false, fmt.Errorf("load roster: %w", err)
	}

	inst := &instanceModel.ScheduleInstanceModel{
		ScheduleInstanceScheduleID:   identity.ScheduleID,
		ScheduleInstanceTeacherID:    identity.TeacherID,
		ScheduleInstanceLocationID:   identity.LocationID,
		ScheduleInstanceDate:         identity.Date,
		ScheduleInstanceStartTimeUTC: identity.StartTimeUTC,
		ScheduleInstanceEndTimeUTC:   identity.EndTimeUTC,
	}

	if err := m.store.CreateInstanceWithRoster(ctx, inst, roster); err != nil {
		// a concurrent pass won the insert; first writer wins
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("create instance: %w", err)
	}

	return true, nil
}
