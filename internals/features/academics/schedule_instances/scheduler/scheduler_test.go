package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	instanceModel "campustrack_backend/internals/features/academics/schedule_instances/model"
	"campustrack_backend/internals/features/academics/schedule_instances/service"
	scheduleModel "campustrack_backend/internals/features/academics/schedules/model"
	"campustrack_backend/internals/helpers/dates"
)

type countingStore struct {
	passes atomic.Int64
}

func (s *countingStore) TemplatesDueOn(context.Context, dates.DayOfWeek, time.Time) ([]scheduleModel.ScheduleModel, error) {
	s.passes.Add(1)
	return nil, nil
}

func (s *countingStore) RosterUserIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (s *countingStore) FindInstanceByIdentity(context.Context, service.InstanceIdentity) (*instanceModel.ScheduleInstanceModel, error) {
	return nil, nil
}

func (s *countingStore) CreateInstanceWithRoster(context.Context, *instanceModel.ScheduleInstanceModel, []uuid.UUID) error {
	return nil
}

func TestStartInstanceMaterializerRunsAndStops(t *testing.T) {
	store := &countingStore{}
	m := service.NewMaterializer(store)

	ctx, cancel := context.WithCancel(context.Background())
	StartInstanceMaterializer(ctx, m, 10*time.Millisecond)

	deadline := time.After(2 * time.Second)
	for store.passes.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d passes before deadline, want >= 3", store.passes.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	time.Sleep(50 * time.Millisecond)
	stopped := store.passes.Load()
	time.Sleep(50 * time.Millisecond)
	if got := store.passes.Load(); got != stopped {
		t.Fatalf("passes kept running after cancel: %d -> %d", stopped, got)
	}
}
