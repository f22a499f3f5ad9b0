package nlp_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/cortex/pkg/nlp"
	"github.com/m-mizutani/gt"
)

func TestExtractTaskFields(t *testing.T) {
	fields := nlp.ExtractTaskFields("buy milk due 2024-05-01 at 5:00pm priority high")

	gt.Equal(t, fields.Description, "buy milk")
	gt.Equal(t, fields.Priority, model.PriorityHigh)
	gt.V(t, fields.DueAt).NotNil()
	gt.Equal(t, *fields.DueAt, time.Date(2024, 5, 1, 17, 0, 0, 0, time.Local))
}

func TestExtractTaskFieldsSlashDate(t *testing.T) {
	fields := nlp.ExtractTaskFields("call mom due 05/01/2024 at 10:00 priority low")

	gt.Equal(t, fields.Description, "call mom")
	gt.Equal(t, fields.Priority, model.PriorityLow)
	gt.V(t, fields.DueAt).NotNil()
	gt.Equal(t, *fields.DueAt, time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local))
}

func TestExtractTaskFieldsTwoDigitYear(t *testing.T) {
	fields := nlp.ExtractTaskFields("file report due 3/15/26 at 9:00am")

	gt.Equal(t, fields.Description, "file report")
	gt.Equal(t, fields.Priority, model.PriorityMedium)
	gt.V(t, fields.DueAt).NotNil()
	gt.Equal(t, *fields.DueAt, time.Date(2026, 3, 15, 9, 0, 0, 0, time.Local))
}

func TestExtractTaskFieldsDefaults(t *testing.T) {
	fields := nlp.ExtractTaskFields("water the plants")

	gt.Equal(t, fields.Description, "water the plants")
	gt.Equal(t, fields.Priority, model.PriorityMedium)
	gt.V(t, fields.DueAt).Nil()
}

func TestExtractTaskFieldsBadDateDropsDueOnly(t *testing.T) {
	// 13/45 is not a valid month/day; the fragment still matches the
	// grammar so it is removed, but no due date is produced
	fields := nlp.ExtractTaskFields("pay rent due 13/45/2024 at 10:00 with priority high")

	gt.Equal(t, fields.Description, "pay rent")
	gt.Equal(t, fields.Priority, model.PriorityHigh)
	gt.V(t, fields.DueAt).Nil()
}

func TestExtractTaskUpdates(t *testing.T) {
	patch := nlp.ExtractTaskUpdates("due 2024-06-02 at 14:30 priority high status in progress")

	gt.V(t, patch.DueAt).NotNil()
	gt.Equal(t, *patch.DueAt, time.Date(2024, 6, 2, 14, 30, 0, 0, time.Local))
	gt.V(t, patch.Priority).NotNil()
	gt.Equal(t, *patch.Priority, model.PriorityHigh)
	gt.V(t, patch.Status).NotNil()
	gt.Equal(t, *patch.Status, model.StatusInProgress)
}

func TestExtractTaskUpdatesPartial(t *testing.T) {
	patch := nlp.ExtractTaskUpdates("status completed")

	gt.V(t, patch.DueAt).Nil()
	gt.V(t, patch.Priority).Nil()
	gt.V(t, patch.Status).NotNil()
	gt.Equal(t, *patch.Status, model.StatusCompleted)
}

func TestExtractTaskUpdatesEmpty(t *testing.T) {
	patch := nlp.ExtractTaskUpdates("something unrelated")
	gt.True(t, patch.Empty())
}
