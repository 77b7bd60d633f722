package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/aonore/CRM-TRAMITES/constants"
	"github.com/aonore/CRM-TRAMITES/models"
	"github.com/aonore/CRM-TRAMITES/utils"
)

// ChangeStatus relabels a task to newStatus and applies the status-dependent
// side effects. Any status may be set from any other status; the UI offers
// all four as a flat menu and the service does not restrict edges.
//
// Side effects:
//   - LastActivity is always refreshed to now.
//   - First transition to finished stamps CompletionDate with today's date;
//     an already-set CompletionDate is never overwritten.
//   - Transition to paid stamps PaymentDate with the supplied date, or today
//     when none is supplied. PaymentDate is never cleared.
//
// The updated task and its transition are persisted in one transaction.
func ChangeStatus(db *gorm.DB, taskID, newStatus string, paymentDate *time.Time, now time.Time) (*models.Task, error) {
	if !constants.IsValidTaskStatus(newStatus) {
		return nil, Validationf("unknown task status %q", newStatus)
	}

	var task models.Task
	if err := db.First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "task", ID: taskID}
		}
		return nil, &IOError{Op: "load task", Err: err}
	}

	fromStatus := task.Status
	task.Status = newStatus
	task.LastActivity = now

	if newStatus == constants.TaskStatusFinished && task.CompletionDate == nil {
		today := utils.TruncateToDay(now)
		task.CompletionDate = &today
	}

	if newStatus == constants.TaskStatusPaid {
		if paymentDate != nil {
			d := utils.TruncateToDay(*paymentDate)
			task.PaymentDate = &d
		} else {
			today := utils.TruncateToDay(now)
			task.PaymentDate = &today
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&task).Error; err != nil {
			return err
		}
		activity := models.TaskActivity{
			TaskID:     task.ID,
			FromStatus: fromStatus,
			ToStatus:   newStatus,
		}
		return tx.Create(&activity).Error
	})
	if err != nil {
		return nil, &IOError{Op: "save task", Err: err}
	}

	return &task, nil
}
