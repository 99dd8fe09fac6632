package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"educrm_backend/internals/features/system/tasks/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TaskModel{}))
	return db
}

func pendingNow(t *testing.T, db *gorm.DB, taskID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Model(&model.TaskModel{}).
		Where("task_id = ?", taskID).
		Update("task_run_after", time.Now().Add(-time.Second)).Error)
}

func TestEnqueueAndDrain(t *testing.T) {
	db := newTestDB(t)

	type payload struct {
		Name string `json:"name"`
	}
	require.NoError(t, Enqueue(db, "test.echo", payload{Name: "hello"}))

	var got []string
	w := NewWorker(db)
	w.Register("test.echo", func(raw []byte) error {
		got = append(got, string(raw))
		return nil
	})
	w.Drain()

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "hello")

	var task model.TaskModel
	require.NoError(t, db.First(&task).Error)
	assert.Equal(t, model.TaskStatusDone, task.TaskStatus)
	assert.Equal(t, 1, task.TaskAttempts)
	assert.NotNil(t, task.TaskDoneAt)
}

func TestDrainRetriesWithBackoff(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Enqueue(db, "test.flaky", nil))

	w := NewWorker(db)
	w.Register("test.flaky", func(raw []byte) error {
		return errors.New("boom")
	})
	w.Drain()

	var task model.TaskModel
	require.NoError(t, db.First(&task).Error)
	assert.Equal(t, model.TaskStatusPending, task.TaskStatus)
	assert.Equal(t, 1, task.TaskAttempts)
	require.NotNil(t, task.TaskLastError)
	assert.Equal(t, "boom", *task.TaskLastError)
	assert.True(t, task.TaskRunAfter.After(time.Now()), "retry must be deferred")

	// deferred task is invisible until run_after passes
	w.Drain()
	require.NoError(t, db.First(&task).Error)
	assert.Equal(t, 1, task.TaskAttempts)
}

func TestDrainFailsAfterMaxAttempts(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Enqueue(db, "test.doomed", nil))

	w := NewWorker(db)
	w.MaxAttempts = 2
	w.Register("test.doomed", func(raw []byte) error {
		return errors.New("always")
	})

	var task model.TaskModel
	require.NoError(t, db.First(&task).Error)

	w.Drain()
	pendingNow(t, db, task.TaskID)
	w.Drain()

	require.NoError(t, db.First(&task).Error)
	assert.Equal(t, model.TaskStatusFailed, task.TaskStatus)
	assert.Equal(t, 2, task.TaskAttempts)
}

func TestDrainFailsUnknownTaskType(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Enqueue(db, "test.orphan", nil))

	w := NewWorker(db)
	w.Drain()

	var task model.TaskModel
	require.NoError(t, db.First(&task).Error)
	assert.Equal(t, model.TaskStatusFailed, task.TaskStatus)
	require.NotNil(t, task.TaskLastError)
	assert.Contains(t, *task.TaskLastError, "no handler")
}

func TestRequeueStale(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Enqueue(db, "test.stuck", nil))
	require.NoError(t, db.Model(&model.TaskModel{}).
		Where("1 = 1").
		Update("task_status", model.TaskStatusRunning).Error)

	time.Sleep(10 * time.Millisecond)

	w := NewWorker(db)
	w.RequeueStale(time.Millisecond)

	var task model.TaskModel
	require.NoError(t, db.First(&task).Error)
	assert.Equal(t, model.TaskStatusPending, task.TaskStatus)
}

func TestEnqueueRidesCallerTransaction(t *testing.T) {
	db := newTestDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := Enqueue(tx, "test.rollback", nil); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	var n int64
	require.NoError(t, db.Model(&model.TaskModel{}).Count(&n).Error)
	assert.EqualValues(t, 0, n, "rolled-back request leaves no outbox row")
}
