package worker

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskReconciliationCycle = "reconciliation.cycle"

const TaskNotificationSend = "notification.send"

type NotificationPayload struct {
	PushToken string `json:"pushToken"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

func NewReconciliationCycleTask() *asynq.Task {
	return asynq.NewTask(TaskReconciliationCycle, nil)
}

func NewNotificationTask(payload NotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TaskNotificationSend, data), nil
}

func ParseNotificationPayload(task *asynq.Task) (NotificationPayload, error) {
	var payload NotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return NotificationPayload{}, err
	}

	return payload, nil
}
