package dto

import (
	"encoding/json"
	"testing"
)

func TestUpdateTaskRequest_AssigneePresence(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		assigneeSet bool
		assigneeNil bool
	}{
		{"omitted", `{"title":"x"}`, false, true},
		{"explicit null", `{"assigneeId":null}`, true, true},
		{"explicit id", `{"assigneeId":"u-1"}`, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateTaskRequest
			if err := json.Unmarshal([]byte(tt.payload), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if req.AssigneeSet != tt.assigneeSet {
				t.Errorf("AssigneeSet = %v, want %v", req.AssigneeSet, tt.assigneeSet)
			}
			if (req.AssigneeID == nil) != tt.assigneeNil {
				t.Errorf("AssigneeID = %v", req.AssigneeID)
			}
		})
	}
}
