package plain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityName(t *testing.T) {
	tests := []struct {
		priority int
		expected string
		wantErr  bool
	}{
		{0, "urgent", false},
		{1, "high", false},
		{2, "normal", false},
		{3, "low", false},
		{-1, "", true},
		{4, "", true},
		{100, "", true},
	}

	for _, test := range tests {
		name, err := PriorityName(test.priority)
		if test.wantErr {
			assert.Error(t, err, "priority %d", test.priority)
			continue
		}
		require.NoError(t, err, "priority %d", test.priority)
		assert.Equal(t, test.expected, name)
	}
}

func TestThreadStatusFromFilter(t *testing.T) {
	tests := []struct {
		filter   string
		expected string
		wantErr  bool
	}{
		{"todo", ThreadStatusTodo, false},
		{"snoozed", ThreadStatusSnoozed, false},
		{"done", ThreadStatusDone, false},
		{"TODO", "", true},
		{"open", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		status, err := ThreadStatusFromFilter(test.filter)
		if test.wantErr {
			assert.Error(t, err, "filter %q", test.filter)
			continue
		}
		require.NoError(t, err, "filter %q", test.filter)
		assert.Equal(t, test.expected, status)
	}
}

func TestValidateSnooze(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		duration int
		wantErr  bool
	}{
		{"reply mode without duration", SnoozeModeWaitForReply, -1, false},
		{"reply mode with duration is rejected", SnoozeModeWaitForReply, 3600, true},
		{"duration mode with valid duration", SnoozeModeWaitForDuration, 3600, false},
		{"duration mode without duration", SnoozeModeWaitForDuration, -1, true},
		{"duration mode at lower bound", SnoozeModeWaitForDuration, SnoozeMinSeconds, false},
		{"duration mode below lower bound", SnoozeModeWaitForDuration, SnoozeMinSeconds - 1, true},
		{"duration mode at upper bound", SnoozeModeWaitForDuration, SnoozeMaxSeconds, false},
		{"duration mode above upper bound", SnoozeModeWaitForDuration, SnoozeMaxSeconds + 1, true},
		{"unknown mode", "forever", -1, true},
		{"empty mode", "", 3600, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateSnooze(test.mode, test.duration)
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestThreadDisplayTitle(t *testing.T) {
	title := "Billing question"
	assert.Equal(t, "Billing question", Thread{Title: &title}.DisplayTitle())

	empty := ""
	assert.Equal(t, UntitledPlaceholder, Thread{Title: &empty}.DisplayTitle())
	assert.Equal(t, UntitledPlaceholder, Thread{}.DisplayTitle())
}

func TestConnectionNodes(t *testing.T) {
	var conn connection[string]
	assert.Empty(t, conn.nodes())

	conn.Edges = []struct {
		Node string `json:"node"`
	}{{Node: "a"}, {Node: "b"}}
	assert.Equal(t, []string{"a", "b"}, conn.nodes())
}
