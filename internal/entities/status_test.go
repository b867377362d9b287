package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to RequestStatus
		want     bool
	}{
		{RequestStatusNew, RequestStatusInProgress, true},
		{RequestStatusNew, RequestStatusScrap, true},
		{RequestStatusNew, RequestStatusRepaired, false},
		{RequestStatusInProgress, RequestStatusRepaired, true},
		{RequestStatusInProgress, RequestStatusScrap, true},
		{RequestStatusInProgress, RequestStatusNew, false},
		{RequestStatusRepaired, RequestStatusScrap, false},
		{RequestStatusRepaired, RequestStatusInProgress, false},
		{RequestStatusScrap, RequestStatusNew, false},
		{RequestStatusScrap, RequestStatusRepaired, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.False(t, RequestStatusNew.Terminal())
	assert.False(t, RequestStatusInProgress.Terminal())
	assert.True(t, RequestStatusRepaired.Terminal())
	assert.True(t, RequestStatusScrap.Terminal())
}

func TestProgressIndexFollowsDeclarationOrder(t *testing.T) {
	assert.Equal(t, 0, RequestStatusNew.ProgressIndex())
	assert.Equal(t, 1, RequestStatusInProgress.ProgressIndex())
	assert.Equal(t, 2, RequestStatusRepaired.ProgressIndex())
	assert.Equal(t, 3, RequestStatusScrap.ProgressIndex())
}

func TestValid(t *testing.T) {
	for _, status := range RequestStatuses {
		assert.True(t, status.Valid())
	}
	assert.False(t, RequestStatus("InProgress").Valid())
	assert.False(t, RequestStatus("Closed").Valid())
}
