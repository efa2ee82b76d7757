package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage(t *testing.T) {
	for i, s := range AllStages() {
		got, err := NewStage(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.Equal(t, i, s.Order())
	}

	_, err := NewStage("Done")
	assert.Error(t, err)

	assert.True(t, StageNew.IsOpen())
	assert.True(t, StageInProgress.IsOpen())
	assert.False(t, StageRepaired.IsOpen())
	assert.False(t, StageScrap.IsOpen())
}

func TestRequestType(t *testing.T) {
	_, err := NewRequestType("Preventive")
	assert.NoError(t, err)
	_, err = NewRequestType("preventive")
	assert.Error(t, err)
}

func TestPriority(t *testing.T) {
	for _, p := range []string{"Critical", "High", "Medium", "Low"} {
		_, err := NewPriority(p)
		assert.NoError(t, err, p)
	}
	_, err := NewPriority("Urgent")
	assert.Error(t, err)
}
