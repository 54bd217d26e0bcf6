package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidState(t *testing.T) {
	assert.True(t, ValidState("Delhi"))
	assert.True(t, ValidState("Maharashtra"))
	assert.False(t, ValidState("delhi"))
	assert.False(t, ValidState("Atlantis"))
	assert.False(t, ValidState(""))
}

func TestValidCity(t *testing.T) {
	assert.True(t, ValidCity("Delhi", "New Delhi"))
	assert.True(t, ValidCity("Maharashtra", "Mumbai"))
	// Right city, wrong state.
	assert.False(t, ValidCity("Delhi", "Mumbai"))
	assert.False(t, ValidCity("Maharashtra", "New Delhi"))
	assert.False(t, ValidCity("Atlantis", "New Delhi"))
}

func TestStatesAndCities(t *testing.T) {
	assert.Len(t, States(), 12)
	assert.Contains(t, Cities("Karnataka"), "Bengaluru")
	assert.Nil(t, Cities("Atlantis"))
}
