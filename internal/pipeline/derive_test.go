package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/nibrs-cli/internal/model"
)

func TestDeriveYear(t *testing.T) {
	dated := agency("A1", "One", "Lee", "GA")
	dated.NIBRSStart = dptr("2020-07-15")

	undated := agency("A2", "Two", "Lee", "GA")

	stale := agency("A3", "Three", "Lee", "GA")
	y := 1999
	stale.Year = &y // stale derived value with no backing date

	out := DeriveYear([]model.AgencyRecord{dated, undated, stale})

	require.NotNil(t, out[0].Year)
	assert.Equal(t, 2020, *out[0].Year)
	assert.Nil(t, out[1].Year)
	assert.Nil(t, out[2].Year)
}
