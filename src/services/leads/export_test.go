package leads

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLeadsCSVQuotesSpecialCharacters(t *testing.T) {
	created := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	leads := []models.Lead{
		{
			Name:      `Rao, Anand "AJ"`,
			Email:     "anand@example.com",
			FormType:  models.FormEnterpriseDemo,
			Notes:     "wants demo, prefers evenings\nfollow up next week",
			Interests: []string{"GenAI", "MLOps"},
			CreatedAt: created,
		},
	}

	data, err := WriteLeadsCSV(leads)
	require.NoError(t, err)

	// UTF-8 BOM first, then parseable CSV
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	reader := csv.NewReader(bytes.NewReader(data[3:]))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "name", records[0][0])

	row := records[1]
	// embedded commas, quotes and newlines survive the round trip
	assert.Equal(t, `Rao, Anand "AJ"`, row[0])
	assert.Equal(t, "wants demo, prefers evenings\nfollow up next week", row[9])
	assert.Equal(t, "GenAI; MLOps", row[8])
	assert.Equal(t, "2025-06-01T10:30:00Z", row[10])
}

func TestWriteLeadsCSVEmpty(t *testing.T) {
	data, err := WriteLeadsCSV(nil)
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(data[3:]))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	// header only
	assert.Len(t, records, 1)
	assert.Len(t, records[0], 11)
}
