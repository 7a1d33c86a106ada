package reconcile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONAdapter_Decode(t *testing.T) {
	input := `[{"id": 1, "name": "one"}, {"id": "b", "name": "two"}]`

	records, err := JSONAdapter{}.Decode(strings.NewReader(input), "id")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "one", records[0].Fields["name"])
	assert.Equal(t, "b", records[1].ID)
}

func TestJSONAdapter_Decode_CustomField(t *testing.T) {
	input := `[{"sku": 12345678901234567, "name": "big"}]`

	records, err := JSONAdapter{}.Decode(strings.NewReader(input), "sku")
	require.NoError(t, err)
	require.Len(t, records, 1)
	// UseNumber keeps large ids exact
	assert.Equal(t, "12345678901234567", records[0].ID)
}

func TestJSONAdapter_Decode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		isID  bool
		isDup bool
	}{
		{name: "Not An Array", input: `{"id": 1}`},
		{name: "Broken", input: `[{"id": 1}`},
		{name: "Missing ID", input: `[{"name": "x"}]`, isID: true},
		{name: "Null ID", input: `[{"id": null}]`, isID: true},
		{name: "Empty ID", input: `[{"id": ""}]`, isID: true},
		{name: "Duplicate ID", input: `[{"id": 1}, {"id": "1"}, {"id": 2}]`, isDup: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JSONAdapter{}.Decode(strings.NewReader(tt.input), "id")
			require.Error(t, err)
			assert.Equal(t, tt.isID, errorIs(err, ErrMissingID))
			assert.Equal(t, tt.isDup, errorIs(err, ErrDuplicateID))
		})
	}
}

func TestNDJSONAdapter_Decode(t *testing.T) {
	input := "{\"id\": 1}\n\n{\"id\": 2, \"tag\": \"x\"}\n"

	records, err := NDJSONAdapter{}.Decode(strings.NewReader(input), "id")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2", records[1].ID)
	assert.Equal(t, "x", records[1].Fields["tag"])

	_, err = NDJSONAdapter{}.Decode(strings.NewReader("{\"id\": 1}\n{\"name\": 2}\n"), "id")
	assert.ErrorIs(t, err, ErrMissingID)
	assert.Contains(t, err.Error(), "line 2")

	_, err = NDJSONAdapter{}.Decode(strings.NewReader("{\"id\": 1}\n{\"id\": 1}\n"), "id")
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestAdapterFor(t *testing.T) {
	a, err := AdapterFor("")
	require.NoError(t, err)
	assert.Equal(t, "json", a.Name())

	a, err = AdapterFor("NDJSON")
	require.NoError(t, err)
	assert.Equal(t, "ndjson", a.Name())

	_, err = AdapterFor("xml")
	assert.Error(t, err)
}
