package export

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderCSVPadsShortRows(t *testing.T) {
	table := Table{
		Columns: []string{"ID", "Title", "Views"},
		Rows: [][]string{
			{"c1", "Marsh Lights", "12"},
			{"c2"},
		},
	}
	content, err := RenderCSV(table)
	require.NoError(t, err)
	require.Equal(t, "ID,Title,Views\nc1,Marsh Lights,12\nc2,,\n", string(content))
}

func TestRenderCSVRequiresColumns(t *testing.T) {
	_, err := RenderCSV(Table{})
	require.Error(t, err)
}
