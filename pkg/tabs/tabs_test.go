package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	list := Default()
	require.NoError(t, list.Validate())

	assert.Equal(t, []string{
		"invoices", "cores_warranty", "chat", "emails",
		"statements", "bookkeeper", "search", "settings",
	}, list.IDs())

	settings, ok := list.Find("settings")
	require.True(t, ok)
	assert.True(t, settings.Settings)
	assert.Empty(t, settings.Label)

	// Only the settings tab is icon-only.
	for _, tab := range list {
		if tab.ID != "settings" {
			assert.False(t, tab.Settings, tab.ID)
			assert.NotEmpty(t, tab.Label, tab.ID)
		}
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a[0].Label = "changed"

	b := Default()
	assert.Equal(t, "Invoices", b[0].Label)
}

func TestList_Validate(t *testing.T) {
	tests := []struct {
		name      string
		list      List
		errSubstr string
	}{
		{
			name:      "empty list",
			list:      List{},
			errSubstr: "empty",
		},
		{
			name:      "missing id",
			list:      List{{Target: "a.html"}},
			errSubstr: "id is required",
		},
		{
			name:      "missing target",
			list:      List{{ID: "a"}},
			errSubstr: "target is required",
		},
		{
			name: "duplicate id",
			list: List{
				{ID: "a", Target: "a.html"},
				{ID: "b", Target: "b.html"},
				{ID: "a", Target: "c.html"},
			},
			errSubstr: `"a": duplicate id`,
		},
		{
			name:      "id with quote",
			list:      List{{ID: "a')+alert(1)+('", Target: "a.html"}},
			errSubstr: "id may only contain",
		},
		{
			name:      "id with slash",
			list:      List{{ID: "a/b", Target: "a.html"}},
			errSubstr: "id may only contain",
		},
		{
			name:      "id with space",
			list:      List{{ID: "core warranty", Target: "a.html"}},
			errSubstr: "id may only contain",
		},
		{
			name: "valid",
			list: List{{ID: "a", Target: "a.html"}, {ID: "b", Target: "b.html"}},
		},
		{
			name: "slug ids",
			list: List{{ID: "cores_warranty", Target: "a.html"}, {ID: "Ask-2", Target: "b.html"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.list.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestList_Lookup(t *testing.T) {
	list := Default()

	tab, ok := list.ByTarget("cores-warranty.html")
	require.True(t, ok)
	assert.Equal(t, "cores_warranty", tab.ID)

	_, ok = list.ByTarget("missing.html")
	assert.False(t, ok)

	_, ok = list.Find("")
	assert.False(t, ok)
}
