package catalogue

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogue(t *testing.T) {
	c := Default()

	assert.Len(t, c.Items(), 10)
	assert.Len(t, c.Sessions(), 5)
	assert.Len(t, c.Addons(), 5)

	cases := map[string]int64{
		"portrait":        1500,
		"family":          2000,
		"extra_hour":      1000,
		"digital_package": 1500,
	}
	for id, price := range cases {
		item, ok := c.Lookup(id)
		require.True(t, ok, id)
		assert.Equal(t, price, item.Price, id)
	}

	family, _ := c.Lookup("family")
	assert.True(t, family.IsSession())
	extra, _ := c.Lookup("extra_hour")
	assert.True(t, extra.IsAddon())

	_, ok := c.Lookup("drone_footage")
	assert.False(t, ok)
}

func TestItemsReturnsCopy(t *testing.T) {
	c := Default()
	items := c.Items()
	items[0].Price = 1

	first, _ := c.Lookup(items[0].ID)
	assert.Equal(t, int64(1500), first.Price)
	assert.Equal(t, int64(1500), c.Items()[0].Price)
}

func TestNewRejectsInvalidItems(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		err   error
	}{
		{"empty", nil, ErrEmptyCatalogue},
		{"empty id", []Item{{ID: " ", Label: "X", Type: TypeSession}}, ErrEmptyID},
		{"empty label", []Item{{ID: "x", Type: TypeSession}}, ErrEmptyLabel},
		{"negative price", []Item{{ID: "x", Label: "X", Price: -1, Type: TypeAddon}}, ErrNegativePrice},
		{"unknown type", []Item{{ID: "x", Label: "X", Type: "bundle"}}, ErrUnknownType},
		{"duplicate", []Item{
			{ID: "x", Label: "X", Type: TypeSession},
			{ID: "x", Label: "Y", Type: TypeAddon},
		}, ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path falls back to default", func(t *testing.T) {
		c, err := LoadFile("")
		require.NoError(t, err)
		assert.Len(t, c.Items(), 10)
	})

	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalogue.json")
		data := `[
			{"id":"mini","label":"Mini Session","price":900,"type":"session","description":"20 minutes."},
			{"id":"prints","label":"Prints","price":300,"type":"addon"}
		]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		c, err := LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, c.Sessions(), 1)
		assert.Len(t, c.Addons(), 1)

		mini, ok := c.Lookup("mini")
		require.True(t, ok)
		assert.Equal(t, int64(900), mini.Price)
	})

	t.Run("invalid items are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalogue.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":"a","label":"A","price":-5,"type":"session"}]`), 0o600))

		_, err := LoadFile(path)
		require.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})
}

func TestListHandler(t *testing.T) {
	h := NewHandler(Default())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Success bool         `json:"success"`
		Data    ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Len(t, out.Data.Sessions, 5)
	assert.Len(t, out.Data.Addons, 5)
	assert.Equal(t, "portrait", out.Data.Sessions[0].ID)
	assert.Equal(t, "extra_hour", out.Data.Addons[0].ID)
}
