package pricing

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinding/booking-api/internal/domain/catalogue"
)

func TestComputeFamilyWithAddons(t *testing.T) {
	q := Compute(catalogue.Default(), "family", []string{"extra_hour", "digital_package"})

	assert.Equal(t, int64(4500), q.Total)
	require.Len(t, q.LineItems, 3)
	assert.Equal(t, LineItem{ID: "family", Label: "Family Session", Price: 2000}, q.LineItems[0])
	assert.Equal(t, "extra_hour", q.LineItems[1].ID)
	assert.True(t, q.LineItems[1].IsAddon)
	assert.Equal(t, "digital_package", q.LineItems[2].ID)
	assert.Equal(t, []string{"Family Session"}, q.SessionLabels())
	assert.Equal(t, []string{"Extra Hour", "Full Digital Package"}, q.AddonLabels())
}

func TestComputeSkipsUnknownIDs(t *testing.T) {
	cat := catalogue.Default()

	q := Compute(cat, "drone", []string{"rush_editing", "nope"})
	assert.Equal(t, int64(750), q.Total)
	require.Len(t, q.LineItems, 1)
	assert.Equal(t, "rush_editing", q.LineItems[0].ID)
	assert.Empty(t, q.SessionLabels())
}

func TestComputeEmptySelection(t *testing.T) {
	q := Compute(catalogue.Default(), "", nil)
	assert.Zero(t, q.Total)
	assert.Empty(t, q.LineItems)
	assert.Equal(t, []string{}, q.AddonLabels())
}

func TestComputeTotalIsSumOfLineItems(t *testing.T) {
	cat := catalogue.Default()
	selections := [][]string{
		{"portrait"},
		{"wedding", "photo_album", "canvas_print"},
		{"event", "extra_hour", "extra_hour"},
		{"couples", "unknown", "rush_editing"},
	}

	for _, sel := range selections {
		q := Compute(cat, sel[0], sel[1:])
		var sum int64
		for _, li := range q.LineItems {
			sum += li.Price
		}
		assert.Equal(t, sum, q.Total, sel)
	}
}

func TestComputeSelectionMatchesCompute(t *testing.T) {
	cat := catalogue.Default()
	a := Compute(cat, "wedding", []string{"photo_album"})
	b := ComputeSelection(cat, []string{"wedding"}, []string{"photo_album"})
	assert.Equal(t, a, b)
}

func TestComputeSelectionUsesListForAddonFlag(t *testing.T) {
	q := ComputeSelection(catalogue.Default(), []string{"extra_hour"}, []string{"portrait"})
	require.Len(t, q.LineItems, 2)
	assert.False(t, q.LineItems[0].IsAddon)
	assert.True(t, q.LineItems[1].IsAddon)
	assert.Equal(t, int64(2500), q.Total)
}

func TestFormatNOK(t *testing.T) {
	cases := map[int64]string{
		0:       "NOK 0",
		750:     "NOK 750",
		4500:    "NOK 4 500",
		12000:   "NOK 12 000",
		1234567: "NOK 1 234 567",
		-1500:   "NOK -1 500",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNOK(in))
	}
}

func TestQuoteHandler(t *testing.T) {
	h := NewHandler(catalogue.Default())

	body, _ := json.Marshal(QuoteRequest{SessionID: "family", AddonIDs: []string{"extra_hour", "digital_package"}})
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Success bool          `json:"success"`
		Data    QuoteResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, int64(4500), out.Data.Total)
	assert.Equal(t, "NOK 4 500", out.Data.FormattedTotal)
	assert.Len(t, out.Data.LineItems, 3)
}

func TestQuoteHandlerRejectsBadInput(t *testing.T) {
	h := NewHandler(catalogue.Default())

	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{")))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	many := make([]string, 51)
	for i := range many {
		many[i] = "extra_hour"
	}
	body, _ := json.Marshal(QuoteRequest{SessionID: "family", AddonIDs: many})
	rr = httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestQuoteHandlerNormalizesAndSkipsIDs(t *testing.T) {
	h := NewHandler(catalogue.Default())

	cases := []struct {
		name  string
		body  string
		total int64
	}{
		{"mixed case", `{"session_id":"FAMILY","addon_ids":["Extra_Hour"," digital_package"]}`, 4500},
		{"unknown ids", `{"session_id":"<script>","addon_ids":["unknown item","rush_editing"]}`, 750},
		{"blank session", `{"session_id":"  ","addon_ids":[]}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body)))
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

			var out struct {
				Data QuoteResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
			assert.Equal(t, tc.total, out.Data.Total)
		})
	}
}

func TestNormalizeIDs(t *testing.T) {
	assert.Equal(t, []string{"family", "extra_hour"}, NormalizeIDs([]string{" Family ", "", "  ", "EXTRA_HOUR"}))
	assert.Equal(t, []string{}, NormalizeIDs(nil))
}
