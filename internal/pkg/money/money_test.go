package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"300", 30000},
		{"300.5", 30050},
		{"300.00", 30000},
		{"0.05", 5},
		{"  120.50 ", 12050},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "-1", "300.123", "abc", ".50", "1,50"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}

func TestStringRendersTwoDecimals(t *testing.T) {
	assert.Equal(t, "300.00", Cents(30000).String())
	assert.Equal(t, "300.50", Cents(30050).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "-12.30", Cents(-1230).String())
}

func TestMulNightsIsExact(t *testing.T) {
	rate, err := Parse("120.50")
	assert.NoError(t, err)
	assert.Equal(t, Cents(36150), rate.MulNights(3))
	assert.Equal(t, "361.50", rate.MulNights(3).String())
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Cents(30000))
	assert.NoError(t, err)
	assert.Equal(t, `"300.00"`, string(b))

	var c Cents
	assert.NoError(t, json.Unmarshal([]byte(`"120.50"`), &c))
	assert.Equal(t, Cents(12050), c)

	// Gateways send bare numbers.
	assert.NoError(t, json.Unmarshal([]byte(`300.5`), &c))
	assert.Equal(t, Cents(30050), c)
}
