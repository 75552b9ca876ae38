package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-store/internal/types"
)

func TestDateJSON(t *testing.T) {
	t.Run("should encode as YYYY-MM-DD", func(t *testing.T) {
		s := types.Student{ID: 1, Name: "Alice", Score: 88.5, Birthday: types.NewDate(2000, time.January, 1)}

		b, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":1,"name":"Alice","score":88.5,"birthday":"2000-01-01"}`, string(b))
	})

	t.Run("should decode YYYY-MM-DD", func(t *testing.T) {
		var s types.Student
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Bob","score":1,"birthday":"1999-05-17"}`), &s))
		assert.Equal(t, "1999-05-17", s.Birthday.String())
	})

	t.Run("should treat null as the zero date", func(t *testing.T) {
		var s types.Student
		require.NoError(t, json.Unmarshal([]byte(`{"birthday":null}`), &s))
		assert.True(t, s.Birthday.IsZero())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		var s types.Student
		assert.Error(t, json.Unmarshal([]byte(`{"birthday":"yesterday"}`), &s))
		assert.Error(t, json.Unmarshal([]byte(`{"birthday":20000101}`), &s))
	})

	t.Run("should reject anything but an exact date", func(t *testing.T) {
		for _, raw := range []string{"2000-01-01garbage", "2000-01-01 not a time", "2000-01-01T99:99:99", "2000-01-01T00:00:00Z", " 2000-01-01"} {
			var d types.Date
			assert.Error(t, json.Unmarshal([]byte(`"`+raw+`"`), &d), raw)
			assert.True(t, d.IsZero(), raw)
		}
	})
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want string
	}{
		{"nil", nil, ""},
		{"time", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), "2000-01-01"},
		{"time with clock", time.Date(2000, time.January, 1, 23, 59, 0, 0, time.UTC), "2000-01-01"},
		{"text", "2000-01-01", "2000-01-01"},
		{"timestamp text", "2000-01-01 00:00:00+00:00", "2000-01-01"},
		{"bytes", []byte("2001-02-03"), "2001-02-03"},
		{"rfc3339 text", "2001-02-03T10:00:00Z", "2001-02-03"},
		{"fractional timestamp text", "2001-02-03 10:00:00.5+02:00", "2001-02-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d types.Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}

	t.Run("should reject unsupported types", func(t *testing.T) {
		var d types.Date
		assert.Error(t, d.Scan(42))
	})

	t.Run("should reject text trailing the date", func(t *testing.T) {
		for _, raw := range []string{"2000-01-01garbage", "2000-01-01 not a time", "2000-01-01T99:99:99"} {
			var d types.Date
			assert.Error(t, d.Scan(raw), raw)
		}
	})
}

func TestDateValue(t *testing.T) {
	v, err := types.NewDate(2000, time.January, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2000-01-01", v)

	v, err = types.Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
