package fake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_DeterministicPerSeed(t *testing.T) {
	fields := map[string]string{
		"name":  "name",
		"email": "email",
		"age":   "int:18,90",
	}

	first, err := NewSource(42).Records(5, fields)
	require.NoError(t, err)
	second, err := NewSource(42).Records(5, fields)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed must yield the same stream")

	other, err := NewSource(7).Records(5, fields)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestSource_ValueTemplates(t *testing.T) {
	s := NewSource(1)

	for _, template := range []string{
		"name", "first_name", "last_name", "username", "email", "phone",
		"company", "city", "country", "url", "word", "sentence", "uuid",
	} {
		v, err := s.Value(template)
		require.NoError(t, err, template)
		str, ok := v.(string)
		require.True(t, ok, "%s should produce a string", template)
		assert.NotEmpty(t, str, template)
	}

	v, err := s.Value("bool")
	require.NoError(t, err)
	assert.IsType(t, false, v)

	v, err = s.Value("date")
	require.NoError(t, err)
	assert.IsType(t, time.Time{}, v)
}

func TestSource_RangedTemplates(t *testing.T) {
	s := NewSource(1)

	for i := 0; i < 50; i++ {
		v, err := s.Value("int:10,20")
		require.NoError(t, err)
		n := v.(int)
		assert.GreaterOrEqual(t, n, 10)
		assert.LessOrEqual(t, n, 20)

		v, err = s.Value("float:0.5,1.5")
		require.NoError(t, err)
		f := v.(float64)
		assert.GreaterOrEqual(t, f, 0.5)
		assert.LessOrEqual(t, f, 1.5)
	}
}

func TestSource_BadTemplates(t *testing.T) {
	s := NewSource(1)

	_, err := s.Value("zipcode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field template")

	_, err = s.Value("int:10")
	require.Error(t, err)

	_, err = s.Value("int:abc,def")
	require.Error(t, err)

	_, err = s.Value("float:5,1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds max")
}

func TestSource_RecordNamesTheBadField(t *testing.T) {
	s := NewSource(1)

	_, err := s.Record(map[string]string{"zip": "zipcode"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "zip"`)
}

func TestSource_Records(t *testing.T) {
	s := NewSource(3)

	records, err := s.Records(4, map[string]string{"id": "uuid", "city": "city"})
	require.NoError(t, err)
	require.Len(t, records, 4)
	for _, r := range records {
		assert.Len(t, r, 2)
		assert.NotEmpty(t, r["id"])
		assert.NotEmpty(t, r["city"])
	}
}
