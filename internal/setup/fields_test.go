package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections_Order(t *testing.T) {
	secs := Sections()
	require.Len(t, secs, 6)

	names := make([]string, len(secs))
	for i, s := range secs {
		names[i] = s.Name
	}
	assert.Equal(t, []string{
		"JWT Configuration",
		"AWS Configuration",
		"Application Configuration",
		"Security Configuration",
		"CORS Configuration",
		"Database Configuration",
	}, names)

	assert.Equal(t, KeyJWTSecret, secs[0].Fields[0].Key)
	assert.Equal(t, KeyDynamoDBEndpoint, secs[5].Fields[0].Key)
}

func TestSections_DefaultsPassValidators(t *testing.T) {
	for _, sec := range Sections() {
		for _, f := range sec.Fields {
			if f.Default == "" || f.Validate == nil {
				continue
			}
			t.Run(f.Key, func(t *testing.T) {
				assert.NoError(t, f.Validate(f.Default))
			})
		}
	}
}

func TestSections_RequiredFieldsHaveNoDefault(t *testing.T) {
	for _, sec := range Sections() {
		for _, f := range sec.Fields {
			if f.Key == "AWS_ACCESS_KEY_ID" || f.Key == "AWS_SECRET_ACCESS_KEY" {
				assert.Empty(t, f.Default, f.Key)
				require.NotNil(t, f.Validate, f.Key)
				assert.Error(t, f.Validate(""), f.Key)
			}
		}
	}
}

func TestSections_OnlyDatabaseIsOptional(t *testing.T) {
	for _, sec := range Sections() {
		for _, f := range sec.Fields {
			if f.Key == KeyDynamoDBEndpoint {
				assert.True(t, f.Optional)
			} else {
				assert.False(t, f.Optional, f.Key)
			}
		}
	}
}

func TestRecord_PreservesInsertionOrder(t *testing.T) {
	r := NewRecord()
	r.Set("B", "2")
	r.Set("A", "1")
	r.Set("C", "3")

	assert.Equal(t, []string{"B", "A", "C"}, r.Keys())
	assert.Equal(t, 3, r.Len())
}

func TestRecord_OverwriteKeepsPosition(t *testing.T) {
	r := NewRecord()
	r.Set("A", "1")
	r.Set("B", "2")
	r.Set("A", "changed")

	assert.Equal(t, []string{"A", "B"}, r.Keys())
	v, ok := r.Get("A")
	require.True(t, ok)
	assert.Equal(t, "changed", v)
}

func TestRecord_GetUnset(t *testing.T) {
	r := NewRecord()
	_, ok := r.Get("NOPE")
	assert.False(t, ok)
}
