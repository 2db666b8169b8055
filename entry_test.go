package optsetter_test

import (
	"testing"

	"github.com/0xalexb/optsetter"
	"github.com/0xalexb/optsetter/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOptions_MapSpecs(t *testing.T) {
	t.Parallel()

	t.Run("behaves like OptionSpec", func(t *testing.T) {
		t.Parallel()

		setter := optsetter.New()
		schema := optsetter.Schema{
			"count":   map[string]any{"type": "number", "default": setter.Default()},
			"name":    map[string]any{"type": "string", "default": "anonymous"},
			"timeout": map[string]any{"type": "number", "sourceName": "t", "required": false},
			"mode":    map[string]any{"validator": func(v any) bool { return v == "fast" || v == "slow" }},
		}

		result, err := setter.SetOptions(optsetter.Values{}, schema, optsetter.Values{"mode": "fast", "t": 5})
		require.NoError(t, err)

		assert.Equal(t, optsetter.Values{
			"count":   float64(0),
			"name":    "anonymous",
			"timeout": 5,
			"mode":    "fast",
		}, result)
	})

	t.Run("empty map is a required spec", func(t *testing.T) {
		t.Parallel()

		schema := optsetter.Schema{"requiredValue": map[string]any{}}

		_, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{})
		require.EqualError(t, err, "requiredValue must be provided")
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		t.Parallel()

		schema := optsetter.Schema{"value": map[string]any{"require": true, "default": 1}}

		result, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{})
		require.NoError(t, err)
		assert.Equal(t, 1, result["value"])
	})

	t.Run("non-string sourceName", func(t *testing.T) {
		t.Parallel()

		schema := optsetter.Schema{"test": map[string]any{"sourceName": 0}}

		_, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{"test": 1})
		require.EqualError(t, err, "test has a non-string sourceName")
		require.NotErrorIs(t, err, optsetter.ErrMissing)
	})

	t.Run("non-string sourceName with continuing handler", func(t *testing.T) {
		t.Parallel()

		collector := &optsetter.Collector{}
		schema := optsetter.Schema{"test": map[string]any{"sourceName": 7}}

		result, err := optsetter.New(optsetter.WithFailureHandler(collector)).
			SetOptions(optsetter.Values{}, schema, optsetter.Values{"test": 1, "7": "seven"})
		require.NoError(t, err)

		assert.Equal(t, optsetter.Values{"test": 1}, result)
		require.Len(t, collector.Failures(), 1)
	})

	t.Run("validator returning non-boolean", func(t *testing.T) {
		t.Parallel()

		schema := optsetter.Schema{
			"test": map[string]any{"validator": func(any) any { return "not a boolean" }},
		}

		_, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{"test": 1})
		require.EqualError(t, err, "test has a validator that returns non-boolean")
	})

	t.Run("validator returning any bool", func(t *testing.T) {
		t.Parallel()

		schema := optsetter.Schema{
			"test": map[string]any{
				"type":      "number",
				"validator": func(value any, typeValidator registry.ValidatorFunc) any { return typeValidator(value) },
			},
		}

		result, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{"test": 1})
		require.NoError(t, err)
		assert.Equal(t, 1, result["test"])
	})

	t.Run("failMessage and failedValidationAction", func(t *testing.T) {
		t.Parallel()

		var got []string

		schema := optsetter.Schema{
			"test": map[string]any{
				"validator":   func(any) bool { return false },
				"failMessage": "custom fail message",
				"failedValidationAction": func(option, message string, _ optsetter.Values, _ bool) error {
					got = append(got, option+" "+message)

					return nil
				},
			},
		}

		_, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{"test": 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"test custom fail message"}, got)
	})

	t.Run("literal Default value", func(t *testing.T) {
		t.Parallel()

		schema := optsetter.Schema{"test": map[string]any{"default": optsetter.Literal("x")}}

		result, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{})
		require.NoError(t, err)
		assert.Equal(t, "x", result["test"])
	})

	t.Run("Values spec is validated", func(t *testing.T) {
		t.Parallel()

		schema := optsetter.Schema{"port": optsetter.Values{"type": "number"}}

		_, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{"port": "abc"})
		require.EqualError(t, err, "port must be type number")
		require.ErrorIs(t, err, optsetter.ErrValidation)
	})

	t.Run("Values spec default", func(t *testing.T) {
		t.Parallel()

		setter := optsetter.New()
		schema := optsetter.Schema{"port": optsetter.Values{"type": "number", "default": setter.Default()}}

		result, err := setter.SetOptions(optsetter.Values{}, schema, optsetter.Values{})
		require.NoError(t, err)
		assert.Equal(t, optsetter.Values{"port": float64(0)}, result)
	})

	t.Run("Schema spec is validated", func(t *testing.T) {
		t.Parallel()

		schema := optsetter.Schema{"name": optsetter.Schema{"type": "string"}}

		_, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{"name": 1})
		require.EqualError(t, err, "name must be type string")
	})

	t.Run("nil default is written", func(t *testing.T) {
		t.Parallel()

		schema := optsetter.Schema{"test": map[string]any{"default": nil}}

		result, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{})
		require.NoError(t, err)
		require.Contains(t, result, "test")
		assert.Nil(t, result["test"])
	})

	t.Run("keys match exactly", func(t *testing.T) {
		t.Parallel()

		schema := optsetter.Schema{"test": map[string]any{"TYPE": "number", "Default": 5}}

		_, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{"test": "abc"})
		require.NoError(t, err)

		_, err = optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{})
		require.EqualError(t, err, "test must be provided")
	})
}

func TestSetOptions_BareDefault(t *testing.T) {
	t.Parallel()

	t.Run("type default without type", func(t *testing.T) {
		t.Parallel()

		setter := optsetter.New()
		schema := optsetter.Schema{"test": setter.Default()}

		_, err := setter.SetOptions(optsetter.Values{}, schema, optsetter.Values{})
		require.EqualError(t, err, "test uses Setter.Default() without an existing type")
	})

	t.Run("literal", func(t *testing.T) {
		t.Parallel()

		schema := optsetter.Schema{"test": optsetter.Literal(3)}

		result, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{})
		require.NoError(t, err)
		assert.Equal(t, optsetter.Values{"test": 3}, result)
	})

	t.Run("raw value wins", func(t *testing.T) {
		t.Parallel()

		schema := optsetter.Schema{"test": optsetter.TypeDefault()}

		result, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{"test": "given"})
		require.NoError(t, err)
		assert.Equal(t, optsetter.Values{"test": "given"}, result)
	})
}

func TestSetOptions_MalformedSpecs(t *testing.T) {
	t.Parallel()

	var nilSpec *optsetter.OptionSpec

	testCases := []struct {
		name    string
		spec    any
		wantMsg string
	}{
		{
			name:    "nil spec pointer",
			spec:    nilSpec,
			wantMsg: `schema entry "test" is a nil spec`,
		},
		{
			name:    "non-string type",
			spec:    map[string]any{"type": 5},
			wantMsg: `schema entry "test"`,
		},
		{
			name:    "non-bool required",
			spec:    map[string]any{"required": "yes"},
			wantMsg: `schema entry "test"`,
		},
		{
			name:    "non-function validator",
			spec:    map[string]any{"validator": "always"},
			wantMsg: `schema entry "test": validator must be type function`,
		},
		{
			name:    "non-function failure action",
			spec:    map[string]any{"failedValidationAction": 1},
			wantMsg: `schema entry "test": failedValidationAction must be type function`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			schema := optsetter.Schema{"test": testCase.spec}

			_, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{"test": 1})
			require.ErrorIs(t, err, optsetter.ErrDeclaration)
			assert.Contains(t, err.Error(), testCase.wantMsg)
		})
	}
}

func TestSetOptions_SpecPointer(t *testing.T) {
	t.Parallel()

	schema := optsetter.Schema{"test": &optsetter.OptionSpec{Type: "string", Default: optsetter.Literal("x")}}

	result, err := optsetter.New().SetOptions(optsetter.Values{}, schema, optsetter.Values{})
	require.NoError(t, err)
	assert.Equal(t, "x", result["test"])
}
