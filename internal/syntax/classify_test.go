package syntax

import (
	stderrors "errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/jsoncheck/internal/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Outcome
	}{
		{"object", "{\n    \"a\": 1\n}\n", Valid},
		{"scalar", "42", Valid},
		{"surrounding whitespace", "  [1, 2]  \n", Valid},
		{"missing value", `{"a": }`, SyntaxError},
		{"bad token", `{"a": tru}`, SyntaxError},
		{"bad escape", `{"a": "\q"}`, SyntaxError},
		{"trailing comma", `{"a": 1,}`, SyntaxError},
		{"trailing value", `{} {}`, SyntaxError},
		{"trailing garbage", `{} x`, SyntaxError},
		{"trailing truncated value", `{} {`, SyntaxError},
		{"number out of range", `1e400`, SyntaxError},
		{"truncated object", `{"a": 1`, UnexpectedEnd},
		{"truncated string", `["abc`, UnexpectedEnd},
		{"empty", ``, UnexpectedEnd},
		{"whitespace only", "   \n", UnexpectedEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "Classify(%q)", tt.input)
		})
	}
}

func TestClassify_ReaderFailureIsUnrecoverable(t *testing.T) {
	cause := stderrors.New("disk on fire")
	got, err := classifyReader(iotest.ErrReader(cause))
	require.Error(t, err)
	assert.Equal(t, Unrecoverable, got)
	assert.Equal(t, errors.EUnrecoverable, errors.GetCode(err))
	assert.ErrorIs(t, err, cause)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "SyntaxError", SyntaxError.String())
	assert.Equal(t, "UnexpectedEnd", UnexpectedEnd.String())
	assert.Equal(t, "Unknown", Outcome(99).String())
}
