package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAddCommand(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"positive numbers", []string{"add", "2", "3"}, "2 + 3 = 5\n"},
		{"negative numbers", []string{"add", "--", "-1", "-2"}, "-1 + -2 = -3\n"},
		{"large numbers", []string{"add", "1000000000", "2000000000"}, "1000000000 + 2000000000 = 3000000000\n"},
		{"wraps on overflow", []string{"add", "9223372036854775807", "1"}, "9223372036854775807 + 1 = -9223372036854775808\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, code := execute(t, tc.args...)
			require.Equal(t, ExitSuccess, code)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestMultiplyCommand(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"positive numbers", []string{"multiply", "2", "3"}, "2 * 3 = 6\n"},
		{"two negatives", []string{"multiply", "--", "-2", "-3"}, "-2 * -3 = 6\n"},
		{"by zero", []string{"mul", "5", "0"}, "5 * 0 = 0\n"},
		{"large numbers", []string{"multiply", "1000", "1000000"}, "1000 * 1000000 = 1000000000\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, code := execute(t, tc.args...)
			require.Equal(t, ExitSuccess, code)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCheckedOverflow(t *testing.T) {
	_, errOut, code := execute(t, "add", "--checked", "9223372036854775807", "1")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "integer overflow")

	_, errOut, code = execute(t, "multiply", "--checked", "4000000000", "4000000000")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "integer overflow")

	out, _, code := execute(t, "multiply", "--checked", "--", "-2", "-3")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "-2 * -3 = 6\n", out)
}

func TestArithmeticStructuredOutput(t *testing.T) {
	out, _, code := execute(t, "multiply", "--format", "json", "--checked", "10", "20")
	require.Equal(t, ExitSuccess, code)

	var res ArithmeticResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, ArithmeticResult{Operation: "multiply", A: 10, B: 20, Result: 200, Checked: true}, res)

	out, _, code = execute(t, "add", "--format", "yaml", "10", "20")
	require.Equal(t, ExitSuccess, code)

	res = ArithmeticResult{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, ArithmeticResult{Operation: "add", A: 10, B: 20, Result: 30}, res)
}

func TestArithmeticInvalidArguments(t *testing.T) {
	cases := [][]string{
		{"add", "1"},
		{"add", "1", "2", "3"},
		{"add", "one", "2"},
		{"multiply", "2", "1.5"},
		{"multiply", "99999999999999999999", "1"},
	}

	for _, args := range cases {
		_, _, code := execute(t, args...)
		assert.Equal(t, ExitUsage, code, "args %v", args)
	}
}
