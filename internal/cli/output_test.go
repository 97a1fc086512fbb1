package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prettyData struct{ name string }

func (p prettyData) Pretty() string { return "pretty " + p.name }

type idData struct {
	Name string `json:"name"`
	ids  []string
}

func (d idData) IDs() []string { return d.ids }

func newFormatter(jsonOut, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOut, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newFormatter(true, false)

	require.NoError(t, f.Success(map[string]any{"test": "value"}))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, true, result["success"])
	assert.Equal(t, map[string]any{"test": "value"}, result["data"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	f, out, _ := newFormatter(false, true)

	require.NoError(t, f.Success(idData{Name: "x", ids: []string{"a", "b"}}))
	assert.Equal(t, "a\nb\n", out.String())
}

func TestOutputFormatter_Success_QuietWithoutIDs(t *testing.T) {
	f, out, _ := newFormatter(false, true)

	require.NoError(t, f.Success(prettyData{name: "board"}))
	assert.Equal(t, "pretty board\n", out.String())
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"pretty", prettyData{name: "board"}, "pretty board\n"},
		{"plain value", 42, "42\n"},
		{"struct", struct{ A int }{A: 1}, "{A:1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newFormatter(false, false)
			require.NoError(t, f.Success(tt.data))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, errOut := newFormatter(true, false)

	require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "unknown project ref", `did you mean "api"?`))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errData["code"])
	assert.Equal(t, "unknown project ref", errData["message"])
	assert.Equal(t, `did you mean "api"?`, errData["suggestion"])
	assert.Empty(t, errOut.String())
}

func TestOutputFormatter_Error_JSONWithoutSuggestion(t *testing.T) {
	f, out, _ := newFormatter(true, false)

	require.NoError(t, f.Error("ERROR", "boom"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	_, has := result["error"].(map[string]any)["suggestion"]
	assert.False(t, has)
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newFormatter(false, false)

	require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "unknown project ref", "try again"))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error: unknown project ref")
	assert.Contains(t, errOut.String(), "Suggestion: try again")
}

func TestFormatterFromFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantJSON  bool
		wantQuiet bool
		wantErr   bool
	}{
		{"defaults", nil, false, false, false},
		{"json", []string{"--json"}, true, false, false},
		{"quiet", []string{"--quiet"}, false, true, false},
		{"both", []string{"--json", "--quiet"}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			AddOutputFlags(fs)
			require.NoError(t, fs.Parse(tt.args))

			f, err := FormatterFromFlags(fs, nil, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ExitUsage, ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantJSON, f.JSON)
			assert.Equal(t, tt.wantQuiet, f.Quiet)
		})
	}
}

func TestFormatterFromFlags_Unregistered(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	_, err := FormatterFromFlags(fs, nil, nil)
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	notFound := &CommandError{Code: ExitNotFound, Kind: "NOT_FOUND", Err: errors.New("missing")}

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitNotFound, ExitCode(notFound))
	assert.Equal(t, ExitNotFound, ExitCode(fmt.Errorf("wrapped: %w", notFound)))
	assert.Equal(t, "missing", notFound.Error())
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		candidates []string
		want       string
	}{
		{"one typo", "complted", []string{"active", "completed"}, "completed"},
		{"case insensitive", "ACTIV", []string{"active", "completed"}, "active"},
		{"too far", "zzzzzz", []string{"active", "completed"}, ""},
		{"no candidates", "api", nil, ""},
		{"closest wins", "api2", []string{"api", "apis", "web"}, "api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.input, tt.candidates))
		})
	}
}

func TestDidYouMean(t *testing.T) {
	assert.Equal(t, `did you mean "completed"?`, DidYouMean("complete", []string{"active", "completed"}))
	assert.Empty(t, DidYouMean("zzzzzzzz", []string{"active"}))
}
