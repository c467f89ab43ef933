package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{
				"message": map[string]string{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateCommand(t *testing.T) {
	t.Run("Success - prints indented options", func(t *testing.T) {
		srv := completionServer(t, `{"series":[{"type":"bar","data":[1,2]}]}`)

		stdout, _, err := runCLI(t, "", "generate", "--base-url", srv.URL, "--model", "gpt4all", "bar chart")

		require.NoError(t, err)
		assert.JSONEq(t, `{"series":[{"type":"bar","data":[1,2]}]}`, stdout)
		assert.Contains(t, stdout, "\n  \"series\"")
	})

	t.Run("Failure - schema violation lists violations", func(t *testing.T) {
		srv := completionServer(t, `{"title":{"text":"no series"}}`)

		stdout, stderr, err := runCLI(t, "", "generate", "--base-url", srv.URL, "bar chart")

		require.Error(t, err)
		assert.Empty(t, stdout)
		assert.Contains(t, err.Error(), "schema_violation")
		assert.Contains(t, stderr, "series")
	})

	t.Run("Failure - invalid JSON", func(t *testing.T) {
		srv := completionServer(t, "here you go")

		_, _, err := runCLI(t, "", "generate", "--base-url", srv.URL, "--transport", "openai", "bar chart")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "here you go")
	})

	t.Run("Success - flag replaces a bad environment value", func(t *testing.T) {
		srv := completionServer(t, `{"series":[{"type":"line"}]}`)
		t.Setenv("LLM_TRANSPORT", "bogus")

		stdout, _, err := runCLI(t, "", "generate", "--base-url", srv.URL, "--transport", "http", "line chart")

		require.NoError(t, err)
		assert.JSONEq(t, `{"series":[{"type":"line"}]}`, stdout)
	})

	t.Run("Failure - bad environment value without a flag", func(t *testing.T) {
		t.Setenv("LLM_TRANSPORT", "bogus")

		_, _, err := runCLI(t, "", "generate", "--base-url", "http://localhost:1", "line chart")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LLM_TRANSPORT")
	})

	t.Run("Failure - missing query", func(t *testing.T) {
		_, _, err := runCLI(t, "", "generate")

		require.Error(t, err)
	})

	t.Run("Failure - unknown transport flag", func(t *testing.T) {
		_, _, err := runCLI(t, "", "generate", "--transport", "smtp", "bar chart")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LLM_TRANSPORT")
	})
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	validFile := filepath.Join(dir, "valid.json")
	invalidFile := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(validFile, []byte(`{"series":[{"type":"line"}]}`), 0o600))
	require.NoError(t, os.WriteFile(invalidFile, []byte(`{"series":[{"type":"rocket"}]}`), 0o600))

	t.Run("Success - valid file", func(t *testing.T) {
		stdout, _, err := runCLI(t, "", "validate", validFile)

		require.NoError(t, err)
		assert.Equal(t, "valid\n", stdout)
	})

	t.Run("Success - stdin", func(t *testing.T) {
		stdout, _, err := runCLI(t, `{"series":[{"type":"pie"}]}`, "validate", "-")

		require.NoError(t, err)
		assert.Equal(t, "valid\n", stdout)
	})

	t.Run("Success - model settings are not required", func(t *testing.T) {
		t.Setenv("LLM_TRANSPORT", "bogus")
		t.Setenv("LLM_TIMEOUT", "0s")

		stdout, _, err := runCLI(t, "", "validate", validFile)

		require.NoError(t, err)
		assert.Equal(t, "valid\n", stdout)
	})

	t.Run("Failure - trailing garbage", func(t *testing.T) {
		stdout, _, err := runCLI(t, `{"series":[{"type":"bar"}]} this is not json`, "validate", "-")

		require.ErrorIs(t, err, errInvalidDocument)
		assert.Contains(t, stdout, "(root)")
	})

	t.Run("Failure - violations are printed", func(t *testing.T) {
		stdout, _, err := runCLI(t, "", "validate", invalidFile)

		require.ErrorIs(t, err, errInvalidDocument)
		assert.Contains(t, stdout, "series.0.type")
	})

	t.Run("Failure - custom schema", func(t *testing.T) {
		schemaFile := filepath.Join(dir, "schema.json")
		require.NoError(t, os.WriteFile(schemaFile, []byte(`{"type":"object","required":["dataset"]}`), 0o600))

		stdout, _, err := runCLI(t, "", "validate", "--schema", schemaFile, validFile)

		require.ErrorIs(t, err, errInvalidDocument)
		assert.Contains(t, stdout, "dataset")
	})

	t.Run("Failure - missing file", func(t *testing.T) {
		_, _, err := runCLI(t, "", "validate", filepath.Join(dir, "nope.json"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope.json")
	})
}
