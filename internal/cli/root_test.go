package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeShader(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.frag")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPreambleCommand(t *testing.T) {
	out, _, err := runCommand(t, "preamble", "--profile", "es", "--glsl-version", "310", "--vulkan", "100")
	require.NoError(t, err)

	assert.Contains(t, out, "#define GL_ES 1\n")
	assert.Contains(t, out, "#define VULKAN 100\n")
	assert.NotContains(t, out, "GL_ARB_gpu_shader5")
}

func TestExtensionsCommandJSON(t *testing.T) {
	out, _, err := runCommand(t, "extensions", "-o", "json", "--filter", "GL_ANDROID")
	require.NoError(t, err)

	var infos []struct {
		ID      string   `json:"id"`
		Default string   `json:"default"`
		Implies []string `json:"implies"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "GL_ANDROID_extension_pack_es31a", infos[0].ID)
	assert.Equal(t, "disable", infos[0].Default)
	assert.Len(t, infos[0].Implies, 12)
}

func TestCheckCommandCleanShader(t *testing.T) {
	path := writeShader(t, `#version 310 es
#extension GL_OES_standard_derivatives : enable
void main() {}
`)
	out, _, err := runCommand(t, "check", "-o", "json", path)
	require.NoError(t, err)

	var reports []struct {
		Path      string   `json:"path"`
		Profile   string   `json:"profile"`
		Version   int      `json:"version"`
		Requested []string `json:"requested"`
		Errors    int      `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, path, reports[0].Path)
	assert.Equal(t, "es", reports[0].Profile)
	assert.Equal(t, 310, reports[0].Version)
	assert.Equal(t, []string{"GL_OES_standard_derivatives"}, reports[0].Requested)
	assert.Zero(t, reports[0].Errors)
}

func TestCheckCommandReportsErrors(t *testing.T) {
	path := writeShader(t, `#version 310 es
#extension GL_VENDOR_not_registered : require
#extension all : enable
`)
	out, _, err := runCommand(t, "check", "-o", "json", path)
	require.Error(t, err, "error diagnostics must fail the command")

	var reports []struct {
		Errors      int `json:"errors"`
		Diagnostics []struct {
			Code     string `json:"Code"`
			Severity int    `json:"Severity"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, 2, reports[0].Errors)
	require.Len(t, reports[0].Diagnostics, 2)
	assert.Equal(t, "unsupported-extension", reports[0].Diagnostics[0].Code)
	assert.Equal(t, "invalid-all-behavior", reports[0].Diagnostics[1].Code)
}

func TestCheckCommandVersionOverride(t *testing.T) {
	path := writeShader(t, "#version 450 core\nvoid main() {}\n")
	out, _, err := runCommand(t, "check", "-o", "json", "--profile", "es", "--glsl-version", "100", path)
	require.NoError(t, err)

	var reports []struct {
		Profile string `json:"profile"`
		Version int    `json:"version"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "core", reports[0].Profile, "the source #version line wins")
	assert.Equal(t, 450, reports[0].Version)
}

func TestCheckCommandMissingFile(t *testing.T) {
	_, _, err := runCommand(t, "check", filepath.Join(t.TempDir(), "missing.frag"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "shadergate")
}
