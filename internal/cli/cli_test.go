// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinhj5/autoapi/internal/config"
	"github.com/qinhj5/autoapi/internal/openapi"
	"github.com/qinhj5/autoapi/pkg/types"
)

func TestSubcommandsRegistered(t *testing.T) {
	expected := []string{"generate", "coverage", "check", "diff", "watch", "init", "version", "endpoints"}

	registered := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "command %s not registered", name)
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "url", "file", "base-url", "verbose", "quiet"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "flag %s not registered", name)
	}
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Contains(t, info, "autoapi")
	assert.Contains(t, info, Version)
}

func TestBuildConfigYAML(t *testing.T) {
	out := buildConfigYAML(config.Default())

	assert.Contains(t, out, "# autoapi configuration file")
	assert.Contains(t, out, "swagger:")
	assert.Contains(t, out, "output:")
	assert.Contains(t, out, "coverage:")
}

func TestCollectFindings(t *testing.T) {
	doc := &types.Document{
		Swagger: "2.0",
		Paths: map[string]*types.PathItem{
			"/ping": {Get: &types.Operation{}},
			"/pets": {
				Post: &types.Operation{
					Tags:        []string{"pet"},
					OperationID: "CreatePet",
					Parameters: []types.Parameter{
						{Name: "pet", In: "body", Schema: &types.Schema{Ref: "#/definitions/Ghost"}},
					},
				},
			},
		},
	}

	findings := collectFindings(doc, nil)
	require.Len(t, findings, 2)
	assert.Contains(t, findings[0], "GET /ping")
	assert.Contains(t, findings[1], "module pet")
}

func TestCollectFindingsClean(t *testing.T) {
	doc := &types.Document{
		Swagger: "2.0",
		Paths: map[string]*types.PathItem{
			"/pets": {Get: &types.Operation{Tags: []string{"pet"}, OperationID: "ListPets"}},
		},
	}

	assert.Empty(t, collectFindings(doc, nil))
}

func TestRunInit(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(t.TempDir()))

	require.NoError(t, runInit(initCmd, nil))

	data, err := os.ReadFile("autoapi.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "# autoapi configuration file")

	// refuses to overwrite without --force
	err = runInit(initCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	initForce = true
	defer func() { initForce = false }()
	assert.NoError(t, runInit(initCmd, nil))
}

const cliTestDoc = `{
	"swagger": "2.0",
	"paths": {
		"/users": {
			"get": {"tags": ["user"], "operationId": "ListUsers", "summary": "List users"}
		}
	}
}`

func TestGenerateCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "swagger.json")
	require.NoError(t, os.WriteFile(specPath, []byte(cliTestDoc), 0644))
	outRoot := filepath.Join(dir, "template")

	rootCmd.SetArgs([]string{"generate", "--file", specPath, "--output", outRoot, "--quiet"})
	defer resetGlobalFlags()
	require.NoError(t, rootCmd.Execute())

	apiFile := filepath.Join(outRoot, "api", "user", "user_api.py")
	data, err := os.ReadFile(apiFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "class UserAPI(BaseAPI):")

	_, err = os.Stat(filepath.Join(outRoot, "testcases", "user", "test_get_list_users.py"))
	assert.NoError(t, err)
}

func TestEndpointsCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "swagger.json")
	require.NoError(t, os.WriteFile(specPath, []byte(cliTestDoc), 0644))

	rootCmd.SetArgs([]string{"endpoints", "--file", specPath, "--base-url", "http://api.example.com", "--quiet"})
	defer resetGlobalFlags()
	assert.NoError(t, rootCmd.Execute())
}

func TestSnapshotRoundTrip(t *testing.T) {
	// snapshots written by the diff command must load back as documents
	dir := t.TempDir()
	s := openapi.NewSnapshotter(filepath.Join(dir, "history"), filepath.Join(dir, "diff"))

	doc := &types.Document{
		Swagger: "2.0",
		Paths: map[string]*types.PathItem{
			"/users": {Get: &types.Operation{Tags: []string{"user"}}},
		},
	}
	_, err := s.Save(doc)
	require.NoError(t, err)

	loaded, ok, err := s.Latest()
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, loaded.Paths, "/users")
	assert.Equal(t, []string{"user"}, loaded.Paths["/users"].Get.Tags)
}

// resetGlobalFlags clears flag state leaked by rootCmd.Execute runs.
func resetGlobalFlags() {
	cfgFile = ""
	swaggerURL = ""
	swaggerFile = ""
	baseURL = ""
	verbose = false
	quiet = false
	generateOutput = ""
	generatePrefix = ""
	rootCmd.SetArgs(nil)
}
