package pkghooks

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blogPackage = `{
    "name": "acme/blog",
    "extra": {
        "pkghooks": {
            "packages": {"acme_blog.yaml": ["acme_blog:", "    enabled: true"]},
            "bundles": {"Acme\\BlogBundle\\AcmeBlogBundle": {"all": true}}
        }
    }
}`

// project creates a project directory holding the given documents
func project(t *testing.T, docs map[string]string) string {
	t.Helper()
	t.Setenv("PKGHOOKS_LOG_FILE", filepath.Join(t.TempDir(), "pkghooks.log"))

	dir := t.TempDir()
	for name, content := range docs {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestInstallCommand(t *testing.T) {
	dir := project(t, map[string]string{"vendor/acme/blog/composer.json": blogPackage})

	out, _, err := run(t, "", "install", "-C", dir, "--package", filepath.Join(dir, "vendor/acme/blog/composer.json"))
	require.NoError(t, err)

	assert.Contains(t, out, "Run for acme/blog => packages")
	assert.Contains(t, out, "Run for acme/blog => bundles")
	assert.Equal(t, "acme_blog:\n    enabled: true", readFile(t, filepath.Join(dir, "config/packages/acme_blog.yaml")))
	assert.Equal(t, `<?php

return [
    Acme\BlogBundle\AcmeBlogBundle::class => ['all' => true],
];
`, readFile(t, filepath.Join(dir, "config/bundles.php")))
}

func TestUninstallCommandReadsAnswers(t *testing.T) {
	dir := project(t, map[string]string{"composer.json": blogPackage})
	pkg := filepath.Join(dir, "composer.json")

	_, _, err := run(t, "", "install", "-C", dir, "-p", pkg)
	require.NoError(t, err)

	// keep the files, drop the bundles
	out, _, err := run(t, "no\nyes\n", "uninstall", "-C", dir, "-p", pkg)
	require.NoError(t, err)

	assert.Contains(t, out, "Confirm remove files from acme/blog? (yes/no)")
	assert.Contains(t, out, "Confirm remove bundles for acme/blog? (yes/no)")
	assert.FileExists(t, filepath.Join(dir, "config/packages/acme_blog.yaml"))
	assert.Equal(t, "<?php\n\nreturn [\n];\n", readFile(t, filepath.Join(dir, "config/bundles.php")))
}

func TestUpdateCommandWithNoFlag(t *testing.T) {
	dir := project(t, map[string]string{
		"old.json": `{"name": "acme/blog"}`,
		"new.json": blogPackage,
		"config/packages/acme_blog.yaml": "local: changes\n",
	})

	_, _, err := run(t, "", "update", "--no", "-C", dir,
		"-p", filepath.Join(dir, "old.json"), "--target", filepath.Join(dir, "new.json"))
	require.NoError(t, err)

	assert.Equal(t, "local: changes\n", readFile(t, filepath.Join(dir, "config/packages/acme_blog.yaml")))
	assert.FileExists(t, filepath.Join(dir, "config/bundles.php"))
}

func TestRootPackageSettings(t *testing.T) {
	dir := project(t, map[string]string{
		"composer.json": `{
            "name": "acme/app",
            "extra": {"config-dir": "etc", "pkghooks": {"config": {"registry": {"format": "toml"}}}}
        }`,
		"vendor/blog.json": blogPackage,
	})

	_, _, err := run(t, "", "install", "-C", dir,
		"-p", filepath.Join(dir, "vendor/blog.json"), "-r", filepath.Join(dir, "composer.json"))
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "etc/bundles.toml"))
	assert.FileExists(t, filepath.Join(dir, "etc/packages/acme_blog.yaml"))
}

func TestActionErrorsAreReported(t *testing.T) {
	dir := project(t, map[string]string{
		"composer.json": `{"name": "acme/broken", "extra": {"pkghooks": {"files": {"a.txt": {"gzip": "x"}}}}}`,
	})

	_, errOut, err := run(t, "", "install", "-C", dir, "-p", filepath.Join(dir, "composer.json"))
	require.Error(t, err)
	assert.Contains(t, errOut, "content type gzip for a.txt is not supported")
	assert.NoFileExists(t, filepath.Join(dir, "a.txt"))
}

func TestMissingPackageFlag(t *testing.T) {
	project(t, nil)
	_, _, err := run(t, "", "install")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package")
}

func TestYesAndNoConflict(t *testing.T) {
	dir := project(t, map[string]string{"composer.json": blogPackage})
	_, _, err := run(t, "", "install", "--yes", "--no", "-p", filepath.Join(dir, "composer.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgErrYesAndNo)
}

func TestActionsCommand(t *testing.T) {
	project(t, nil)

	out, _, err := run(t, "", "actions")
	require.NoError(t, err)
	assert.Equal(t, "Available actions:\n  bundles\n  files\n  packages\n  routes\n", out)

	out, _, err = run(t, "", "actions", "bundles", "--plain")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# bundles"))

	_, _, err = run(t, "", "actions", "symfony")
	assert.Error(t, err)
}

func TestVersionAndMan(t *testing.T) {
	project(t, nil)

	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pkghooks version dev")

	out, _, err = run(t, "", "man")
	require.NoError(t, err)
	assert.Contains(t, out, "PKGHOOKS")
}

func TestCompletion(t *testing.T) {
	project(t, nil)

	out, _, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "pkghooks")
}
