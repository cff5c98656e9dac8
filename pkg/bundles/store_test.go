package bundles_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/arthur-debert/pkghooks/pkg/bundles"
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/testutil"
	"github.com/arthur-debert/pkghooks/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "/project/config"

const fixture = `<?php

return [
    Foo\Bar::class => ['all' => true],
    Bar\Foo::class => ['dev' => true],
];
`

func phpStore(t *testing.T, fsys types.FS, opts ...bundles.StoreOption) *bundles.Store {
	t.Helper()
	codec, err := bundles.CodecFor("php")
	require.NoError(t, err)
	return bundles.NewStore(fsys, configDir, codec, opts...)
}

func TestStoreRegisterIntoExistingFile(t *testing.T) {
	fsys := testutil.NewMemFS(t, map[string]string{configDir + "/bundles.php": fixture})
	store := phpStore(t, fsys)

	_, err := store.Register(bundles.NewRegistry(bundle(`Hello\World`, on("all"))), bundles.PolicyUnion)
	require.NoError(t, err)

	testutil.AssertFileContent(t, fsys, configDir+"/bundles.php", `<?php

return [
    Foo\Bar::class => ['all' => true],
    Bar\Foo::class => ['dev' => true],
    Hello\World::class => ['all' => true],
];
`)
}

func TestStoreRegisterCreatesMissingDir(t *testing.T) {
	fsys := testutil.NewMemFS(t, nil)
	codec, _ := bundles.CodecFor("php")
	store := bundles.NewStore(fsys, "/project/config2", codec)

	_, err := store.Register(bundles.NewRegistry(bundle(`Hello\World`, on("all"))), bundles.PolicyUnion)
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{`Hello\World`}, loaded.IDs())
	assert.Equal(t, "/project/config2/bundles.php", store.Path())
}

func TestStoreRegisterThenUnregister(t *testing.T) {
	fsys := testutil.NewMemFS(t, nil)
	store := phpStore(t, fsys)

	_, err := store.Register(bundles.NewRegistry(bundle("A", on("all"))), bundles.PolicyUnion)
	require.NoError(t, err)

	remaining, err := store.Unregister([]string{"A"})
	require.NoError(t, err)
	assert.Zero(t, remaining.Len())

	testutil.AssertFileContent(t, fsys, configDir+"/bundles.php", "<?php\n\nreturn [\n];\n")
}

func TestStoreUnregisterKeepsOthers(t *testing.T) {
	fsys := testutil.NewMemFS(t, map[string]string{configDir + "/bundles.php": fixture})

	remaining, err := phpStore(t, fsys).Unregister([]string{`Foo\Bar`})
	require.NoError(t, err)
	assert.Equal(t, []string{`Bar\Foo`}, remaining.IDs())
}

func TestStoreInvalidation(t *testing.T) {
	t.Run("default touches the file", func(t *testing.T) {
		fsys := testutil.NewMemFS(t, map[string]string{configDir + "/bundles.php": fixture})
		old := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, fsys.Chtimes(configDir+"/bundles.php", old, old))

		_, err := phpStore(t, fsys).Register(bundles.NewRegistry(), bundles.PolicyUnion)
		require.NoError(t, err)

		info, err := fsys.Stat(configDir + "/bundles.php")
		require.NoError(t, err)
		assert.True(t, info.ModTime().After(old))
	})

	t.Run("custom invalidator is called with the path", func(t *testing.T) {
		fsys := testutil.NewMemFS(t, nil)
		var invalidated []string
		store := phpStore(t, fsys, bundles.WithInvalidator(func(_ types.FS, path string) error {
			invalidated = append(invalidated, path)
			return stderrors.New("no cache")
		}))

		_, err := store.Register(bundles.NewRegistry(bundle("A", on("all"))), bundles.PolicyUnion)
		require.NoError(t, err, "invalidation failures are not fatal")
		assert.Equal(t, []string{configDir + "/bundles.php"}, invalidated)
	})
}

func TestStoreLoadErrors(t *testing.T) {
	fsys := testutil.NewMemFS(t, map[string]string{configDir + "/bundles.php": "<?php\nthis is not a registry\n"})

	_, err := phpStore(t, fsys).Register(bundles.NewRegistry(bundle("A", on("all"))), bundles.PolicyUnion)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRegistryParse))
	testutil.AssertFileContent(t, fsys, configDir+"/bundles.php", "<?php\nthis is not a registry\n")
}

func TestStoreOtherFormats(t *testing.T) {
	for _, format := range []string{"yaml", "toml", "xml"} {
		t.Run(format, func(t *testing.T) {
			fsys := testutil.NewMemFS(t, nil)
			codec, err := bundles.CodecFor(format)
			require.NoError(t, err)
			store := bundles.NewStore(fsys, configDir, codec, bundles.WithInvalidator(nil))

			_, err = store.Register(bundles.NewRegistry(bundle("A", on("all")), bundle("B", on("dev"))), bundles.PolicyUnion)
			require.NoError(t, err)
			_, err = store.Register(bundles.NewRegistry(bundle("A", on("test"))), bundles.PolicyUnion)
			require.NoError(t, err)

			loaded, err := store.Load()
			require.NoError(t, err)
			a, _ := loaded.Get("A")
			assert.Equal(t, []bundles.Flag{on("all"), on("test")}, a.Envs)
			assert.Equal(t, []string{"A", "B"}, loaded.IDs())
		})
	}
}
