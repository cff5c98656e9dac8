// Package metadata reads package documents handed over by the host package
// manager. Documents are JSON (composer.json style) or YAML:
//
//	{
//	    "name": "acme/blog-bundle",
//	    "extra": {
//	        "pkghooks": {
//	            "packages": {"acme_blog.yaml": ["acme_blog:", "  enabled: true"]},
//	            "bundles": {"Acme\\BlogBundle\\AcmeBlogBundle": {"all": true}}
//	        }
//	    }
//	}
//
// The entries of extra.pkghooks become the package hooks, in document order.
package metadata

import (
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/types"
	"gopkg.in/yaml.v3"
)

// HookSection is the key of the extra section holding hooks
const HookSection = "pkghooks"

// Parse decodes a package document
func Parse(data []byte) (*types.Package, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrPackageParse, "invalid package document")
	}
	if len(doc.Content) == 0 {
		return nil, errors.New(errors.ErrPackageInvalid, "empty package document")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrPackageInvalid, "package document must be a mapping")
	}

	pkg := &types.Package{Extra: map[string]interface{}{}}
	if name := lookup(root, "name"); name != nil {
		pkg.Name = name.Value
	}
	if pkg.Name == "" {
		return nil, errors.New(errors.ErrPackageInvalid, "package document has no name")
	}

	extra := lookup(root, "extra")
	if extra == nil {
		return pkg, nil
	}
	if extra.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrPackageInvalid, "extra section of %s must be a mapping", pkg.Name)
	}
	if err := extra.Decode(&pkg.Extra); err != nil {
		return nil, errors.Wrapf(err, errors.ErrPackageParse, "cannot decode extra section of %s", pkg.Name)
	}

	section := lookup(extra, HookSection)
	if section == nil {
		return pkg, nil
	}
	if section.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrPackageInvalid, "%s section of %s must be a mapping", HookSection, pkg.Name)
	}
	for i := 0; i+1 < len(section.Content); i += 2 {
		pkg.Hooks = append(pkg.Hooks, types.Hook{
			Action: section.Content[i].Value,
			Args:   section.Content[i+1],
		})
	}
	return pkg, nil
}

// Load reads and decodes the package document at path
func Load(fsys types.FS, path string) (*types.Package, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read package document %s", path)
	}
	pkg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPackageParse, "cannot load %s", path)
	}
	return pkg, nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
