package bundles

import (
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

func (yamlCodec) Format() string { return "yaml" }
func (yamlCodec) Ext() string    { return ".yaml" }

func (yamlCodec) Encode(r *Registry) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, b := range r.Bundles() {
		envs := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		for _, f := range b.Envs {
			value := "false"
			if f.Enabled {
				value = "true"
			}
			envs.Content = append(envs.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Env},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: value},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: b.ID},
			envs,
		)
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistryWrite, "cannot encode registry")
	}
	return data, nil
}

func (yamlCodec) Decode(data []byte) (*Registry, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistryParse, "invalid yaml registry")
	}
	return FromNode(&node)
}
