package bundles

import (
	"github.com/arthur-debert/pkghooks/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// tomlCodec stores bundles as arrays of tables so order survives a round trip
//
//	[[bundle]]
//	class = 'Foo\Bar'
//
//	  [[bundle.env]]
//	  name = 'all'
//	  enabled = true
type tomlCodec struct{}

type tomlDocument struct {
	Bundles []tomlBundle `toml:"bundle"`
}

type tomlBundle struct {
	Class string    `toml:"class"`
	Envs  []tomlEnv `toml:"env"`
}

type tomlEnv struct {
	Name    string `toml:"name"`
	Enabled bool   `toml:"enabled"`
}

func (tomlCodec) Format() string { return "toml" }
func (tomlCodec) Ext() string    { return ".toml" }

func (tomlCodec) Encode(r *Registry) ([]byte, error) {
	doc := tomlDocument{Bundles: []tomlBundle{}}
	for _, b := range r.Bundles() {
		tb := tomlBundle{Class: b.ID, Envs: []tomlEnv{}}
		for _, f := range b.Envs {
			tb.Envs = append(tb.Envs, tomlEnv{Name: f.Env, Enabled: f.Enabled})
		}
		doc.Bundles = append(doc.Bundles, tb)
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistryWrite, "cannot encode registry")
	}
	return data, nil
}

func (tomlCodec) Decode(data []byte) (*Registry, error) {
	var doc tomlDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistryParse, "invalid toml registry")
	}

	r := &Registry{}
	for _, tb := range doc.Bundles {
		if tb.Class == "" {
			return nil, errors.New(errors.ErrRegistryParse, "bundle without class")
		}
		b := Bundle{ID: tb.Class, Envs: []Flag{}}
		for _, e := range tb.Envs {
			b.setEnv(e.Name, e.Enabled)
		}
		r.Set(b)
	}
	return r, nil
}
