package bundles

import (
	"strconv"

	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/beevik/etree"
)

// xmlCodec layout:
//
//	<bundles>
//	    <bundle class="Foo\Bar">
//	        <env name="all" enabled="true"/>
//	    </bundle>
//	</bundles>
type xmlCodec struct{}

func (xmlCodec) Format() string { return "xml" }
func (xmlCodec) Ext() string    { return ".xml" }

func (xmlCodec) Encode(r *Registry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("bundles")
	for _, b := range r.Bundles() {
		el := root.CreateElement("bundle")
		el.CreateAttr("class", b.ID)
		for _, f := range b.Envs {
			env := el.CreateElement("env")
			env.CreateAttr("name", f.Env)
			env.CreateAttr("enabled", strconv.FormatBool(f.Enabled))
		}
	}
	doc.Indent(4)

	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistryWrite, "cannot encode registry")
	}
	return data, nil
}

func (xmlCodec) Decode(data []byte) (*Registry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistryParse, "invalid xml registry")
	}

	root := doc.SelectElement("bundles")
	if root == nil {
		return nil, errors.New(errors.ErrRegistryParse, "missing <bundles> root element")
	}

	r := &Registry{}
	for _, el := range root.SelectElements("bundle") {
		id := el.SelectAttrValue("class", "")
		if id == "" {
			return nil, errors.New(errors.ErrRegistryParse, "bundle without class attribute")
		}
		b := Bundle{ID: id, Envs: []Flag{}}
		for _, env := range el.SelectElements("env") {
			enabled, err := strconv.ParseBool(env.SelectAttrValue("enabled", ""))
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrRegistryParse,
					"environment %s of %s must be true or false", env.SelectAttrValue("name", ""), id).
					WithDetail("bundle", id)
			}
			b.setEnv(env.SelectAttrValue("name", ""), enabled)
		}
		r.Set(b)
	}
	return r, nil
}
