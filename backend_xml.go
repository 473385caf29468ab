// FILE: lixenwraith/registry/backend_xml.go
package registry

// XMLBackend loads *.xml files from a directory tree using the structural
// translation in xml_translate.go. Global and local configuration are combined
// with MergeAppend, like ArrayBackend. After loading, untyped numeric-looking
// strings are converted to int64 or float64.
//
//	<config>
//	  <app.db>
//	    <host>localhost</host>
//	    <port>5432</port>
//	    <debug type="bool">0</debug>
//	    <U_private>yes</U_private>
//	    <A_key name="created-at">2020-01-01</A_key>
//	  </app.db>
//	</config>
type XMLBackend struct {
	treeBackend
	path string
}

// NewXMLBackend loads the configuration directory at path.
func NewXMLBackend(path string, opts ...LoaderOption) (*XMLBackend, error) {
	treeOpts := applyLoaderOptions(TreeOptions{
		Extensions: []string{"xml"},
		Merge:      MergeAppend,
	}, opts)
	constants := treeOpts.Constants
	treeOpts.Parse = func(_ string, data []byte) (Tree, error) {
		return translateXML(data, constants)
	}

	config, err := LoadTree(path, treeOpts)
	if err != nil {
		return nil, err
	}
	config = coerceNumericLeaves(config).(Tree)
	treeOpts.Logger.Debug().Str("path", path).Int("domains", len(config)).Msg("loaded xml config")

	return &XMLBackend{treeBackend: treeBackend{config: config}, path: path}, nil
}

// Path returns the directory the backend was loaded from
func (b *XMLBackend) Path() string {
	return b.path
}
