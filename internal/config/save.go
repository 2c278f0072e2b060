package config

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/project-switch/project-switch/internal/storage"
)

// managedKeys are the mapping keys this package writes. A managed key that
// is absent from the new encoding is removed from the file; any other key is
// left alone.
var managedKeys = map[string]bool{
	"include": true, "currentProject": true, "defaultBrowser": true,
	"global": true, "shortcuts": true, "projects": true,
	"name": true, "path": true, "description": true, "browser": true, "commands": true,
	"key": true, "url": true, "args": true, "url_encode": true,
	"enabled": true, "extraPaths": true, "exclude": true,
}

// encodeLocal renders cfg as YAML. When doc holds the previously parsed
// file, cfg is merged into that tree so ordering, comments, and unknown keys
// are kept.
func encodeLocal(doc *yaml.Node, cfg *Config) ([]byte, error) {
	var fresh yaml.Node
	if err := fresh.Encode(cfg); err != nil {
		return nil, err
	}

	out := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{&fresh}}
	if doc != nil && doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 &&
		doc.Content[0].Kind == yaml.MappingNode {
		updateNode(doc.Content[0], &fresh)
		out = doc
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// updateNode rewrites dst to hold the value of src, reusing dst's nodes
// where the shapes line up.
func updateNode(dst, src *yaml.Node) {
	if dst.Kind != src.Kind {
		replaceNode(dst, src)
		return
	}

	switch dst.Kind {
	case yaml.MappingNode:
		updateMapping(dst, src)
	case yaml.SequenceNode:
		if len(dst.Content) == 0 && len(src.Content) > 0 {
			dst.Style = src.Style
		}
		for i, item := range src.Content {
			if i < len(dst.Content) {
				updateNode(dst.Content[i], item)
			} else {
				dst.Content = append(dst.Content, item)
			}
		}
		if len(dst.Content) > len(src.Content) {
			dst.Content = dst.Content[:len(src.Content)]
		}
		if len(dst.Content) == 0 {
			dst.Style = yaml.FlowStyle
		}
	default:
		if dst.Tag != src.Tag {
			dst.Style = src.Style
		}
		dst.Tag = src.Tag
		dst.Value = src.Value
	}
}

func updateMapping(dst, src *yaml.Node) {
	present := make(map[string]bool, len(src.Content)/2)
	for i := 0; i+1 < len(src.Content); i += 2 {
		key, val := src.Content[i], src.Content[i+1]
		present[key.Value] = true
		if existing := mappingValue(dst, key.Value); existing != nil {
			updateNode(existing, val)
			continue
		}
		dst.Content = append(dst.Content, key, val)
	}

	kept := dst.Content[:0]
	for i := 0; i+1 < len(dst.Content); i += 2 {
		key := dst.Content[i].Value
		if managedKeys[key] && !present[key] {
			continue
		}
		kept = append(kept, dst.Content[i], dst.Content[i+1])
	}
	dst.Content = kept
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// replaceNode swaps dst's content for src's, keeping dst's comments.
func replaceNode(dst, src *yaml.Node) {
	head, line, foot := dst.HeadComment, dst.LineComment, dst.FootComment
	*dst = *src
	dst.HeadComment, dst.LineComment, dst.FootComment = head, line, foot
}

func writeConfig(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return storage.WriteFile(path, data, perm)
}
