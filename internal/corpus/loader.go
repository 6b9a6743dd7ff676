// file: internal/corpus/loader.go
// version: 1.3.0
// guid: 6f1a8c3d-4b2e-4d7f-9a0b-8c5d6e7f0a1b

package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jdfalk/dealsearch/internal/models"
)

// Load reads a corpus document (search-data.json schema) from path. JSON and
// YAML are supported, chosen by extension. Missing partitions come back as
// empty slices, never as an error.
//
// The categories and gifts mappings are decoded with order-preserving
// parsers: suggestion order and gift match resolution both follow document
// order, which a plain map round-trip would destroy.
func Load(path string) (*models.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseJSON(data)
	}
}

func parseJSON(data []byte) (*models.Corpus, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("parse corpus: top level must be an object")
	}

	corpus := &models.Corpus{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse corpus: %w", err)
		}
		key, _ := keyTok.(string)

		switch key {
		case "categories":
			if err := decodeOrderedCategories(dec, corpus); err != nil {
				return nil, err
			}
		case "products":
			if err := dec.Decode(&corpus.Products); err != nil {
				return nil, fmt.Errorf("parse products: %w", err)
			}
		case "gifts":
			if err := decodeOrderedGifts(dec, corpus); err != nil {
				return nil, err
			}
		case "earn":
			if err := dec.Decode(&corpus.Earn); err != nil {
				return nil, fmt.Errorf("parse earn: %w", err)
			}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("parse corpus: %w", err)
			}
		}
	}
	return corpus, nil
}

// decodeOrderedCategories walks the categories object token by token so the
// document order of keys survives into the slice.
func decodeOrderedCategories(dec *json.Decoder, corpus *models.Corpus) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("parse categories: %w", err)
	}
	if tok == nil {
		return nil // explicit null, treated as absent
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("parse categories: expected object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("parse categories: %w", err)
		}
		key, _ := keyTok.(string)
		var cat models.Category
		if err := dec.Decode(&cat); err != nil {
			return fmt.Errorf("parse category %q: %w", key, err)
		}
		corpus.Categories = append(corpus.Categories, models.CategoryEntry{Key: key, Category: cat})
	}
	_, err = dec.Token() // closing brace
	return err
}

func decodeOrderedGifts(dec *json.Decoder, corpus *models.Corpus) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("parse gifts: %w", err)
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("parse gifts: expected object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("parse gifts: %w", err)
		}
		key, _ := keyTok.(string)
		var items []models.GiftItem
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("parse gifts %q: %w", key, err)
		}
		corpus.Gifts = append(corpus.Gifts, models.GiftCategory{Key: key, Items: items})
	}
	_, err = dec.Token()
	return err
}

func parseYAML(data []byte) (*models.Corpus, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	if len(doc.Content) == 0 {
		return &models.Corpus{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse corpus: top level must be a mapping")
	}

	corpus := &models.Corpus{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		switch keyNode.Value {
		case "categories":
			if err := yamlOrderedMapping(valNode, func(key string, v *yaml.Node) error {
				var cat models.Category
				if err := v.Decode(&cat); err != nil {
					return fmt.Errorf("parse category %q: %w", key, err)
				}
				corpus.Categories = append(corpus.Categories, models.CategoryEntry{Key: key, Category: cat})
				return nil
			}); err != nil {
				return nil, err
			}
		case "products":
			if err := valNode.Decode(&corpus.Products); err != nil {
				return nil, fmt.Errorf("parse products: %w", err)
			}
		case "gifts":
			if err := yamlOrderedMapping(valNode, func(key string, v *yaml.Node) error {
				var items []models.GiftItem
				if err := v.Decode(&items); err != nil {
					return fmt.Errorf("parse gifts %q: %w", key, err)
				}
				corpus.Gifts = append(corpus.Gifts, models.GiftCategory{Key: key, Items: items})
				return nil
			}); err != nil {
				return nil, err
			}
		case "earn":
			if err := valNode.Decode(&corpus.Earn); err != nil {
				return nil, fmt.Errorf("parse earn: %w", err)
			}
		}
	}
	return corpus, nil
}

// yamlOrderedMapping visits mapping entries in document order. Null nodes
// (absent partitions) are skipped silently.
func yamlOrderedMapping(node *yaml.Node, visit func(key string, value *yaml.Node) error) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := visit(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}
