package transform

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xuenqlve/datarange/errors"
	"go.yaml.in/yaml/v3"
)

const (
	ContentTOML = "toml"
	ContentJSON = "json"
	ContentYAML = "yaml"
)

func ConfigFromFile(path string) (map[string]any, error) {
	contentType := ContentTypeOf(path)
	if contentType == "" {
		return nil, errors.NewCodeError(errors.ErrCodeConfig, errors.Errorf("unrecognized path %s", path))
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCodeError(errors.ErrCodeConfig, errors.Trace(err))
	}
	return ConfigFromString(string(content), contentType)
}

func ConfigFromString(content string, contentType string) (map[string]any, error) {
	cfgData := map[string]any{}
	var err error
	switch contentType {
	case ContentTOML:
		_, err = toml.Decode(content, &cfgData)
	case ContentJSON:
		err = json.Unmarshal([]byte(content), &cfgData)
	case ContentYAML:
		err = yaml.Unmarshal([]byte(content), &cfgData)
	default:
		return nil, errors.NewCodeError(errors.ErrCodeConfig, errors.Errorf("unknown content type %s", contentType))
	}
	if err != nil {
		return nil, errors.NewCodeError(errors.ErrCodeConfig, errors.Trace(err))
	}
	return cfgData, nil
}

// ContentTypeOf maps a file extension to a content type, or "" if unknown.
func ContentTypeOf(path string) string {
	switch {
	case strings.HasSuffix(path, ".toml"):
		return ContentTOML
	case strings.HasSuffix(path, ".json"):
		return ContentJSON
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return ContentYAML
	}
	return ""
}
