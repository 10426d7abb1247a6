// Package config builds named ranges from toml, json or yaml documents.
package config

import (
	"sort"

	"github.com/xuenqlve/datarange/errors"
	"github.com/xuenqlve/datarange/log"
	"github.com/xuenqlve/datarange/numrange"
	"github.com/xuenqlve/datarange/transform"
)

const (
	RangesKey      = "ranges"
	LowerKey       = "lower"
	UpperKey       = "upper"
	LowerMarginKey = "lower_margin"
	UpperMarginKey = "upper_margin"
	IncludeKey     = "include"
)

// RangeConfig describes one named range. Include values widen the base
// bounds before the margins are applied.
type RangeConfig struct {
	Name        string
	Lower       float64
	Upper       float64
	LowerMargin float64
	UpperMargin float64
	Include     []float64
}

// Build returns the configured range.
func (c RangeConfig) Build() (numrange.Range, error) {
	r, err := numrange.New(c.Lower, c.Upper)
	if err != nil {
		return numrange.Range{}, errors.Annotatef(err, "range %s", c.Name)
	}
	current := &r
	for _, v := range c.Include {
		current = numrange.ExpandToInclude(current, v)
	}
	if c.LowerMargin != 0 || c.UpperMargin != 0 {
		return numrange.Expand(*current, c.LowerMargin, c.UpperMargin), nil
	}
	return *current, nil
}

func LoadRanges(path string) (map[string]numrange.Range, error) {
	cfgData, err := transform.ConfigFromFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "load ranges from %s", path)
	}
	ranges, err := ParseRanges(cfgData)
	if err != nil {
		return nil, err
	}
	log.Logger().Info().Str("path", path).Int("count", len(ranges)).Msg("ranges loaded")
	return ranges, nil
}

func LoadRangesFromString(content, contentType string) (map[string]numrange.Range, error) {
	cfgData, err := transform.ConfigFromString(content, contentType)
	if err != nil {
		return nil, err
	}
	return ParseRanges(cfgData)
}

// ParseRanges reads the "ranges" table of a decoded document.
func ParseRanges(cfgData map[string]any) (map[string]numrange.Range, error) {
	configs, err := ParseRangeConfigs(cfgData)
	if err != nil {
		return nil, err
	}
	ranges := make(map[string]numrange.Range, len(configs))
	for _, c := range configs {
		r, err := c.Build()
		if err != nil {
			return nil, errors.NewCodeError(errors.ErrCodeConfig, err)
		}
		log.Logger().Debug().Str("name", c.Name).Stringer("range", r).Msg("range built")
		ranges[c.Name] = r
	}
	return ranges, nil
}

// ParseRangeConfigs returns the range entries sorted by name.
func ParseRangeConfigs(cfgData map[string]any) ([]RangeConfig, error) {
	raw, ok := cfgData[RangesKey]
	if !ok {
		return nil, nil
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.NewCodeErrorMessage(errors.ErrCodeConfig, "ranges must be a table")
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	configs := make([]RangeConfig, 0, len(names))
	for _, name := range names {
		entry, ok := table[name].(map[string]any)
		if !ok {
			return nil, errors.NewCodeError(errors.ErrCodeConfig, errors.Errorf("range %s must be a table", name))
		}
		c, err := parseRangeConfig(name, entry)
		if err != nil {
			return nil, errors.NewCodeError(errors.ErrCodeConfig, errors.Annotatef(err, "range %s", name))
		}
		configs = append(configs, c)
	}
	return configs, nil
}

func parseRangeConfig(name string, entry map[string]any) (RangeConfig, error) {
	c := RangeConfig{Name: name}
	var err error
	if c.Lower, err = requiredFloat(entry, LowerKey); err != nil {
		return c, err
	}
	if c.Upper, err = requiredFloat(entry, UpperKey); err != nil {
		return c, err
	}
	if c.LowerMargin, err = optionalFloat(entry, LowerMarginKey); err != nil {
		return c, err
	}
	if c.UpperMargin, err = optionalFloat(entry, UpperMarginKey); err != nil {
		return c, err
	}
	if c.Include, err = transform.ToFloat64Slice(entry[IncludeKey]); err != nil {
		return c, errors.Annotatef(err, "field %s", IncludeKey)
	}
	return c, nil
}

func requiredFloat(entry map[string]any, key string) (float64, error) {
	value, ok := entry[key]
	if !ok {
		return 0, errors.Errorf("missing field %s", key)
	}
	f, err := transform.ToFloat64(value)
	if err != nil {
		return 0, errors.Annotatef(err, "field %s", key)
	}
	return f, nil
}

func optionalFloat(entry map[string]any, key string) (float64, error) {
	if _, ok := entry[key]; !ok {
		return 0, nil
	}
	return requiredFloat(entry, key)
}
