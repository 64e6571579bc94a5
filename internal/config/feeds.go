// Package config loads pipeline configuration: the feed descriptor list from
// a YAML file and the pipeline tuning parameters from environment variables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Feed describes one RSS source to be crawled.
type Feed struct {
	// Name identifies the originating feed in logs and on stored items.
	Name string `yaml:"name"`

	// URL is the feed endpoint, expected to serve RSS 2.0-shaped XML.
	URL string `yaml:"url"`
}

// FeedsFile is the on-disk shape of the feed descriptor list.
type FeedsFile struct {
	Feeds []Feed `yaml:"feeds"`
}

// LoadFeeds reads and validates the feed descriptor list from the given YAML
// file. Every entry must carry both a name and a url; an entry missing either
// is a configuration error, not something to skip silently.
//
// Example file:
//
//	feeds:
//	  - name: Kitco News
//	    url: https://www.kitco.com/rss/category/commentaries.xml
//	  - name: MarketWatch
//	    url: https://feeds.content.dowjones.io/public/rss/mw_topstories
func LoadFeeds(path string) ([]Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feeds file: %w", err)
	}

	var file FeedsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse feeds file %s: %w", path, err)
	}

	if len(file.Feeds) == 0 {
		return nil, fmt.Errorf("feeds file %s contains no feeds", path)
	}

	for i, f := range file.Feeds {
		if f.Name == "" {
			return nil, fmt.Errorf("feeds file %s: entry %d is missing a name", path, i)
		}
		if f.URL == "" {
			return nil, fmt.Errorf("feeds file %s: entry %q is missing a url", path, f.Name)
		}
	}

	return file.Feeds, nil
}
