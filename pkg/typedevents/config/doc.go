/*
Package config loads channel settings from YAML or JSON.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches by returning default values. Channel
construction reads a handful of keys from it:

	name: cart-updated
	metrics: true
	tracing: false
	log_level: debug

# Loading

	cfg, err := config.FromFile("channels.yaml")
	if err != nil {
	    return err
	}

	ch := typedevents.New[Cart](typedevents.OptionsFromConfig(cfg, os.Stderr)...)

FromFile picks the parser from the file extension (.yaml, .yml, .json).
Unknown extensions return an error wrapping ErrUnsupportedFormat.

# Nested Sections

Section returns a nested map as its own Config, which lets a single file
describe several channels:

	channels:
	  carts:
	    metrics: true
	  orders:
	    tracing: true

	carts := cfg.Section("channels").Section("carts")
*/
package config
