// Package config provides the configuration for linedit.
//
// # Sources
//
// Settings are resolved from four sources, higher overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← Highest priority (applied by app)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← LINEDIT_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← linedit.toml or linedit.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A missing file is not an error. A malformed file, or one with keys linedit
// does not know, is reported as a *ParseError.
//
// # Basic Usage
//
//	cfg, err := config.Load("linedit.toml")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Log.Level)
//
// # Live Reload
//
// Watch reloads the file when it changes on disk:
//
//	err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
//	    if err == nil {
//	        logger.SetLevel(ParseLevel(cfg.Log.Level))
//	    }
//	})
//
// # Example File
//
//	watch = true
//
//	[log]
//	level = "debug"
//	file = "/tmp/linedit.log"
//
//	[history]
//	max_entries = 500
//
//	[clipboard]
//	system = true
//
//	[editor]
//	prompt = true
//
//	[script]
//	timeout = "2s"
package config
